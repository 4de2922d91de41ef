package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated user identity through use cases.
// All entities are owned by a single user; there is no cross-user sharing.
type Scope struct {
	UserID string
}
