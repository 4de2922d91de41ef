package model

// TimeSlot is one AI-proposed activity, prior to being materialized as a
// Task. Time holds the start only ("H:MM" or "H:MM AM/PM").
type TimeSlot struct {
	Activity     string `json:"activity"`
	Time         string `json:"time"`
	Duration     int    `json:"duration"` // minutes
	Category     string `json:"category"` // free-text label
	IsCommitment bool   `json:"isCommitment"`
}

// Schedule is the ephemeral wrapper produced by the AI layer, or
// reconstructed from existing tasks for editing.
type Schedule struct {
	TimeSlots             []TimeSlot `json:"timeSlots"`
	Summary               string     `json:"summary"`
	OptimizationReasoning string     `json:"optimizationReasoning"`
	Confidence            float64    `json:"confidence"` // 0..1
}
