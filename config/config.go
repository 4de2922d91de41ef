package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Persistence
	Postgres PostgresConfig

	// AI generation
	Perplexity PerplexityConfig

	// Optional calendar export
	GoogleCalendar GoogleCalendarConfig

	// Scheduling behavior
	Schedule ScheduleConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN string
}

type PerplexityConfig struct {
	APIKey          string
	Model           string
	BaseURL         string
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

type ScheduleConfig struct {
	BufferMinutes     int // gap inserted between shifted slots during optimization
	SuggestionCount   int // max alternative slots returned
	SuggestionStepMin int // granularity of candidate start times
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres.dsn (or DATABASE_URL) is required")
	}

	// Perplexity
	cfg.Perplexity.APIKey = viper.GetString("perplexity.api_key")
	cfg.Perplexity.Model = viper.GetString("perplexity.model")
	cfg.Perplexity.BaseURL = viper.GetString("perplexity.base_url")
	cfg.Perplexity.RateLimitPerMin = viper.GetInt("perplexity.rate_limit_per_min")
	if apiKey := viper.GetString("perplexity_api_key"); apiKey != "" {
		cfg.Perplexity.APIKey = apiKey
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Scheduling behavior
	cfg.Schedule.BufferMinutes = viper.GetInt("schedule.buffer_minutes")
	cfg.Schedule.SuggestionCount = viper.GetInt("schedule.suggestion_count")
	cfg.Schedule.SuggestionStepMin = viper.GetInt("schedule.suggestion_step_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("perplexity.model", "sonar")
	viper.SetDefault("perplexity.rate_limit_per_min", 20)

	viper.SetDefault("google_calendar.timezone", "UTC")

	viper.SetDefault("schedule.buffer_minutes", 15)
	viper.SetDefault("schedule.suggestion_count", 3)
	viper.SetDefault("schedule.suggestion_step_min", 15)
}
