package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"atomic-scheduler/config"
	"atomic-scheduler/pkg/gcalendar"
	"atomic-scheduler/pkg/log"
	"atomic-scheduler/pkg/perplexity"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	llm        perplexity.IPerplexity
	calendar   *gcalendar.Client
	cfg        *config.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	LLM        perplexity.IPerplexity // nil when no API key is configured
	Calendar   *gcalendar.Client      // nil when export is not configured
	AppConfig  *config.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		llm:         cfg.LLM,
		calendar:    cfg.Calendar,
		cfg:         cfg.AppConfig,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	return nil
}
