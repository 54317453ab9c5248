package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agent-router/config"
	"agent-router/internal/agent/orchestrator"
	"agent-router/internal/docqa"
	"agent-router/internal/router"
	"agent-router/internal/summary"
	"agent-router/internal/webqa"
	"agent-router/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	httpConfig  config.HTTPServerConfig

	// Agents
	summaryUC      summary.UseCase
	docqaUC        docqa.UseCase
	webqaUC        webqa.UseCase
	orchestratorUC orchestrator.UseCase

	// Test domain
	router router.Router

	readiness []ReadinessChecker
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Environment string
	HTTP        config.HTTPServerConfig

	// Agents
	SummaryUC      summary.UseCase
	DocQAUC        docqa.UseCase
	WebQAUC        webqa.UseCase
	OrchestratorUC orchestrator.UseCase

	// Test domain, optional
	Router router.Router

	// Checked by /ready, optional
	Readiness []ReadinessChecker
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.HTTP.Mode != "" {
		gin.SetMode(cfg.HTTP.Mode)
	}

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.HTTP.Port,
		mode:           cfg.HTTP.Mode,
		environment:    cfg.Environment,
		httpConfig:     cfg.HTTP,
		summaryUC:      cfg.SummaryUC,
		docqaUC:        cfg.DocQAUC,
		webqaUC:        cfg.WebQAUC,
		orchestratorUC: cfg.OrchestratorUC,
		router:         cfg.Router,
		readiness:      cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.summaryUC == nil || srv.docqaUC == nil || srv.webqaUC == nil || srv.orchestratorUC == nil {
		return errors.New("all agent use cases are required")
	}
	return nil
}

// Handler exposes the configured engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
