package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agent-router/config"
	_ "agent-router/docs" // Swagger docs
	"agent-router/internal/agent/orchestrator"
	"agent-router/internal/agent/tools"
	docqaUC "agent-router/internal/docqa/usecase"
	"agent-router/internal/httpserver"
	"agent-router/internal/router"
	summaryUC "agent-router/internal/summary/usecase"
	webqaUC "agent-router/internal/webqa/usecase"
	"agent-router/pkg/llmprovider"
	"agent-router/pkg/log"
)

// @title       Agent Router API
// @description Routes natural-language queries to a summarizer, a document Q&A agent or a web search agent.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agent Router Microservice...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// Missing credentials are reported, not fatal: the affected agents fail per request.
	for _, w := range cfg.Validate() {
		logger.Warnf(ctx, "Config: %s", w)
	}

	// 3. LLM providers
	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, w := range warnings {
		logger.Warnf(ctx, "LLM: %s", w)
	}
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, generation requests will fail: %v", err)
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider: %s (%s)", p.Name(), p.Model())
	}

	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "Invalid LLM retry settings, using defaults: %v", err)
		managerCfg = llmprovider.DefaultConfig()
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)

	// 4. Web search
	searcher, err := newSearcher(ctx, cfg.Search)
	if err != nil {
		logger.Warnf(ctx, "Web search not available: %v", err)
	}
	logger.Infof(ctx, "Web search provider: %s", searcher.Name())

	// 5. Agents
	temperature := cfg.LLM.Temperature
	summarizer := summaryUC.New(llm, logger, temperature)
	responder := docqaUC.New(llm, logger, temperature)
	webAgent := webqaUC.New(llm, searcher, logger, cfg.Search.MaxResults, temperature)

	// 6. Orchestrator
	registry := tools.NewRegistry(summarizer, responder, webAgent)
	toolRouter := router.New(llm, registry, logger, temperature)
	orch := orchestrator.New(llm, toolRouter, registry, logger, temperature)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Environment:    cfg.Environment.Name,
		HTTP:           cfg.HTTPServer,
		SummaryUC:      summarizer,
		DocQAUC:        responder,
		WebQAUC:        webAgent,
		OrchestratorUC: orch,
		Router:         toolRouter,
		Readiness:      []httpserver.ReadinessChecker{llm},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
