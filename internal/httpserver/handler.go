package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	agentHTTP "agent-router/internal/agent/delivery/http"
	docqaHTTP "agent-router/internal/docqa/delivery/http"
	"agent-router/internal/middleware"
	summaryHTTP "agent-router/internal/summary/delivery/http"
	"agent-router/internal/test"
	webqaHTTP "agent-router/internal/webqa/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.httpConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Agent routes share the per-client rate limit; system routes do not.
	api := srv.gin.Group("", mw.RateLimit())
	return srv.registerDomainRoutes(api)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Logger())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	srv.l.Infof(ctx, "CORS enabled=%t origins=%v, environment: %s",
		srv.httpConfig.CORS.Enabled, srv.httpConfig.CORS.AllowedOrigins, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the agent endpoints.
//
// Pattern to follow when adding an agent:
//  1. Create HTTP Handler: h := myagentHTTP.New(srv.l, srv.myagentUC)
//  2. Register Routes:     myagentHTTP.RegisterRoutes(rg, h)
func (srv HTTPServer) registerDomainRoutes(rg *gin.RouterGroup) error {
	ctx := context.Background()

	agentHTTP.RegisterRoutes(rg, agentHTTP.New(srv.l, srv.orchestratorUC))
	summaryHTTP.RegisterRoutes(rg, summaryHTTP.New(srv.l, srv.summaryUC))
	docqaHTTP.RegisterRoutes(rg, docqaHTTP.New(srv.l, srv.docqaUC))
	webqaHTTP.RegisterRoutes(rg, webqaHTTP.New(srv.l, srv.webqaUC))
	srv.l.Infof(ctx, "Agent routes registered: /process_query, /agent1/summarize, /agent2/respond_to_query, /agent3/search_internet")

	if srv.router != nil {
		test.RegisterRoutes(rg, test.New(srv.l, srv.router))
		srv.l.Infof(ctx, "Test routes registered at /test")
	} else {
		srv.l.Infof(ctx, "Router not configured, skipping test routes")
	}

	return nil
}
