package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"jobpromax.app/agent-api/common/id"
	"jobpromax.app/agent-api/common/logger"
	"jobpromax.app/agent-api/common/otel"
	"jobpromax.app/agent-api/core/config"
	"jobpromax.app/agent-api/core/db"
	"jobpromax.app/agent-api/internal/agent"
	"jobpromax.app/agent-api/internal/http/middleware"
	httprouter "jobpromax.app/agent-api/internal/http/router"
	"jobpromax.app/agent-api/internal/service"
	"jobpromax.app/agent-api/internal/store"
	"jobpromax.app/agent-api/internal/tools"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "agent-api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	registry := tools.NewRegistry()
	tools.RegisterDefaults(registry)

	agentClient, err := buildAgentClient(ctx, cfg, registry)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize agent client", "error", err, "backend", cfg.Agent.Backend)
		os.Exit(1)
	}

	stores := store.NewStores(database.Queries())

	services := service.NewServices(stores, service.NewTxRunner(database), agentClient, cfg.IsDevelopment())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, registry)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// buildAgentClient wires the configured backend. In development a missing
// configuration falls back to the mock backend so the API stays usable
// without remote credentials; production refuses to start.
func buildAgentClient(ctx context.Context, cfg config.Config, registry *tools.Registry) (agent.Client, error) {
	agentCfg := agent.Config{
		Backend:          cfg.Agent.Backend,
		APIKey:           cfg.Agent.OpenAIAPIKey,
		BaseURL:          cfg.Agent.OpenAIBaseURL,
		AssistantID:      cfg.Agent.OpenAIAssistantID,
		LangGraphBaseURL: cfg.Agent.LangGraphBaseURL,
		LangGraphAPIKey:  cfg.Agent.LangGraphAPIKey,
	}

	if cfg.IsDevelopment() && !cfg.Agent.Configured() {
		slog.WarnContext(ctx, "agent backend not configured, using mock backend", "backend", cfg.Agent.Backend)
		agentCfg.Backend = agent.BackendMock
	}

	return agent.New(agentCfg, registry)
}

func setupRouter(cfg config.Config, services *service.Services, registry *tools.Registry) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-API-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	httprouter.SetupRoutes(router, services, registry, httprouter.RouterConfig{
		AdminAPIKey:  cfg.AdminAPIKey,
		IsProduction: cfg.IsProduction(),
	})

	return router
}

const banner = `
 █████╗  ██████╗ ███████╗███╗   ██╗████████╗     █████╗ ██████╗ ██╗
██╔══██╗██╔════╝ ██╔════╝████╗  ██║╚══██╔══╝    ██╔══██╗██╔══██╗██║
███████║██║  ███╗█████╗  ██╔██╗ ██║   ██║       ███████║██████╔╝██║
██╔══██║██║   ██║██╔══╝  ██║╚██╗██║   ██║       ██╔══██║██╔═══╝ ██║
██║  ██║╚██████╔╝███████╗██║ ╚████║   ██║       ██║  ██║██║     ██║
╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝   ╚═╝         ╚═╝  ╚═╝╚═╝     ╚═╝
`
