package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/greeting-api/internal/config"
	"github.com/janisto/greeting-api/internal/http/routes"
	applog "github.com/janisto/greeting-api/internal/platform/logging"
	appmiddleware "github.com/janisto/greeting-api/internal/platform/middleware"
	"github.com/janisto/greeting-api/internal/platform/respond"
	"github.com/janisto/greeting-api/internal/platform/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	if err := run(); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		_ = applog.Sync()
		os.Exit(1)
	}
	_ = applog.Sync()
}

func run() error {
	if err := applog.Err(); err != nil {
		return fmt.Errorf("logger init: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	applog.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	applog.LogInfo(ctx, "starting",
		zap.String("version", Version),
		zap.String("addr", cfg.Addr()),
		zap.Stringer("logLevel", cfg.LogLevel),
	)
	srv := server.New(cfg.Addr(), newRouter(cfg))
	return server.ListenAndServe(ctx, srv, cfg.ShutdownTimeout)
}

// newRouter builds the full middleware stack and registers every route.
func newRouter(cfg config.Config) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(routes.DocsPath, routes.OpenAPIPath, "/schemas"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP and X-Forwarded-For. Only deploy behind a
		// proxy that sets them (Cloud Run, nginx).
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB
		// GetHead answers HEAD with the GET handler; net/http drops the body.
		chimiddleware.GetHead,
		applog.RequestLogger(cfg.ProjectID),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	api := routes.NewAPI(router, Version)
	routes.Register(router, api)
	return router
}
