package router

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytgrab/internal/api/handlers"
	"github.com/denisAlshanov/ytgrab/internal/api/middleware"
	"github.com/denisAlshanov/ytgrab/internal/config"
)

type Router struct {
	server *http.Server
}

func NewRouter(cfg *config.Config, healthHandler *handlers.HealthHandler) *Router {
	// Set Gin mode
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Add middleware
	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())

	// Health endpoints
	engine.GET("/health", healthHandler.Health)
	engine.GET("/ready", healthHandler.Readiness)
	engine.GET("/live", healthHandler.Liveness)

	return &Router{
		server: &http.Server{
			Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler: engine,
		},
	}
}

func (r *Router) Start() error {
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
