package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fruitstand/backend/config"
	"github.com/fruitstand/backend/internal/api"
	"github.com/fruitstand/backend/internal/middleware"
	"github.com/fruitstand/backend/internal/service"
	"github.com/fruitstand/backend/internal/store"
)

// Server wires the recipe service into a gin engine.
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *zap.Logger
}

// New assembles the router, middleware and handlers.
func New(cfg *config.Config, st store.Store, log *zap.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type", "Accept", "Origin",
			middleware.HeaderUserID, middleware.HeaderUserHandle,
		},
	}))
	router.Use(middleware.Identity(middleware.HeaderResolver{}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	recipeHandler := api.NewRecipeHandler(service.NewRecipeService(st, log))
	recipeHandler.RegisterRoutes(router.Group("/api"))

	return &Server{router: router, log: log}
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// Start begins serving and blocks until the listener fails or is shut down.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	s.log.Info("server listening", zap.String("addr", addr))

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
