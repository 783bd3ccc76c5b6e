package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theoremus-urban-solutions/journey-planner/config"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
	"github.com/theoremus-urban-solutions/journey-planner/source"
)

// Deps are the collaborators shared by the handlers.
type Deps struct {
	// Planner answers journey requests, usually a *planner.Cache.
	Planner planner.JourneyPlanner

	// Dataset serves station lookups and reloads.
	Dataset *source.Dataset

	// Cache is reported on the health endpoint. Nil when caching is off.
	Cache *planner.Cache

	// MaxResults is the largest results value a journey request may ask
	// for. Zero means planner.DefaultMaxResultCount.
	MaxResults int

	Logger *slog.Logger
}

// Server is the HTTP front end of the planner.
type Server struct {
	cfg    config.ServerConfig
	router *gin.Engine
	http   *http.Server
	log    *slog.Logger
}

// New creates a server with all routes registered.
func New(cfg config.ServerConfig, d Deps) *Server {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(d.Logger), RequestMetrics())
	RegisterRoutes(router, d)

	return &Server{
		cfg:    cfg,
		router: router,
		log:    d.Logger,
		http: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// RegisterRoutes mounts the API on r.
func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")
	{
		api.GET("/health", HandleHealth(d))
		api.GET("/journeys", HandlePlanJourneys(d))
		api.GET("/stations", HandleListStations(d))
		api.GET("/stations/:code", HandleGetStation(d))
		api.POST("/admin/reload", HandleReload(d))
	}
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is done, then shuts down gracefully within
// the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()
	s.log.Info("server listening", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.log.Error("server shutdown error", slog.String("error", err.Error()))
		return err
	}
	s.log.Info("server shut down successfully")
	return nil
}
