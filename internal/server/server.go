// Package server exposes the sizing engine over HTTP and keeps live
// recompute sessions over WebSocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zander1983/WindAndSolar/internal/config"
	"github.com/Zander1983/WindAndSolar/pkg/presets"
)

const shutdownTimeout = 5 * time.Second

// Server is the sizing API server.
type Server struct {
	cfg     config.Config
	presets presets.Source
	cache   *resultCache
	sizer   *sizer
	hub     *Hub
	log     *zap.Logger
	router  *gin.Engine
}

// New creates a server. src supplies the presets clients may select.
func New(cfg config.Config, src presets.Source, logger *zap.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, err := newResultCache(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating result cache: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		presets: src,
		cache:   cache,
		sizer:   newSizer(cache),
		hub:     NewHub(),
		log:     logger,
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(recovery(s.log), requestLogger(s.log))

	r.GET("/health", s.handleHealth)
	r.GET("/ws", s.handleWS)

	api := r.Group("/api")
	{
		api.POST("/size", s.handleSize)
		api.POST("/validate", s.handleValidate)
		api.GET("/presets", s.handleListPresets)
		api.GET("/presets/:name", s.handleGetPreset)
		api.GET("/assumptions", s.handleListAssumptions)
		api.GET("/assumptions/:version", s.handleGetAssumptions)
	}
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("phaseout server starting",
			zap.String("addr", fmt.Sprintf("http://localhost:%d", s.cfg.Port)),
			zap.String("assumptions", s.cfg.Assumptions),
			zap.Int("cache_size", s.cfg.CacheSize))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.cache.close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down", zap.Int("sessions", s.hub.ClientCount()))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.hub.CloseAll()
	err := srv.Shutdown(shutdownCtx)
	s.cache.close()
	return err
}

// Close releases the result cache. Only needed when Start was never called.
func (s *Server) Close() {
	s.hub.CloseAll()
	s.cache.close()
}
