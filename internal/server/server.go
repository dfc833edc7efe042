// Package server exposes manifest resolution over HTTP for the supplier
// portal. The facade accepts fully-formed order records only; looking orders
// up in the external catalog stays with the surrounding application.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grupoom/checking-central/internal/catalog"
	"github.com/grupoom/checking-central/internal/model"
	"github.com/grupoom/checking-central/internal/pipeline"
)

// Server wraps the resolution pipeline behind a gin router.
type Server struct {
	engine   *gin.Engine
	resolver *pipeline.Resolver
	logger   *zap.Logger
	cfg      model.ServerConfig
}

// New creates the HTTP facade.
func New(cfg *model.Config, resolver *pipeline.Resolver, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:   gin.New(),
		resolver: resolver,
		logger:   logger,
		cfg:      cfg.Server,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLogger())
	s.engine.Use(newClientLimiter(cfg.Server.RatePerSecond, cfg.Server.RateBurst).middleware())

	s.engine.GET("/healthz", s.health)
	s.engine.GET("/readyz", s.health)
	s.engine.GET("/api/v1/catalog", s.listCatalog)
	s.engine.POST("/api/v1/manifest", s.resolveManifest)

	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("server listening", zap.String("addr", s.cfg.Addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": catalog.Entries()})
}

func (s *Server) resolveManifest(c *gin.Context) {
	var order model.OrderRecord
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order record: " + err.Error()})
		return
	}
	if order.Number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n_pi is required"})
		return
	}
	order.VehicleCNPJ = model.FormatCNPJ(order.VehicleCNPJ)

	m := s.resolver.Resolve(order)

	s.logger.Info("manifest resolved",
		zap.String("n_pi", order.Number),
		zap.String("meio", m.MediaCode),
		zap.Bool("allowed", m.Gate.Allowed),
		zap.Int("slots", len(m.Slots)),
		zap.Int("locations", len(m.Locations)))

	c.JSON(http.StatusOK, m)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}
