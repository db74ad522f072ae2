package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/viadorassan/viador/backend/go-services/handlers"
	"github.com/viadorassan/viador/backend/go-services/internal/config"
	"github.com/viadorassan/viador/backend/go-services/internal/database"
	"github.com/viadorassan/viador/backend/go-services/pkg/logger"
	"github.com/viadorassan/viador/backend/go-services/pkg/middleware"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP front door: ops routes at the root, the site API under the prefix.
type Server struct {
	engine  *gin.Engine
	http    *http.Server
	started time.Time
}

// New wires the engine. The store must already be seeded: every API route
// is live as soon as Run is called.
func New(cfg config.ServerConfig, store *database.Store, gatherer prometheus.Gatherer) *Server {
	r := gin.New()
	r.Use(ginzap.Ginzap(logger.L(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.L(), true))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())

	s := &Server{engine: r, started: time.Now()}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/ready", s.ready(store))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	handlers.RegisterSwagger(r, cfg.APIPrefix)

	handlers.NewAPIHandler(store).Register(r.Group(cfg.APIPrefix))

	s.http = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler exposes the router (tests drive it with httptest).
func (s *Server) Handler() http.Handler { return s.engine }

// ready returns 200 only when the store answers a ping.
func (s *Server) ready(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		deps := map[string]bool{"database": true}
		if err := store.Ping(ctx); err != nil {
			logger.Warnf("readiness: database ping failed: %v", err)
			deps["database"] = false
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(s.started).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(s.started).String()})
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Infof("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
