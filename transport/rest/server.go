package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
)

type statsProvider interface {
	TierSummary(ctx context.Context, tier engine.Tier) (repository.Summary, error)
}

// Server exposes the health check and the outcome statistics over HTTP.
type Server struct {
	logger *slog.Logger
	stats  statsProvider // nil when stats are disabled
}

func New(logger *slog.Logger, stats statsProvider) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		stats:  stats,
	}
}

// Router builds the HTTP routes. Split from Start so tests can drive the
// handlers without a listener.
func (that *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", that.handlePing)
	router.Get("/stats", that.handleStats)

	return router
}

// Start serves the REST routes until the listener fails or ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
