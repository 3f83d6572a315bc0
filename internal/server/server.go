// Package server exposes the places service as a JSON REST API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openroam/wander/internal/models"
	"github.com/openroam/wander/internal/ranking"
	"github.com/openroam/wander/internal/service"
)

// Server timeouts, in seconds.
const (
	readTimeout     = 5
	writeTimeout    = 10
	shutdownTimeout = 10
)

// Service is the surface of the places service the handlers need. It is an
// interface so handler tests can run against a mock.
type Service interface {
	Search(ctx context.Context, query, mood string) (*service.SearchResult, error)
	SearchAt(ctx context.Context, center models.SearchCenter, mood string) (*service.SearchResult, error)
	Locate(ctx context.Context, query string) (*models.SearchCenter, error)
	View(ctx context.Context, state ranking.ViewState) (ranking.View, error)
	ToggleFavorite(ctx context.Context, placeID string) (bool, error)
	Favorites(ctx context.Context) ([]models.FavoriteEntry, error)
	AddReview(ctx context.Context, placeID string, stars int, comment string) (*models.Review, error)
	Reviews(ctx context.Context, placeID string) ([]models.Review, error)
	Moods() []models.Mood
	Center() *models.SearchCenter
}

// Server routes API requests to the places service.
type Server struct {
	log    *slog.Logger
	svc    Service
	engine *gin.Engine
	port   int
}

// New creates a Server with its routes registered.
func New(log *slog.Logger, svc Service, port int) *Server {
	engine := gin.New()
	engine.Use(RequestLogger(log), gin.Recovery())

	srv := &Server{log: log, svc: svc, engine: engine, port: port}

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/search", srv.search)
		v1.GET("/places", srv.places)
		v1.GET("/geocode", srv.geocode)
		v1.GET("/moods", srv.moods)
		v1.GET("/favorites", srv.favorites)
		v1.POST("/favorites/toggle", srv.toggleFavorite)
		v1.GET("/reviews", srv.reviews)
		v1.POST("/reviews", srv.addReview)
	}

	return srv
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API until the context is canceled, then shuts down
// gracefully. A listener failure is returned immediately.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.engine,
		ReadTimeout:  readTimeout * time.Second,
		WriteTimeout: writeTimeout * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.InfoContext(ctx, "Starting API server", "port", s.port)

	select {
	case err := <-errCh:
		return fmt.Errorf("api server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down api server: %w", err)
	}
	s.log.Info("API server stopped gracefully")

	return nil
}
