package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/openroam/wander/internal/models"
)

// Repository persists favorites and reviews in PostgreSQL.
type Repository struct {
	db  Database
	log *slog.Logger
}

// Database abstracts the pgx connection pool so the repository can run
// against pgxmock in tests.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Interface interface {
	ListFavorites(ctx context.Context) ([]models.FavoriteEntry, error)
	IsFavorite(ctx context.Context, placeID string) (bool, error)
	AddFavorite(ctx context.Context, entry models.FavoriteEntry) error
	RemoveFavorite(ctx context.Context, placeID string) error
	AddReview(ctx context.Context, review models.Review) error
	ListReviews(ctx context.Context, placeID string) ([]models.Review, error)
	ReviewStats(ctx context.Context) (map[string]models.ReviewSummary, error)
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
