package repository_test

import (
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openroam/wander/internal/models"
	"github.com/openroam/wander/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listReviewsQuery = `
		SELECT review_id, place_id, stars, comment, created_at
		FROM reviews
		WHERE place_id = $1
		ORDER BY created_at DESC;
	`

const reviewStatsQuery = `
		SELECT place_id, AVG(stars)::double precision, COUNT(*)
		FROM reviews
		GROUP BY place_id;
	`

func TestAddReview(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	review := models.Review{
		ID:        uuid.New(),
		PlaceID:   "node/123",
		Stars:     4,
		Comment:   "Good coffee, slow service",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("error - insert review", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec("INSERT INTO reviews").
			WithArgs(review.ID, review.PlaceID, review.Stars, review.Comment, review.CreatedAt).
			WillReturnError(assert.AnError)

		err = repo.AddReview(ctx, review)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to insert review")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - insert review", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec("INSERT INTO reviews").
			WithArgs(review.ID, review.PlaceID, review.Stars, review.Comment, review.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err = repo.AddReview(ctx, review)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListReviews(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	newer := uuid.New()
	older := uuid.New()
	newerAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	olderAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("error - query reviews", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listReviewsQuery)).WithArgs("node/123").
			WillReturnError(assert.AnError)

		reviews, err := repo.ListReviews(ctx, "node/123")

		require.Nil(t, reviews)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to query reviews")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan review", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listReviewsQuery)).WithArgs("node/123").
			WillReturnRows(
				pgxmock.NewRows([]string{"review_id", "place_id", "stars", "comment", "created_at"}).
					AddRow(newer, "node/123", "not-an-int", "ok", newerAt),
			)

		reviews, err := repo.ListReviews(ctx, "node/123")

		require.Nil(t, reviews)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to scan review")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - newest first", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listReviewsQuery)).WithArgs("node/123").
			WillReturnRows(
				pgxmock.NewRows([]string{"review_id", "place_id", "stars", "comment", "created_at"}).
					AddRow(newer, "node/123", 5, "Great spot", newerAt).
					AddRow(older, "node/123", 3, "", olderAt),
			)

		reviews, err := repo.ListReviews(ctx, "node/123")

		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, newer, reviews[0].ID)
		assert.Equal(t, 5, reviews[0].Stars)
		assert.Equal(t, "Great spot", reviews[0].Comment)
		assert.Equal(t, older, reviews[1].ID)
		assert.Empty(t, reviews[1].Comment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewStats(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()

	t.Run("error - query review stats", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(reviewStatsQuery)).
			WillReturnError(assert.AnError)

		stats, err := repo.ReviewStats(ctx)

		require.Nil(t, stats)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to query review stats")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - stats per place", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(reviewStatsQuery)).
			WillReturnRows(
				pgxmock.NewRows([]string{"place_id", "avg", "count"}).
					AddRow("node/123", 4.5, 2).
					AddRow("way/42", 3.0, 1),
			)

		stats, err := repo.ReviewStats(ctx)

		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.InEpsilon(t, 4.5, stats["node/123"].Mean, 1e-9)
		assert.Equal(t, 2, stats["node/123"].Count)
		assert.InEpsilon(t, 3.0, stats["way/42"].Mean, 1e-9)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEnsureSchema(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()

	t.Run("error - schema statement fails", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS favorites").
			WillReturnError(assert.AnError)

		err = repo.EnsureSchema(ctx)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to apply schema statement")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - all statements applied", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS favorites").
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS reviews").
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS reviews_place_created_idx").
			WillReturnResult(pgxmock.NewResult("CREATE", 0))

		err = repo.EnsureSchema(ctx)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
