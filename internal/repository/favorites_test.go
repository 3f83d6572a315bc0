package repository_test

import (
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/openroam/wander/internal/models"
	"github.com/openroam/wander/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listFavoritesQuery = `
		SELECT place_id, name, category, latitude, longitude, distance_m, relevance, attributes, saved_at
		FROM favorites
		ORDER BY saved_at ASC;
	`

func testEntry(savedAt time.Time) models.FavoriteEntry {
	return models.FavoriteEntry{
		Place: models.Place{
			ID:       "node/123",
			Name:     "Corner Cafe",
			Category: "cafe",
			Coordinates: models.Coordinates{
				Latitude:  48.8566,
				Longitude: 2.3522,
			},
			DistanceMeters: 420.5,
			RelevanceScore: 2372.18,
			Attributes:     map[string]string{"cuisine": "french"},
		},
		SavedAt: savedAt,
	}
}

func TestListFavorites(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	savedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("error - query favorites", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listFavoritesQuery)).
			WillReturnError(assert.AnError)

		entries, err := repo.ListFavorites(ctx)

		require.Nil(t, entries)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to query favorites")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan favorite", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listFavoritesQuery)).
			WillReturnRows(
				pgxmock.NewRows([]string{
					"place_id", "name", "category", "latitude", "longitude",
					"distance_m", "relevance", "attributes", "saved_at",
				}).AddRow("node/123", "Corner Cafe", "cafe", "not-a-float", 2.3522,
					420.5, 2372.18, []byte(`{}`), savedAt),
			)

		entries, err := repo.ListFavorites(ctx)

		require.Nil(t, entries)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to scan favorite")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - rows error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listFavoritesQuery)).
			WillReturnRows(
				pgxmock.NewRows([]string{
					"place_id", "name", "category", "latitude", "longitude",
					"distance_m", "relevance", "attributes", "saved_at",
				}).AddRow("node/123", "Corner Cafe", "cafe", 48.8566, 2.3522,
					420.5, 2372.18, []byte(`{}`), savedAt).
					RowError(1, assert.AnError),
			)

		entries, err := repo.ListFavorites(ctx)

		require.Nil(t, entries)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to read row")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - list favorites with attributes", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listFavoritesQuery)).
			WillReturnRows(
				pgxmock.NewRows([]string{
					"place_id", "name", "category", "latitude", "longitude",
					"distance_m", "relevance", "attributes", "saved_at",
				}).AddRow("node/123", "Corner Cafe", "cafe", 48.8566, 2.3522,
					420.5, 2372.18, []byte(`{"cuisine":"french"}`), savedAt).
					AddRow("way/42", "City Park", "park", 48.8600, 2.3500,
						900.0, 1109.88, []byte(nil), savedAt.Add(time.Hour)),
			)

		entries, err := repo.ListFavorites(ctx)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "node/123", entries[0].ID)
		assert.Equal(t, "Corner Cafe", entries[0].Name)
		assert.Equal(t, "french", entries[0].Attributes["cuisine"])
		assert.InEpsilon(t, 420.5, entries[0].DistanceMeters, 1e-9)
		assert.Equal(t, savedAt, entries[0].SavedAt)
		assert.Equal(t, "way/42", entries[1].ID)
		assert.Nil(t, entries[1].Attributes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIsFavorite(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE place_id = $1);`

	t.Run("error - check favorite", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("node/123").
			WillReturnError(assert.AnError)

		_, err = repo.IsFavorite(ctx, "node/123")

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to check favorite")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - favorite exists", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("node/123").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.IsFavorite(ctx, "node/123")

		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - favorite missing", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("node/999").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.IsFavorite(ctx, "node/999")

		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddFavorite(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	savedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entry := testEntry(savedAt)

	t.Run("error - insert favorite", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec("INSERT INTO favorites").
			WithArgs(entry.ID, entry.Name, entry.Category,
				entry.Coordinates.Latitude, entry.Coordinates.Longitude,
				entry.DistanceMeters, entry.RelevanceScore,
				[]byte(`{"cuisine":"french"}`), entry.SavedAt).
			WillReturnError(assert.AnError)

		err = repo.AddFavorite(ctx, entry)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to insert favorite")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - insert favorite", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec("INSERT INTO favorites").
			WithArgs(entry.ID, entry.Name, entry.Category,
				entry.Coordinates.Latitude, entry.Coordinates.Longitude,
				entry.DistanceMeters, entry.RelevanceScore,
				[]byte(`{"cuisine":"french"}`), entry.SavedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err = repo.AddFavorite(ctx, entry)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRemoveFavorite(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := `DELETE FROM favorites WHERE place_id = $1;`

	t.Run("error - delete favorite", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("node/123").
			WillReturnError(assert.AnError)

		err = repo.RemoveFavorite(ctx, "node/123")

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to delete favorite")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - delete favorite", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("node/123").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err = repo.RemoveFavorite(ctx, "node/123")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
