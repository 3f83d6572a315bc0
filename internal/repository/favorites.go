package repository

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/openroam/wander/internal/models"
)

// ListFavorites returns every saved place, oldest first. The order matches
// insertion order so downstream sorting has a stable base.
func (r *Repository) ListFavorites(ctx context.Context) ([]models.FavoriteEntry, error) {
	query := `
		SELECT place_id, name, category, latitude, longitude, distance_m, relevance, attributes, saved_at
		FROM favorites
		ORDER BY saved_at ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var entries []models.FavoriteEntry
	for rows.Next() {
		var entry models.FavoriteEntry
		var attrs []byte
		if errScan := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Category,
			&entry.Coordinates.Latitude,
			&entry.Coordinates.Longitude,
			&entry.DistanceMeters,
			&entry.RelevanceScore,
			&attrs,
			&entry.SavedAt,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", errScan)
		}
		if len(attrs) > 0 {
			if errAttr := json.Unmarshal(attrs, &entry.Attributes); errAttr != nil {
				return nil, fmt.Errorf("failed to decode favorite attributes: %w", errAttr)
			}
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return entries, nil
}

// IsFavorite reports whether the place is currently saved.
func (r *Repository) IsFavorite(ctx context.Context, placeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE place_id = $1);`

	var exists bool
	if err := r.db.QueryRow(ctx, query, placeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return exists, nil
}

// AddFavorite stores a snapshot of the place. Re-adding an existing favorite
// replaces the snapshot and refreshes its saved_at timestamp.
func (r *Repository) AddFavorite(ctx context.Context, entry models.FavoriteEntry) error {
	query := `
		INSERT INTO favorites (place_id, name, category, latitude, longitude, distance_m, relevance, attributes, saved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (place_id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			distance_m = EXCLUDED.distance_m,
			relevance = EXCLUDED.relevance,
			attributes = EXCLUDED.attributes,
			saved_at = EXCLUDED.saved_at;
	`

	attrs, err := json.Marshal(entry.Attributes)
	if err != nil {
		return fmt.Errorf("failed to encode favorite attributes: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		entry.ID, entry.Name, entry.Category,
		entry.Coordinates.Latitude, entry.Coordinates.Longitude,
		entry.DistanceMeters, entry.RelevanceScore,
		attrs, entry.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	r.log.DebugContext(ctx, "Favorite saved", "place_id", entry.ID, "name", entry.Name)

	return nil
}

// RemoveFavorite deletes the saved place. Removing an absent favorite is a no-op.
func (r *Repository) RemoveFavorite(ctx context.Context, placeID string) error {
	query := `DELETE FROM favorites WHERE place_id = $1;`

	if _, err := r.db.Exec(ctx, query, placeID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}
