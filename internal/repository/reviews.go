package repository

import (
	"context"
	"fmt"

	"github.com/openroam/wander/internal/models"
)

// AddReview appends a review. Reviews are immutable once written; there is no
// update or delete path.
func (r *Repository) AddReview(ctx context.Context, review models.Review) error {
	query := `
		INSERT INTO reviews (review_id, place_id, stars, comment, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := r.db.Exec(ctx, query, review.ID, review.PlaceID, review.Stars, review.Comment, review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	r.log.DebugContext(ctx, "Review saved", "place_id", review.PlaceID, "stars", review.Stars)

	return nil
}

// ListReviews returns the reviews for a place, newest first.
func (r *Repository) ListReviews(ctx context.Context, placeID string) ([]models.Review, error) {
	query := `
		SELECT review_id, place_id, stars, comment, created_at
		FROM reviews
		WHERE place_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := r.db.Query(ctx, query, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if errScan := rows.Scan(
			&review.ID,
			&review.PlaceID,
			&review.Stars,
			&review.Comment,
			&review.CreatedAt,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan review: %w", errScan)
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return reviews, nil
}

// ReviewStats returns the mean star rating and review count per place, for
// every place that has at least one review.
func (r *Repository) ReviewStats(ctx context.Context) (map[string]models.ReviewSummary, error) {
	query := `
		SELECT place_id, AVG(stars)::double precision, COUNT(*)
		FROM reviews
		GROUP BY place_id;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query review stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]models.ReviewSummary)
	for rows.Next() {
		var placeID string
		var summary models.ReviewSummary
		if errScan := rows.Scan(&placeID, &summary.Mean, &summary.Count); errScan != nil {
			return nil, fmt.Errorf("failed to scan review stats: %w", errScan)
		}
		stats[placeID] = summary
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return stats, nil
}
