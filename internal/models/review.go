package models

import (
	"time"

	"github.com/google/uuid"
)

// Star rating bounds for a review.
const (
	MinStars = 1
	MaxStars = 5
)

// Review is user-authored feedback attached to a place. Reviews for a place
// form an append-only sequence listed newest first; there is no edit or
// delete operation.
type Review struct {
	ID        uuid.UUID `json:"id"`
	PlaceID   string    `json:"place_id"`
	Stars     int       `json:"stars"` // Integer star rating, MinStars..MaxStars.
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewSummary aggregates the recorded star values for one place.
// A place with no reviews reports Mean 0 and Count 0. Callers must use Count
// to distinguish "no rating" from a rated place: stars never go below
// MinStars, so a mean of zero with a non-zero count cannot occur.
type ReviewSummary struct {
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}
