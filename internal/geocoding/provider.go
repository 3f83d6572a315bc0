package geocoding

import (
	"context"
	"errors"

	"github.com/openroam/wander/internal/models"
)

// Provider is an interface that defines a method for resolving a free-text
// location query. The Geocode method takes a context and a query string as
// input, and returns the best-matching search center and an error if any
// occurs. Providers return the first candidate only; ranking among candidates
// is the upstream API's business.
type Provider interface {
	Geocode(ctx context.Context, query string) (*models.SearchCenter, error)
}

// ErrNoResults is returned when the provider found no candidate for the query.
// It marks a terminal outcome, not a transient API failure.
var ErrNoResults = errors.New("geocoding provider returned no results")
