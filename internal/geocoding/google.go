package geocoding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openroam/wander/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for Google Maps API
// and a logger for logging purposes. It is used to interact with the
// Google Maps geocoding services.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// NewGoogleProvider initializes a new GoogleProvider with the given API client and logger.
// Returns a pointer to the GoogleProvider.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode takes a context and a free-text query as input, and returns the
// search center for the query using the Google Maps Geocoding API. Only the
// first result is used; its formatted address becomes the center label.
// Returns ErrNoResults when the API responds with no candidates.
func (gp *GoogleProvider) Geocode(ctx context.Context, query string) (*models.SearchCenter, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "query", query)

	req := maps.GeocodingRequest{Address: query}
	geocodeResponse, err := gp.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode query: %w", err)
	}

	if len(geocodeResponse) == 0 {
		return nil, ErrNoResults
	}
	first := geocodeResponse[0]

	return &models.SearchCenter{
		Coordinates: models.Coordinates{
			Latitude:  first.Geometry.Location.Lat,
			Longitude: first.Geometry.Location.Lng,
		},
		Label: first.FormattedAddress,
	}, nil
}
