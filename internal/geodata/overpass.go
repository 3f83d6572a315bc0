// Package geodata queries the Overpass API for raw point-of-interest records
// around a geographic center. It owns the mapping from the Overpass wire
// format to RawPlace records; distance and relevance are computed later, at
// ingest.
package geodata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/openroam/wander/internal/models"
	"golang.org/x/time/rate"
)

// DefaultEndpoint is the public Overpass API interpreter.
const DefaultEndpoint = "https://overpass-api.de/api/interpreter"

const (
	// queryTimeoutSeconds is the server-side timeout requested in the query header.
	queryTimeoutSeconds = 25
	// maxElements bounds how many elements a single query may return.
	maxElements = 200
	// defaultRatePerSecond is applied when no rate limit is configured.
	defaultRatePerSecond = 2
)

// userAgent identifies this service to the public Overpass instances.
const userAgent = "wander/1.0 (+https://github.com/openroam/wander)"

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RawPlace is a point record parsed from an Overpass response. Elements
// without a usable coordinate never become RawPlaces.
type RawPlace struct {
	ID          string             // "type/id", e.g. "node/240109189"; stable per source object.
	Name        string             // models.DefaultName when the record carries no name tag.
	Category    string             // First matching classification tag, models.DefaultCategory otherwise.
	Coordinates models.Coordinates // Direct coordinate for nodes, computed center for ways and relations.
	Tags        map[string]string  // All source tags, passed through untouched.
}

// Client queries the Overpass API.
type Client struct {
	client    HTTPClient    // HTTP client for making requests
	endpoint  string        // Overpass interpreter endpoint
	log       *slog.Logger  // Logger for logging operations
	limiter   *rate.Limiter // Rate limiter
	userAgent string
}

// NewClient creates an Overpass client for the given endpoint. An empty
// endpoint selects the public instance; ratePerSecond bounds outgoing queries
// per the public instances' fair-use policy.
func NewClient(endpoint string, ratePerSecond int, log *slog.Logger) *Client {
	const timeout = 30

	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if ratePerSecond <= 0 {
		ratePerSecond = defaultRatePerSecond
		log.Warn("Rate limit for Overpass API not set, set a default value", "value", ratePerSecond)
	}

	return &Client{
		client:    &http.Client{Timeout: timeout * time.Second},
		endpoint:  endpoint,
		log:       log,
		limiter:   rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
		userAgent: userAgent,
	}
}

// NewClientWithHTTP creates a client with a custom HTTP client and limiter.
// Useful for testing with mocked HTTP clients.
func NewClientWithHTTP(client HTTPClient, endpoint string, limiter *rate.Limiter, log *slog.Logger) *Client {
	return &Client{
		client:    client,
		endpoint:  endpoint,
		log:       log,
		limiter:   limiter,
		userAgent: userAgent,
	}
}

// Overpass wire format (simplified to the fields this service consumes).
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// coordinates returns the element's own coordinate for nodes, or the computed
// center for ways and relations. ok is false when the element carries neither.
func (el overpassElement) coordinates() (models.Coordinates, bool) {
	switch {
	case el.Lat != nil && el.Lon != nil:
		return models.Coordinates{Latitude: *el.Lat, Longitude: *el.Lon}, true
	case el.Center != nil:
		return models.Coordinates{Latitude: el.Center.Lat, Longitude: el.Center.Lon}, true
	default:
		return models.Coordinates{}, false
	}
}

// categoryKeys are checked in order when deriving a category from source tags.
var categoryKeys = []string{"amenity", "tourism", "leisure", "shop", "historic", "natural"}

// FetchPlaces queries the Overpass API for places matching the tag selectors
// within radiusMeters of center. Coordinate-less and malformed elements are
// discarded; an empty result set is a valid outcome, not an error.
func (c *Client) FetchPlaces(
	ctx context.Context,
	center models.Coordinates,
	radiusMeters float64,
	selectors []string,
) ([]RawPlace, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	query := buildQuery(center, radiusMeters, selectors)
	c.log.DebugContext(ctx, "Overpass query built", "query", query)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geodata request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Overpass API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("overpass API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed overpassResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}

	places := make([]RawPlace, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		coords, ok := el.coordinates()
		if !ok {
			c.log.DebugContext(ctx, "Discarding element without coordinates", "type", el.Type, "id", el.ID)
			continue
		}
		places = append(places, RawPlace{
			ID:          fmt.Sprintf("%s/%d", el.Type, el.ID),
			Name:        nameOf(el.Tags),
			Category:    categoryOf(el.Tags),
			Coordinates: coords,
			Tags:        el.Tags,
		})
	}

	c.log.InfoContext(ctx, "Overpass query finished", "elements", len(parsed.Elements), "places", len(places))

	return places, nil
}

// buildQuery assembles an Overpass QL union over the mood selectors. Each
// selector expands to one nwr clause covering nodes, ways, and relations;
// "out center" attaches a computed center coordinate to ways and relations.
func buildQuery(center models.Coordinates, radiusMeters float64, selectors []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];(", queryTimeoutSeconds)
	for _, selector := range selectors {
		key, value, hasValue := strings.Cut(selector, "=")
		if hasValue {
			fmt.Fprintf(&b, "nwr[%q=%q](around:%.0f,%.6f,%.6f);",
				key, value, radiusMeters, center.Latitude, center.Longitude)
		} else {
			fmt.Fprintf(&b, "nwr[%q](around:%.0f,%.6f,%.6f);",
				key, radiusMeters, center.Latitude, center.Longitude)
		}
	}
	fmt.Fprintf(&b, ");out center %d;", maxElements)

	return b.String()
}

func nameOf(tags map[string]string) string {
	if name := tags["name"]; name != "" {
		return name
	}
	return models.DefaultName
}

func categoryOf(tags map[string]string) string {
	for _, key := range categoryKeys {
		if value := tags[key]; value != "" {
			return value
		}
	}
	return models.DefaultCategory
}
