// Package service orchestrates searches: it resolves the query to a center,
// pulls nearby places from the geodata API, computes distances and relevance
// once at ingest, and serves filtered views over the installed results.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/openroam/wander/internal/cache"
	"github.com/openroam/wander/internal/geocoding"
	"github.com/openroam/wander/internal/geodata"
	"github.com/openroam/wander/internal/metrics"
	"github.com/openroam/wander/internal/models"
	"github.com/openroam/wander/internal/ranking"
	"github.com/openroam/wander/internal/repository"
)

// Defaults applied when Options leaves a field zero.
const (
	DefaultListCap       = 50
	DefaultRadiusMeters  = 1500
	DefaultMaxAttempts   = 3
	DefaultRetryInterval = 2 * time.Second
)

// Upstream source labels for metrics.
const (
	sourceGeocoding = "geocoding"
	sourceGeodata   = "geodata"
)

// Search outcome labels for metrics.
const (
	statusSuccess = "success"
	statusFailure = "failure"
)

// Common errors returned by the service. Handlers map them to status codes.
var (
	ErrEmptyQuery         = errors.New("search query must not be empty")
	ErrUnknownMood        = errors.New("unknown mood")
	ErrUnknownPlace       = errors.New("unknown place")
	ErrInvalidStars       = errors.New("stars must be between 1 and 5")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
)

// GeodataClient fetches raw nearby places around a center.
type GeodataClient interface {
	FetchPlaces(
		ctx context.Context,
		center models.Coordinates,
		radiusMeters float64,
		selectors []string,
	) ([]geodata.RawPlace, error)
}

// SnapshotStore persists the last successful search across restarts.
type SnapshotStore interface {
	Save(snapshot *cache.Snapshot) error
	Load() (*cache.Snapshot, error)
}

// SearchResult is the outcome of a completed search.
type SearchResult struct {
	Center models.SearchCenter `json:"center"`
	Places []models.Place      `json:"places"`
}

// Options bundles the tunables for NewPlacesService.
type Options struct {
	ProviderName  string        // Geocoding provider name, used in logs
	RadiusMeters  float64       // Geodata search radius around the center
	ListCap       int           // Maximum number of places in the list view
	MaxAttempts   uint          // Upstream attempts per request (1 = no retry)
	RetryInterval time.Duration // Pause between retry attempts
	Moods         []models.Mood // Mood presets; nil selects the defaults
}

// PlacesService owns the installed search state and every operation over it.
type PlacesService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for data repository access
	provider     geocoding.Provider   // Geocoding provider for resolving queries
	providerName string               // Name of the provider for logging
	geodata      GeodataClient        // Geodata client for nearby place lookups
	snapshots    SnapshotStore        // Store for the last-search snapshot
	metrics      *metrics.Metrics     // Metrics for tracking service performance

	moods         []models.Mood
	radiusMeters  float64
	listCap       int
	maxAttempts   uint
	retryInterval time.Duration

	// dispatchSeq numbers searches as they are dispatched; installedSeq is the
	// dispatch number of the currently installed results. A response whose
	// number is below installedSeq lost the race and is discarded.
	dispatchSeq  atomic.Uint64
	mu           sync.RWMutex
	installedSeq uint64
	center       *models.SearchCenter
	results      []models.Place
}

// NewPlacesService creates a new instance of PlacesService. Zero Options
// fields fall back to the package defaults.
func NewPlacesService(
	log *slog.Logger,
	repo repository.Interface,
	provider geocoding.Provider,
	geo GeodataClient,
	snapshots SnapshotStore,
	metrics *metrics.Metrics,
	opts Options,
) *PlacesService {
	if opts.RadiusMeters <= 0 {
		opts.RadiusMeters = DefaultRadiusMeters
	}
	if opts.ListCap <= 0 {
		opts.ListCap = DefaultListCap
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = DefaultRetryInterval
	}
	if len(opts.Moods) == 0 {
		opts.Moods = models.DefaultMoods()
	}

	return &PlacesService{
		log:           log,
		repo:          repo,
		provider:      provider,
		providerName:  opts.ProviderName,
		geodata:       geo,
		snapshots:     snapshots,
		metrics:       metrics,
		moods:         opts.Moods,
		radiusMeters:  opts.RadiusMeters,
		listCap:       opts.ListCap,
		maxAttempts:   opts.MaxAttempts,
		retryInterval: opts.RetryInterval,
	}
}

// Search resolves the query to a center, fetches nearby places for the mood,
// and installs them as the current results. Responses that finish after a
// newer search are discarded; the caller then receives the newer state.
func (s *PlacesService) Search(ctx context.Context, query, mood string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.metrics.SearchesTotal.WithLabelValues(statusFailure).Inc()
		return nil, ErrEmptyQuery
	}

	selectors, err := s.selectorsFor(mood)
	if err != nil {
		s.metrics.SearchesTotal.WithLabelValues(statusFailure).Inc()
		return nil, err
	}

	seq := s.dispatchSeq.Add(1)
	s.log.InfoContext(ctx, "Search dispatched",
		"seq", seq, "query", query, "mood", mood, "provider", s.providerName)

	center, err := s.locate(ctx, query)
	if err != nil {
		s.metrics.SearchesTotal.WithLabelValues(statusFailure).Inc()
		return nil, err
	}

	return s.complete(ctx, seq, center, mood, selectors)
}

// SearchAt runs a search around an explicit center, such as a device
// location, skipping the geocoding step.
func (s *PlacesService) SearchAt(ctx context.Context, center models.SearchCenter, mood string) (*SearchResult, error) {
	if !center.Coordinates.Valid() {
		s.metrics.SearchesTotal.WithLabelValues(statusFailure).Inc()
		return nil, fmt.Errorf("%w: lat=%f, lon=%f", ErrInvalidCoordinates, center.Latitude, center.Longitude)
	}

	selectors, err := s.selectorsFor(mood)
	if err != nil {
		s.metrics.SearchesTotal.WithLabelValues(statusFailure).Inc()
		return nil, err
	}

	seq := s.dispatchSeq.Add(1)
	s.log.InfoContext(ctx, "Search dispatched", "seq", seq, "label", center.Label, "mood", mood)

	return s.complete(ctx, seq, &center, mood, selectors)
}

// complete is the shared tail of a search: fetch, ingest, install, snapshot.
func (s *PlacesService) complete(
	ctx context.Context,
	seq uint64,
	center *models.SearchCenter,
	mood string,
	selectors []string,
) (*SearchResult, error) {
	raw, err := s.fetchPlaces(ctx, center.Coordinates, selectors)
	if err != nil {
		s.metrics.SearchesTotal.WithLabelValues(statusFailure).Inc()
		return nil, err
	}

	places := s.ingest(center.Coordinates, raw)
	s.metrics.SearchesTotal.WithLabelValues(statusSuccess).Inc()

	if !s.install(seq, center, places) {
		s.log.InfoContext(ctx, "Discarding stale search response", "seq", seq)
		return s.currentResult(), nil
	}

	s.metrics.PlacesInResults.Set(float64(len(places)))
	s.log.InfoContext(ctx, "Search installed", "seq", seq, "places", len(places))

	s.saveSnapshot(ctx, center, mood, places)

	return &SearchResult{Center: *center, Places: places}, nil
}

// Locate resolves a free-text query to a search center without touching the
// installed results.
func (s *PlacesService) Locate(ctx context.Context, query string) (*models.SearchCenter, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	return s.locate(ctx, query)
}

// View runs the filter and sort pipeline over the requested tab and returns
// the capped list plus the full marker set. Favorites and review statistics
// are loaded only when the requested view needs them.
func (s *PlacesService) View(ctx context.Context, state ranking.ViewState) (ranking.View, error) {
	s.metrics.ViewRequests.WithLabelValues(string(state.Tab)).Inc()

	var favorites []models.Place
	if state.Tab == ranking.TabSaved {
		entries, err := s.repo.ListFavorites(ctx)
		if err != nil {
			return ranking.View{}, err
		}
		favorites = make([]models.Place, 0, len(entries))
		for _, entry := range entries {
			favorites = append(favorites, entry.Place)
		}
	}

	var stats map[string]models.ReviewSummary
	if state.Sort == ranking.SortRating {
		var err error
		stats, err = s.repo.ReviewStats(ctx)
		if err != nil {
			return ranking.View{}, err
		}
	}

	s.mu.RLock()
	results := s.results
	s.mu.RUnlock()

	return ranking.BuildView(results, favorites, stats, state, s.listCap), nil
}

// ToggleFavorite saves the place when it is not currently a favorite and
// removes it when it is. Re-saving a removed place records a fresh timestamp.
// Returns whether the place is saved after the toggle.
func (s *PlacesService) ToggleFavorite(ctx context.Context, placeID string) (bool, error) {
	saved, err := s.repo.IsFavorite(ctx, placeID)
	if err != nil {
		return false, err
	}

	if saved {
		if err = s.repo.RemoveFavorite(ctx, placeID); err != nil {
			return false, err
		}
		s.log.InfoContext(ctx, "Favorite removed", "place_id", placeID)
		return false, nil
	}

	place, ok := s.findPlace(placeID)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownPlace, placeID)
	}

	entry := models.FavoriteEntry{Place: place, SavedAt: time.Now().UTC()}
	if err = s.repo.AddFavorite(ctx, entry); err != nil {
		return false, err
	}
	s.log.InfoContext(ctx, "Favorite added", "place_id", placeID, "name", place.Name)

	return true, nil
}

// Favorites returns every saved place in insertion order.
func (s *PlacesService) Favorites(ctx context.Context) ([]models.FavoriteEntry, error) {
	return s.repo.ListFavorites(ctx)
}

// AddReview validates and appends a review for a known place. Reviews are
// immutable once written.
func (s *PlacesService) AddReview(
	ctx context.Context,
	placeID string,
	stars int,
	comment string,
) (*models.Review, error) {
	if stars < models.MinStars || stars > models.MaxStars {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStars, stars)
	}

	if _, ok := s.findPlace(placeID); !ok {
		// The place may be a favorite that is no longer in the results.
		saved, err := s.repo.IsFavorite(ctx, placeID)
		if err != nil {
			return nil, err
		}
		if !saved {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlace, placeID)
		}
	}

	review := models.Review{
		ID:        uuid.New(),
		PlaceID:   placeID,
		Stars:     stars,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AddReview(ctx, review); err != nil {
		return nil, err
	}

	return &review, nil
}

// Reviews returns the reviews for a place, newest first.
func (s *PlacesService) Reviews(ctx context.Context, placeID string) ([]models.Review, error) {
	return s.repo.ListReviews(ctx, placeID)
}

// Moods returns the configured mood presets.
func (s *PlacesService) Moods() []models.Mood {
	return s.moods
}

// Center returns the center of the currently installed search, or nil when no
// search has completed yet.
func (s *PlacesService) Center() *models.SearchCenter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.center == nil {
		return nil
	}
	center := *s.center
	return &center
}

// RestoreLastSearch loads the persisted snapshot and installs it as the
// current results. Returns false when no snapshot exists.
func (s *PlacesService) RestoreLastSearch(ctx context.Context) (bool, error) {
	snapshot, err := s.snapshots.Load()
	if err != nil {
		return false, fmt.Errorf("failed to load last search: %w", err)
	}
	if snapshot == nil {
		return false, nil
	}

	seq := s.dispatchSeq.Add(1)
	center := snapshot.Center
	if !s.install(seq, &center, snapshot.Places) {
		return false, nil
	}

	s.metrics.PlacesInResults.Set(float64(len(snapshot.Places)))
	s.log.InfoContext(ctx, "Restored last search",
		"label", center.Label, "mood", snapshot.Mood, "places", len(snapshot.Places))

	return true, nil
}

// locate resolves the query through the geocoding provider, retrying
// transient failures. A provider answer with no candidates is terminal.
func (s *PlacesService) locate(ctx context.Context, query string) (*models.SearchCenter, error) {
	var center *models.SearchCenter

	operation := func() error {
		start := time.Now()
		found, err := s.provider.Geocode(ctx, query)
		s.metrics.UpstreamSeconds.WithLabelValues(sourceGeocoding).Observe(time.Since(start).Seconds())
		if err != nil {
			s.metrics.UpstreamErrors.WithLabelValues(sourceGeocoding).Inc()
			if errors.Is(err, geocoding.ErrNoResults) {
				return backoff.Permanent(err)
			}
			return err
		}
		if !found.Coordinates.Valid() {
			return backoff.Permanent(fmt.Errorf("%w: lat=%f, lon=%f",
				ErrInvalidCoordinates, found.Latitude, found.Longitude))
		}
		center = found
		return nil
	}

	err := backoff.RetryNotify(operation, s.newBackOff(ctx), func(err error, next time.Duration) {
		s.metrics.UpstreamRetries.Inc()
		s.log.WarnContext(ctx, "Retrying geocoding request", "error", err, "next_attempt_in", next)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve location %q: %w", query, err)
	}

	return center, nil
}

// fetchPlaces pulls raw places around the center, retrying transient
// failures. An empty result set is a valid answer and is not retried.
func (s *PlacesService) fetchPlaces(
	ctx context.Context,
	center models.Coordinates,
	selectors []string,
) ([]geodata.RawPlace, error) {
	var raw []geodata.RawPlace

	operation := func() error {
		start := time.Now()
		fetched, err := s.geodata.FetchPlaces(ctx, center, s.radiusMeters, selectors)
		s.metrics.UpstreamSeconds.WithLabelValues(sourceGeodata).Observe(time.Since(start).Seconds())
		if err != nil {
			s.metrics.UpstreamErrors.WithLabelValues(sourceGeodata).Inc()
			return err
		}
		raw = fetched
		return nil
	}

	err := backoff.RetryNotify(operation, s.newBackOff(ctx), func(err error, next time.Duration) {
		s.metrics.UpstreamRetries.Inc()
		s.log.WarnContext(ctx, "Retrying geodata request", "error", err, "next_attempt_in", next)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nearby places: %w", err)
	}

	return raw, nil
}

// newBackOff builds the retry policy: a constant pause between attempts,
// bounded by maxAttempts, canceled with the context.
func (s *PlacesService) newBackOff(ctx context.Context) backoff.BackOff {
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryInterval), uint64(s.maxAttempts-1))
	return backoff.WithContext(policy, ctx)
}

// ingest turns raw geodata records into ranked places. Distance and relevance
// are computed once here; the view pipeline never recomputes them.
func (s *PlacesService) ingest(center models.Coordinates, raw []geodata.RawPlace) []models.Place {
	places := make([]models.Place, 0, len(raw))
	for _, record := range raw {
		distance := ranking.DistanceMeters(center, record.Coordinates)
		places = append(places, models.Place{
			ID:             record.ID,
			Name:           record.Name,
			Category:       record.Category,
			Coordinates:    record.Coordinates,
			DistanceMeters: distance,
			RelevanceScore: ranking.RelevanceScore(distance),
			Attributes:     record.Tags,
		})
	}

	return places
}

// install replaces the current state if seq is still the newest dispatch.
func (s *PlacesService) install(seq uint64, center *models.SearchCenter, places []models.Place) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.installedSeq {
		return false
	}
	s.installedSeq = seq
	s.center = center
	s.results = places

	return true
}

func (s *PlacesService) currentResult() *SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := &SearchResult{Places: s.results}
	if s.center != nil {
		result.Center = *s.center
	}

	return result
}

func (s *PlacesService) findPlace(placeID string) (models.Place, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, place := range s.results {
		if place.ID == placeID {
			return place, true
		}
	}

	return models.Place{}, false
}

func (s *PlacesService) selectorsFor(mood string) ([]string, error) {
	if mood == "" {
		return s.moods[0].Selectors, nil
	}
	for _, preset := range s.moods {
		if preset.Name == mood {
			return preset.Selectors, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownMood, mood)
}

// saveSnapshot persists the installed search. A failed write is logged and
// never fails the search itself.
func (s *PlacesService) saveSnapshot(
	ctx context.Context,
	center *models.SearchCenter,
	mood string,
	places []models.Place,
) {
	snapshot := &cache.Snapshot{
		Center:       *center,
		Mood:         mood,
		RadiusMeters: s.radiusMeters,
		Places:       places,
		SavedAt:      time.Now().UTC(),
	}

	if err := s.snapshots.Save(snapshot); err != nil {
		s.log.WarnContext(ctx, "Failed to persist last search", "error", err)
	}
}
