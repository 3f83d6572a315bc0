package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openroam/wander/internal/geocoding"
	"github.com/openroam/wander/internal/models"
	"github.com/openroam/wander/internal/ranking"
	"github.com/openroam/wander/internal/service"
)

// searchRequest carries either a free-text query or an explicit coordinate
// pair, typically the device location.
type searchRequest struct {
	Query     string   `json:"query"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Label     string   `json:"label"`
	Mood      string   `json:"mood"`
}

type toggleRequest struct {
	PlaceID string `json:"place_id"`
}

type reviewRequest struct {
	PlaceID string `json:"place_id"`
	Stars   int    `json:"stars"`
	Comment string `json:"comment"`
}

type placesResponse struct {
	Center  *models.SearchCenter `json:"center,omitempty"`
	List    []models.Place       `json:"list"`
	Markers []models.Place       `json:"markers"`
}

func (s *Server) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	var result *service.SearchResult
	var err error
	switch {
	case req.Query != "":
		result, err = s.svc.Search(c.Request.Context(), req.Query, req.Mood)
	case req.Latitude != nil && req.Longitude != nil:
		center := models.SearchCenter{
			Coordinates: models.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude},
			Label:       req.Label,
		}
		result, err = s.svc.SearchAt(c.Request.Context(), center, req.Mood)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either query or latitude and longitude are required"})
		return
	}
	if err != nil {
		s.renderError(c, err, http.StatusBadGateway)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) places(c *gin.Context) {
	tab, err := ranking.ParseTab(c.Query("tab"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sortKey, err := ranking.ParseSortKey(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := ranking.ViewState{Tab: tab, Sort: sortKey, SearchText: c.Query("q")}
	if raw := c.Query("max_distance_m"); raw != "" {
		limit, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid max_distance_m %q", raw)})
			return
		}
		state.DistanceLimitMeters = limit
	}

	view, err := s.svc.View(c.Request.Context(), state)
	if err != nil {
		s.renderError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, placesResponse{
		Center:  s.svc.Center(),
		List:    view.List,
		Markers: view.Markers,
	})
}

func (s *Server) geocode(c *gin.Context) {
	center, err := s.svc.Locate(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.renderError(c, err, http.StatusBadGateway)
		return
	}

	c.JSON(http.StatusOK, center)
}

func (s *Server) moods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moods": s.svc.Moods()})
}

func (s *Server) favorites(c *gin.Context) {
	entries, err := s.svc.Favorites(c.Request.Context())
	if err != nil {
		s.renderError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(entries), "favorites": entries})
}

func (s *Server) toggleFavorite(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.PlaceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "place_id is required"})
		return
	}

	saved, err := s.svc.ToggleFavorite(c.Request.Context(), req.PlaceID)
	if err != nil {
		s.renderError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"place_id": req.PlaceID, "saved": saved})
}

func (s *Server) reviews(c *gin.Context) {
	placeID := c.Query("place_id")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "place_id is required"})
		return
	}

	reviews, err := s.svc.Reviews(c.Request.Context(), placeID)
	if err != nil {
		s.renderError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"place_id": placeID, "count": len(reviews), "reviews": reviews})
}

func (s *Server) addReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.PlaceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "place_id is required"})
		return
	}

	review, err := s.svc.AddReview(c.Request.Context(), req.PlaceID, req.Stars, req.Comment)
	if err != nil {
		s.renderError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// renderError maps service errors to status codes. Validation failures become
// 400, lookups that found nothing become 404, anything else keeps the
// handler's fallback status.
func (s *Server) renderError(c *gin.Context, err error, fallback int) {
	status := fallback
	switch {
	case errors.Is(err, service.ErrEmptyQuery),
		errors.Is(err, service.ErrUnknownMood),
		errors.Is(err, service.ErrInvalidStars),
		errors.Is(err, service.ErrInvalidCoordinates):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownPlace),
		errors.Is(err, geocoding.ErrNoResults):
		status = http.StatusNotFound
	}

	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(c.Request.Context(), "Request failed",
			"path", c.Request.URL.Path, "status", status, "error", err)
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
