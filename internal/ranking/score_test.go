package ranking_test

import (
	"math"
	"testing"

	"github.com/openroam/wander/internal/models"
	"github.com/openroam/wander/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceMeters(t *testing.T) {
	t.Parallel()

	t.Run("identical points", func(t *testing.T) {
		t.Parallel()
		point := models.Coordinates{Latitude: 50.45, Longitude: 30.52}

		assert.Zero(t, ranking.DistanceMeters(point, point))
	})

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		t.Parallel()
		a := models.Coordinates{Latitude: 0, Longitude: 0}
		b := models.Coordinates{Latitude: 0, Longitude: 1}

		// One degree of arc on a sphere of radius 6371 km is ~111.19 km.
		assert.InDelta(t, 111195, ranking.DistanceMeters(a, b), 50)
	})

	t.Run("symmetry", func(t *testing.T) {
		t.Parallel()
		a := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
		b := models.Coordinates{Latitude: 52.5200, Longitude: 13.4050}

		assert.InEpsilon(t, ranking.DistanceMeters(a, b), ranking.DistanceMeters(b, a), 1e-9)
	})

	t.Run("known city pair", func(t *testing.T) {
		t.Parallel()
		paris := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
		berlin := models.Coordinates{Latitude: 52.5200, Longitude: 13.4050}

		// Paris to Berlin is roughly 878 km great-circle.
		assert.InDelta(t, 878000, ranking.DistanceMeters(paris, berlin), 5000)
	})
}

func TestRelevanceScore(t *testing.T) {
	t.Parallel()

	t.Run("finite and positive at zero distance", func(t *testing.T) {
		t.Parallel()
		score := ranking.RelevanceScore(0)

		require.False(t, math.IsInf(score, 0))
		assert.InEpsilon(t, 1_000_000.0, score, 1e-9)
	})

	t.Run("strictly decreasing in distance", func(t *testing.T) {
		t.Parallel()
		distances := []float64{0, 1, 10, 500, 2000, 50000, 1e7}

		for i := 1; i < len(distances); i++ {
			closer := ranking.RelevanceScore(distances[i-1])
			farther := ranking.RelevanceScore(distances[i])
			assert.Greater(t, closer, farther, "score must drop between %v and %v meters", distances[i-1], distances[i])
		}
	})

	t.Run("positive for any non-negative distance", func(t *testing.T) {
		t.Parallel()
		for _, d := range []float64{0, 0.5, 999, 1e6, 1e12} {
			score := ranking.RelevanceScore(d)
			assert.Positive(t, score)
			assert.False(t, math.IsInf(score, 0))
			assert.False(t, math.IsNaN(score))
		}
	})
}
