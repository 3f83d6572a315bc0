// Package ranking implements the place ranking and filtering pipeline: pure
// functions that convert a working set of places plus the current view state
// into the ordered, bounded sequence to render. The package performs no I/O,
// never fails, and never mutates its inputs.
package ranking

import (
	"math"

	"github.com/openroam/wander/internal/models"
)

// earthRadiusMeters is the mean Earth radius used for great-circle distances.
const earthRadiusMeters = 6371000.0

// relevanceScale keeps nearby results dominant: a place at the search center
// scores one million, a place one kilometer away scores just under a thousand.
const relevanceScale = 1_000_000.0

// DistanceMeters returns the great-circle (haversine) distance between two
// points, in meters.
func DistanceMeters(a, b models.Coordinates) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// RelevanceScore converts a distance into a ranking value. It is strictly
// decreasing in distance and stays finite and positive for every non-negative
// input, including a distance of exactly zero. Distance is the only input:
// category match and ratings do not contribute.
func RelevanceScore(distanceMeters float64) float64 {
	return relevanceScale / (distanceMeters + 1)
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
