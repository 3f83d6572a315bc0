package models

// Defaults applied at the geodata boundary when a source record lacks the
// corresponding tag.
const (
	DefaultName     = "Unnamed Place"
	DefaultCategory = "place"
)

// Place represents a point of interest. Every Place carries a valid coordinate
// pair: records without one are discarded before a Place is ever constructed.
//
// Fields:
// - ID: opaque source-assigned identifier, stable within a session.
// - Name: display string, DefaultName when the source record has none.
// - Category: short classification tag derived from the source record.
// - Coordinates: location of the place.
// - DistanceMeters: great-circle distance from the active search center, computed once at ingest.
// - RelevanceScore: monotonically decreasing function of distance, computed once at ingest.
// - Attributes: auxiliary source tags, passed through without interpretation.
type Place struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Coordinates    Coordinates       `json:"coordinates"`
	DistanceMeters float64           `json:"distance_meters"`
	RelevanceScore float64           `json:"relevance_score"`
	Attributes     map[string]string `json:"attributes,omitempty"`
}

// SearchCenter is the reference point for distance and relevance computation:
// either the user location or a geocoded search result. A new center replaces
// the previous one wholesale; it is never partially mutated.
type SearchCenter struct {
	Coordinates
	Label string `json:"label,omitempty"` // Optional human-readable place name.
}
