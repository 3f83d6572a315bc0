package models

// Mood is a user-selectable category preset. Its selectors are OSM tag
// filters in "key=value" form (or a bare key) used to scope the geodata
// query to matching kinds of places.
type Mood struct {
	Name      string   `json:"name"`      // Machine name used in API requests.
	Label     string   `json:"label"`     // Display label.
	Selectors []string `json:"selectors"` // OSM tag selectors, e.g. "amenity=cafe".
}

// DefaultMoods returns the built-in presets, used unless overridden in the
// configuration file.
func DefaultMoods() []Mood {
	return []Mood{
		{Name: "work", Label: "Work", Selectors: []string{"amenity=cafe", "amenity=library", "amenity=coworking_space"}},
		{Name: "tourist", Label: "Tourist", Selectors: []string{"tourism=attraction", "tourism=museum", "tourism=viewpoint", "historic=monument"}},
		{Name: "stay", Label: "Stay", Selectors: []string{"tourism=hotel", "tourism=hostel", "tourism=guest_house"}},
		{Name: "eat", Label: "Eat", Selectors: []string{"amenity=restaurant", "amenity=fast_food", "amenity=food_court"}},
		{Name: "fun", Label: "Fun", Selectors: []string{"amenity=bar", "amenity=pub", "amenity=cinema", "amenity=nightclub"}},
		{Name: "relax", Label: "Relax", Selectors: []string{"leisure=park", "leisure=garden", "leisure=nature_reserve"}},
	}
}
