package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openroam/wander/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Tab selects the base collection for a view.
type Tab string

const (
	TabDiscover Tab = "discover" // Latest search results.
	TabSaved    Tab = "saved"    // The favorites set.
)

// ParseTab maps a request value to a Tab. The empty string selects discover.
func ParseTab(value string) (Tab, error) {
	switch Tab(value) {
	case "", TabDiscover:
		return TabDiscover, nil
	case TabSaved:
		return TabSaved, nil
	default:
		return "", fmt.Errorf("unknown tab %q", value)
	}
}

// SortKey selects the ordering of a view.
type SortKey string

const (
	SortRelevance    SortKey = "relevance"    // Descending relevance score (default).
	SortDistance     SortKey = "distance"     // Ascending distance from the search center.
	SortAlphabetical SortKey = "alphabetical" // Ascending by name, locale-aware.
	SortRating       SortKey = "rating"       // Descending mean star rating.
)

// ParseSortKey maps a request value to a SortKey. The empty string selects
// relevance.
func ParseSortKey(value string) (SortKey, error) {
	switch SortKey(value) {
	case "", SortRelevance:
		return SortRelevance, nil
	case SortDistance, SortAlphabetical, SortRating:
		return SortKey(value), nil
	default:
		return "", fmt.Errorf("unknown sort key %q", value)
	}
}

// ViewState is the criteria a view is computed from. It is an immutable value
// passed in on every recomputation; the pipeline itself holds no state.
type ViewState struct {
	Tab                 Tab
	DistanceLimitMeters float64 // Discover tab only; a value <= 0 disables the limit.
	SearchText          string  // Case-insensitive substring match on Name; empty disables.
	Sort                SortKey
}

// View is the ordered output of the pipeline. List is capped for the rendered
// list panel; Markers always carries the full filtered and sorted sequence.
type View struct {
	List    []models.Place `json:"list"`
	Markers []models.Place `json:"markers"`
}

// BuildView runs the ranking and filtering pipeline: select the base
// collection for the tab, drop places beyond the distance limit (discover
// only, inclusive bound), drop places whose name does not contain the search
// text, then stable-sort the survivors by the sort key.
//
// Filtering and sorting operate on a fresh slice. The base collections are
// never mutated, so they stay valid for marker rendering and for later
// recomputations with different criteria. The output is deterministic for a
// given input tuple.
//
// listCap truncates List only; a cap <= 0 disables truncation.
func BuildView(
	results, favorites []models.Place,
	stats map[string]models.ReviewSummary,
	vs ViewState,
	listCap int,
) View {
	base := results
	if vs.Tab == TabSaved {
		base = favorites
	}

	needle := strings.ToLower(vs.SearchText)
	filtered := make([]models.Place, 0, len(base))
	for _, place := range base {
		// Favorites may be far from the current search center, so the
		// distance limit binds on the discover tab only.
		if vs.Tab == TabDiscover && vs.DistanceLimitMeters > 0 && place.DistanceMeters > vs.DistanceLimitMeters {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(place.Name), needle) {
			continue
		}
		filtered = append(filtered, place)
	}

	sortPlaces(filtered, vs.Sort, stats)

	list := filtered
	if listCap > 0 && len(list) > listCap {
		list = list[:listCap]
	}

	return View{List: list, Markers: filtered}
}

// sortPlaces orders places in place by the given key. Every ordering is
// stable: places that compare equal keep their input order.
func sortPlaces(places []models.Place, key SortKey, stats map[string]models.ReviewSummary) {
	switch key {
	case SortDistance:
		sort.SliceStable(places, func(i, j int) bool {
			return places[i].DistanceMeters < places[j].DistanceMeters
		})
	case SortAlphabetical:
		// Collators carry internal buffers, so one is created per sort
		// rather than shared across goroutines.
		coll := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(places, func(i, j int) bool {
			return coll.CompareString(places[i].Name, places[j].Name) < 0
		})
	case SortRating:
		// Unrated places report mean 0 and sort after every rated place
		// under descending order, with no tie-break beyond input order.
		sort.SliceStable(places, func(i, j int) bool {
			return stats[places[i].ID].Mean > stats[places[j].ID].Mean
		})
	default:
		sort.SliceStable(places, func(i, j int) bool {
			return places[i].RelevanceScore > places[j].RelevanceScore
		})
	}
}
