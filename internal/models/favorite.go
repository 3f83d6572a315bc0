package models

import "time"

// FavoriteEntry is a Place snapshot pinned by the user, stored independently
// of live search results so a favorite stays viewable after the result set is
// replaced by a new search. Favorites form a set keyed by place ID with
// toggle semantics; re-adding a toggled-off favorite assigns a fresh SavedAt.
type FavoriteEntry struct {
	Place
	SavedAt time.Time `json:"saved_at"`
}
