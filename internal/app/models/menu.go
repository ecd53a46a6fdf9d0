package models

import "time"

const weekStartLayout = "2006-01-02"

// MenuMeta carries the document-level dates of a weekly menu. WeekStart may
// be absent or malformed; the document is still served, with display dates
// left empty.
type MenuMeta struct {
	WeekStart   string `json:"weekStart"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// MenuDocument is the decoded weekly menu as fetched from the remote source.
// A day entry may be absent when the document covers a partial week, and a
// meal entry within a present day may be absent; both are legal.
type MenuDocument struct {
	Meta MenuMeta                        `json:"meta"`
	Menu map[Weekday]map[MealSlot]string `json:"menu" validate:"required"`
}

// Food returns the text for a day/meal pair and whether it was present.
func (d *MenuDocument) Food(day Weekday, meal MealSlot) (string, bool) {
	meals, ok := d.Menu[day]
	if !ok {
		return "", false
	}
	food, ok := meals[meal]
	return food, ok
}

// WeekStartDate parses meta.weekStart. A missing or malformed week start is
// not an error for resolution; callers leave the display date empty instead.
func (d *MenuDocument) WeekStartDate() (time.Time, bool) {
	if d.Meta.WeekStart == "" {
		return time.Time{}, false
	}
	start, err := time.Parse(weekStartLayout, d.Meta.WeekStart)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}

// ResolvedMealState is the ephemeral answer to "what is served now and next",
// recomputed on every resolution call.
type ResolvedMealState struct {
	CurrentWeekday Weekday  `json:"current_weekday"`
	CurrentMeal    MealSlot `json:"current_meal"`
	CurrentFood    string   `json:"current_food"`
	NextWeekday    Weekday  `json:"next_weekday"`
	NextMeal       MealSlot `json:"next_meal"`
	NextFood       string   `json:"next_food"`
	// DisplayDate is the calendar date of CurrentWeekday in YYYY-MM-DD form,
	// or empty when the document's week start is missing or unparseable.
	DisplayDate string `json:"display_date,omitempty"`
}

// SyncState tracks the lifecycle of the menu store around the core:
// the resolver and planner only ever see a document in Ready or Stale.
type SyncState string

const (
	SyncStateNoData  SyncState = "no_data"
	SyncStateSyncing SyncState = "syncing"
	SyncStateReady   SyncState = "ready"
	// SyncStateStale means the last refresh failed and the cached document
	// is still being served.
	SyncStateStale SyncState = "stale"
)
