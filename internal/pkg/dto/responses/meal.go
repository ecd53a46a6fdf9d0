package responses

import "messmenu-service/internal/app/models"

// CurrentMeal is the payload of GET /meals/current. SyncState lets clients
// distinguish "sync pending" from a resolved state with fallback text.
type CurrentMeal struct {
	SyncState models.SyncState          `json:"sync_state"`
	State     *models.ResolvedMealState `json:"state,omitempty"`
}

// DayMenu is one day of the week menu with its concrete calendar date.
type DayMenu struct {
	Weekday models.Weekday             `json:"weekday"`
	Date    string                     `json:"date,omitempty"`
	Meals   map[models.MealSlot]string `json:"meals"`
}

// WeekMenu is the payload of GET /meals/week.
type WeekMenu struct {
	SyncState   models.SyncState `json:"sync_state"`
	WeekStart   string           `json:"week_start,omitempty"`
	LastUpdated string           `json:"last_updated,omitempty"`
	Days        []DayMenu        `json:"days,omitempty"`
}
