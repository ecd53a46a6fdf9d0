package mealtime

import (
	"errors"

	"messmenu-service/internal/app/models"
)

// FallbackFood is the single fallback text for a day or meal key that is
// absent from the menu document. It is distinct from the "sync pending"
// state reported when no document has been loaded at all.
const FallbackFood = "Not listed"

var (
	ErrNilDocument       = errors.New("mealtime: menu document is nil")
	ErrInvalidBoundaries = errors.New("mealtime: boundary table is not strictly increasing within [0,24]")
	ErrInvalidPlanMode   = errors.New("mealtime: unknown plan mode")
	ErrInvalidHorizon    = errors.New("mealtime: horizon days must be positive")
)

// BoundaryTable maps each meal slot to its starting local hour and fixes the
// hour at which the serving day ends. Hours at or past DayEnd resolve to
// Breakfast of the next calendar day.
type BoundaryTable struct {
	BreakfastStart int
	LunchStart     int
	SnacksStart    int
	DinnerStart    int
	DayEnd         int
}

// DefaultBoundaries is the serving schedule most clients display:
// Breakfast opens the day, Lunch at 11:00, Snacks at 15:00, Dinner at 18:00,
// and the day rolls over at 22:00.
var DefaultBoundaries = BoundaryTable{
	BreakfastStart: 0,
	LunchStart:     11,
	SnacksStart:    15,
	DinnerStart:    18,
	DayEnd:         22,
}

// EarlyBoundaries is the alternate schedule with explicit meal clock times,
// used where reminders should fire at serving time rather than window start.
var EarlyBoundaries = BoundaryTable{
	BreakfastStart: 9,
	LunchStart:     13,
	SnacksStart:    17,
	DinnerStart:    20,
	DayEnd:         22,
}

// Validate checks that the starts are strictly increasing and the whole
// table fits in a 24 hour day.
func (b BoundaryTable) Validate() error {
	if b.BreakfastStart < 0 {
		return ErrInvalidBoundaries
	}
	if b.BreakfastStart >= b.LunchStart ||
		b.LunchStart >= b.SnacksStart ||
		b.SnacksStart >= b.DinnerStart ||
		b.DinnerStart >= b.DayEnd {
		return ErrInvalidBoundaries
	}
	if b.DayEnd > 24 {
		return ErrInvalidBoundaries
	}
	return nil
}

// Start returns the configured start hour for a slot.
func (b BoundaryTable) Start(slot models.MealSlot) int {
	switch slot {
	case models.Breakfast:
		return b.BreakfastStart
	case models.Lunch:
		return b.LunchStart
	case models.Snacks:
		return b.SnacksStart
	case models.Dinner:
		return b.DinnerStart
	}
	return 0
}
