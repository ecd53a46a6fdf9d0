package models

import "time"

// PlanMode selects how reminder fire times are expressed.
type PlanMode string

const (
	// PlanModeAbsolute emits concrete fire instants inside a rolling horizon.
	PlanModeAbsolute PlanMode = "absolute"
	// PlanModeRecurring emits one weekly-recurring reminder per day/meal;
	// the external scheduler owns the recurrence.
	PlanModeRecurring PlanMode = "recurring"
)

func (m PlanMode) IsValid() bool {
	return m == PlanModeAbsolute || m == PlanModeRecurring
}

// ReminderRecord is one planned local notification tied to a weekday and meal
// slot. Records are regenerated as a full set and never mutated individually.
type ReminderRecord struct {
	Weekday    Weekday  `json:"weekday"`
	Meal       MealSlot `json:"meal"`
	FireHour   int      `json:"fire_hour"`
	FireMinute int      `json:"fire_minute"`
	// FireAt is set only in absolute mode.
	FireAt *time.Time `json:"fire_at,omitempty"`
	Title  string     `json:"title"`
	Body   string     `json:"body"`
}
