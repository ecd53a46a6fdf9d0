package mealtime

import (
	"fmt"
	"sort"
	"time"

	"messmenu-service/internal/app/models"
)

// Plan emits one reminder per (day, meal) pair present in the document, at
// the slot's configured clock time.
//
// In recurring mode every pair yields exactly one weekly reminder and `from`
// only supplies the timezone. In absolute mode each pair yields a concrete
// fire instant per occurrence of its weekday inside
// [from, from+horizonDays), and only instants strictly after `from` are kept.
//
// The returned set is a full replacement: the consumer must clear any
// previously installed reminders before installing it, so nothing planned
// from an older document survives a refresh.
func Plan(doc *models.MenuDocument, boundaries BoundaryTable, from time.Time, horizonDays int, mode models.PlanMode) ([]models.ReminderRecord, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if err := boundaries.Validate(); err != nil {
		return nil, err
	}
	if !mode.IsValid() {
		return nil, ErrInvalidPlanMode
	}
	if mode == models.PlanModeAbsolute && horizonDays <= 0 {
		return nil, ErrInvalidHorizon
	}

	var records []models.ReminderRecord
	for _, day := range models.WeekdayOrder {
		meals, ok := doc.Menu[day]
		if !ok {
			continue
		}
		for _, meal := range models.MealSlotOrder {
			food, ok := meals[meal]
			if !ok {
				continue
			}
			record := models.ReminderRecord{
				Weekday:  day,
				Meal:     meal,
				FireHour: boundaries.Start(meal),
				Title:    fmt.Sprintf("%s time", meal),
				Body:     food,
			}
			if mode == models.PlanModeRecurring {
				records = append(records, record)
				continue
			}
			for _, fireAt := range occurrences(day, record.FireHour, from, horizonDays) {
				withDate := record
				fireAt := fireAt
				withDate.FireAt = &fireAt
				records = append(records, withDate)
			}
		}
	}

	if mode == models.PlanModeAbsolute {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].FireAt.Before(*records[j].FireAt)
		})
	}
	return records, nil
}

// occurrences lists the fire instants of a weekday/hour pair that fall
// strictly after `from` and before `from`+horizonDays. A weekday occurs zero
// or one time in a 7 day horizon and more in longer ones.
func occurrences(day models.Weekday, hour int, from time.Time, horizonDays int) []time.Time {
	fromDay := weekdayName(from.Weekday())
	offset := (day.Index() - fromDay.Index() + 7) % 7
	horizon := from.AddDate(0, 0, horizonDays)

	var out []time.Time
	for d := offset; d < horizonDays; d += 7 {
		date := from.AddDate(0, 0, d)
		fireAt := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, from.Location())
		if fireAt.After(from) && fireAt.Before(horizon) {
			out = append(out, fireAt)
		}
	}
	return out
}
