package mealtime

import (
	"time"

	"messmenu-service/internal/app/models"
)

const dateLayout = "2006-01-02"

// weekdayName maps time.Weekday onto the document's Monday-first day names.
func weekdayName(d time.Weekday) models.Weekday {
	switch d {
	case time.Monday:
		return models.Monday
	case time.Tuesday:
		return models.Tuesday
	case time.Wednesday:
		return models.Wednesday
	case time.Thursday:
		return models.Thursday
	case time.Friday:
		return models.Friday
	case time.Saturday:
		return models.Saturday
	}
	return models.Sunday
}

// currentSlot partitions the 24 hour day by the boundary table. Hours at or
// past DayEnd belong to Breakfast of the following calendar day; rolledOver
// reports that case so the weekday can be advanced exactly once.
func currentSlot(hour int, boundaries BoundaryTable) (slot models.MealSlot, rolledOver bool) {
	if hour >= boundaries.DayEnd {
		return models.Breakfast, true
	}
	slot = models.Breakfast
	for _, candidate := range models.MealSlotOrder {
		if hour >= boundaries.Start(candidate) {
			slot = candidate
		}
	}
	return slot, false
}

// Resolve maps an instant and a menu document onto the meal being served now
// and the one after it. It is pure: no side effects, deterministic for fixed
// inputs, and safe to call concurrently.
//
// Absent day or meal keys resolve to FallbackFood, never an error. Resolve
// fails only on inputs the caller fully controls: a nil document or an
// invalid boundary table.
func Resolve(now time.Time, doc *models.MenuDocument, boundaries BoundaryTable) (*models.ResolvedMealState, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if err := boundaries.Validate(); err != nil {
		return nil, err
	}

	weekday := weekdayName(now.Weekday())
	meal, rolledOver := currentSlot(now.Hour(), boundaries)
	if rolledOver {
		weekday = weekday.Next()
	}

	nextWeekday := weekday
	nextMeal := models.MealSlotOrder[0]
	if !meal.IsLast() {
		nextMeal = models.MealSlotOrder[meal.Index()+1]
	} else {
		nextWeekday = weekday.Next()
	}

	state := &models.ResolvedMealState{
		CurrentWeekday: weekday,
		CurrentMeal:    meal,
		CurrentFood:    foodOrFallback(doc, weekday, meal),
		NextWeekday:    nextWeekday,
		NextMeal:       nextMeal,
		NextFood:       foodOrFallback(doc, nextWeekday, nextMeal),
	}

	if weekStart, ok := doc.WeekStartDate(); ok {
		state.DisplayDate = weekStart.AddDate(0, 0, weekday.Index()).Format(dateLayout)
	}

	return state, nil
}

func foodOrFallback(doc *models.MenuDocument, day models.Weekday, meal models.MealSlot) string {
	if food, ok := doc.Food(day, meal); ok {
		return food
	}
	return FallbackFood
}
