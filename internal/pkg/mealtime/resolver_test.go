package mealtime

import (
	"testing"
	"time"

	"messmenu-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *models.MenuDocument {
	return &models.MenuDocument{
		Meta: models.MenuMeta{WeekStart: "2024-12-02"},
		Menu: map[models.Weekday]map[models.MealSlot]string{
			models.Monday: {
				models.Breakfast: "Idli Sambar",
				models.Lunch:     "Rajma Chawal",
				models.Snacks:    "Samosa",
				models.Dinner:    "Paneer Butter Masala",
			},
			models.Tuesday: {
				models.Breakfast: "Poha",
				models.Lunch:     "Chole Bhature",
				models.Dinner:    "Veg Biryani",
			},
			models.Wednesday: {
				models.Breakfast: "Upma",
			},
			models.Thursday: {
				models.Dinner: "Dal Makhani",
			},
			models.Friday: {
				models.Breakfast: "Aloo Paratha",
				models.Lunch:     "Kadhi Chawal",
			},
			models.Saturday: {
				models.Dinner: "Masala Dosa",
			},
			models.Sunday: {
				models.Breakfast: "Chana Masala Puri",
			},
		},
	}
}

// instant builds a local time on the given 2024 December date.
func instant(day, hour, minute int) time.Time {
	return time.Date(2024, time.December, day, hour, minute, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	doc := testDocument()

	t.Run("Midday Slot", func(t *testing.T) {
		// Monday 2024-12-02, 12:00 falls inside [11,15): Lunch.
		state, err := Resolve(instant(2, 12, 0), doc, DefaultBoundaries)
		require.NoError(t, err)

		assert.Equal(t, models.Monday, state.CurrentWeekday)
		assert.Equal(t, models.Lunch, state.CurrentMeal)
		assert.Equal(t, "Rajma Chawal", state.CurrentFood)
		assert.Equal(t, models.Monday, state.NextWeekday, "next slot stays on the same weekday")
		assert.Equal(t, models.Snacks, state.NextMeal)
		assert.Equal(t, "Samosa", state.NextFood)
	})

	t.Run("Day End Rolls Over To Next Day Breakfast", func(t *testing.T) {
		// Thursday 2024-12-05, 23:00 is past the 22:00 day end.
		state, err := Resolve(instant(5, 23, 0), doc, DefaultBoundaries)
		require.NoError(t, err)

		assert.Equal(t, models.Friday, state.CurrentWeekday)
		assert.Equal(t, models.Breakfast, state.CurrentMeal)
		assert.Equal(t, "Aloo Paratha", state.CurrentFood)
		assert.Equal(t, models.Friday, state.NextWeekday)
		assert.Equal(t, models.Lunch, state.NextMeal)
	})

	t.Run("Dinner Wraps To Next Weekday", func(t *testing.T) {
		// Saturday 2024-12-07, 19:00 is Dinner; next is Sunday Breakfast.
		state, err := Resolve(instant(7, 19, 0), doc, DefaultBoundaries)
		require.NoError(t, err)

		assert.Equal(t, models.Saturday, state.CurrentWeekday)
		assert.Equal(t, models.Dinner, state.CurrentMeal)
		assert.Equal(t, "Masala Dosa", state.CurrentFood)
		assert.Equal(t, models.Sunday, state.NextWeekday)
		assert.Equal(t, models.Breakfast, state.NextMeal)
		assert.Equal(t, "Chana Masala Puri", state.NextFood)
	})

	t.Run("Sunday Dinner Wraps To Monday", func(t *testing.T) {
		// Sunday 2024-12-08, 20:00.
		state, err := Resolve(instant(8, 20, 0), doc, DefaultBoundaries)
		require.NoError(t, err)

		assert.Equal(t, models.Sunday, state.CurrentWeekday)
		assert.Equal(t, models.Dinner, state.CurrentMeal)
		assert.Equal(t, models.Monday, state.NextWeekday)
		assert.Equal(t, models.Breakfast, state.NextMeal)
		assert.Equal(t, "Idli Sambar", state.NextFood)
	})

	t.Run("Missing Meal Falls Back", func(t *testing.T) {
		// Tuesday 2024-12-03, 16:00 is Snacks but Tuesday lists none.
		state, err := Resolve(instant(3, 16, 0), doc, DefaultBoundaries)
		require.NoError(t, err)

		assert.Equal(t, models.Tuesday, state.CurrentWeekday)
		assert.Equal(t, models.Snacks, state.CurrentMeal)
		assert.Equal(t, FallbackFood, state.CurrentFood)
		assert.Equal(t, models.Dinner, state.NextMeal)
		assert.Equal(t, "Veg Biryani", state.NextFood)
	})

	t.Run("Missing Day Falls Back", func(t *testing.T) {
		empty := &models.MenuDocument{
			Meta: models.MenuMeta{WeekStart: "2024-12-02"},
			Menu: map[models.Weekday]map[models.MealSlot]string{},
		}
		state, err := Resolve(instant(2, 12, 0), empty, DefaultBoundaries)
		require.NoError(t, err)

		assert.Equal(t, FallbackFood, state.CurrentFood)
		assert.Equal(t, FallbackFood, state.NextFood)
	})

	t.Run("Display Date Offsets Week Start", func(t *testing.T) {
		// Wednesday 2024-12-04 at 08:00, week start Monday 2024-12-02.
		state, err := Resolve(instant(4, 8, 0), doc, DefaultBoundaries)
		require.NoError(t, err)

		assert.Equal(t, models.Wednesday, state.CurrentWeekday)
		assert.Equal(t, "2024-12-04", state.DisplayDate)
	})

	t.Run("Unparseable Week Start Leaves Display Date Empty", func(t *testing.T) {
		broken := testDocument()
		broken.Meta.WeekStart = "12/02/2024"

		state, err := Resolve(instant(2, 12, 0), broken, DefaultBoundaries)
		require.NoError(t, err)

		assert.Empty(t, state.DisplayDate)
		assert.Equal(t, "Rajma Chawal", state.CurrentFood, "other fields are unaffected")
	})

	t.Run("Nil Document Rejected", func(t *testing.T) {
		_, err := Resolve(instant(2, 12, 0), nil, DefaultBoundaries)
		assert.ErrorIs(t, err, ErrNilDocument)
	})

	t.Run("Invalid Boundary Table Rejected", func(t *testing.T) {
		bad := BoundaryTable{BreakfastStart: 0, LunchStart: 15, SnacksStart: 11, DinnerStart: 18, DayEnd: 22}
		_, err := Resolve(instant(2, 12, 0), doc, bad)
		assert.ErrorIs(t, err, ErrInvalidBoundaries)
	})
}

func TestResolveSlotPartition(t *testing.T) {
	doc := testDocument()

	for _, boundaries := range []BoundaryTable{DefaultBoundaries, EarlyBoundaries} {
		previousIndex := -1
		transitions := 0

		for hour := 0; hour < 24; hour++ {
			state, err := Resolve(instant(2, hour, 30), doc, boundaries)
			require.NoError(t, err)
			require.True(t, state.CurrentMeal.IsValid(), "hour %d must resolve to exactly one slot", hour)

			index := state.CurrentMeal.Index()
			if state.CurrentWeekday != models.Monday {
				// Past the day end every remaining hour is next-day Breakfast.
				assert.Equal(t, models.Breakfast, state.CurrentMeal, "hour %d", hour)
				assert.Equal(t, models.Tuesday, state.CurrentWeekday, "hour %d", hour)
				continue
			}

			if previousIndex >= 0 {
				assert.GreaterOrEqual(t, index, previousIndex, "slots must not regress within a day (hour %d)", hour)
				if index != previousIndex {
					transitions++
					assert.Equal(t, previousIndex+1, index, "slots advance one at a time (hour %d)", hour)
				}
			}
			previousIndex = index
		}

		assert.Equal(t, len(models.MealSlotOrder)-1, transitions, "each boundary crossed exactly once")
	}
}

func TestResolveIdempotent(t *testing.T) {
	doc := testDocument()
	now := instant(2, 12, 0)

	first, err := Resolve(now, doc, DefaultBoundaries)
	require.NoError(t, err)
	second, err := Resolve(now, doc, DefaultBoundaries)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
