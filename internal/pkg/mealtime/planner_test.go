package mealtime

import (
	"testing"

	"messmenu-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPairs(doc *models.MenuDocument) int {
	total := 0
	for _, meals := range doc.Menu {
		total += len(meals)
	}
	return total
}

func TestPlanRecurring(t *testing.T) {
	doc := testDocument()

	records, err := Plan(doc, DefaultBoundaries, instant(2, 12, 0), 0, models.PlanModeRecurring)
	require.NoError(t, err)

	assert.Len(t, records, countPairs(doc), "exactly one reminder per present (day, meal) pair")

	seen := map[string]bool{}
	for _, record := range records {
		key := string(record.Weekday) + "/" + string(record.Meal)
		assert.False(t, seen[key], "pair %s emitted twice", key)
		seen[key] = true

		assert.Nil(t, record.FireAt, "recurring records carry no concrete instant")
		assert.Equal(t, DefaultBoundaries.Start(record.Meal), record.FireHour)
		assert.Zero(t, record.FireMinute)
		assert.NotEmpty(t, record.Title)
		assert.NotEmpty(t, record.Body)
	}
}

func TestPlanAbsolute(t *testing.T) {
	doc := testDocument()

	t.Run("Fire Times Strictly After From", func(t *testing.T) {
		// Monday 2024-12-02 at 12:00; Monday Breakfast (hour 0) and Lunch
		// (hour 11) are already past and must not be emitted.
		from := instant(2, 12, 0)
		records, err := Plan(doc, DefaultBoundaries, from, 7, models.PlanModeAbsolute)
		require.NoError(t, err)
		require.NotEmpty(t, records)

		for _, record := range records {
			require.NotNil(t, record.FireAt)
			assert.True(t, record.FireAt.After(from), "%s %s fires at %s, not after %s",
				record.Weekday, record.Meal, record.FireAt, from)
		}
	})

	t.Run("Seven Day Horizon Emits At Most One Per Pair", func(t *testing.T) {
		from := instant(2, 0, 30)
		records, err := Plan(doc, DefaultBoundaries, from, 7, models.PlanModeAbsolute)
		require.NoError(t, err)

		counts := map[string]int{}
		for _, record := range records {
			counts[string(record.Weekday)+"/"+string(record.Meal)]++
		}
		for key, n := range counts {
			assert.LessOrEqual(t, n, 1, "pair %s", key)
		}
	})

	t.Run("Longer Horizon Repeats Weekly", func(t *testing.T) {
		from := instant(2, 0, 30)
		records, err := Plan(doc, DefaultBoundaries, from, 14, models.PlanModeAbsolute)
		require.NoError(t, err)

		counts := map[string]int{}
		for _, record := range records {
			counts[string(record.Weekday)+"/"+string(record.Meal)]++
		}
		// Monday Lunch at 11:00 occurs on 2024-12-02 and 2024-12-09.
		assert.Equal(t, 2, counts["Monday/Lunch"])
	})

	t.Run("Chronological Order", func(t *testing.T) {
		records, err := Plan(doc, DefaultBoundaries, instant(2, 0, 30), 14, models.PlanModeAbsolute)
		require.NoError(t, err)

		for i := 1; i < len(records); i++ {
			assert.False(t, records[i].FireAt.Before(*records[i-1].FireAt),
				"records must be sorted by fire time")
		}
	})
}

func TestPlanInputValidation(t *testing.T) {
	doc := testDocument()
	from := instant(2, 12, 0)

	t.Run("Nil Document", func(t *testing.T) {
		_, err := Plan(nil, DefaultBoundaries, from, 7, models.PlanModeRecurring)
		assert.ErrorIs(t, err, ErrNilDocument)
	})

	t.Run("Unknown Mode", func(t *testing.T) {
		_, err := Plan(doc, DefaultBoundaries, from, 7, models.PlanMode("weekly"))
		assert.ErrorIs(t, err, ErrInvalidPlanMode)
	})

	t.Run("Non Positive Horizon In Absolute Mode", func(t *testing.T) {
		_, err := Plan(doc, DefaultBoundaries, from, 0, models.PlanModeAbsolute)
		assert.ErrorIs(t, err, ErrInvalidHorizon)
	})

	t.Run("Invalid Boundaries", func(t *testing.T) {
		bad := BoundaryTable{BreakfastStart: 5, LunchStart: 5, SnacksStart: 15, DinnerStart: 18, DayEnd: 22}
		_, err := Plan(doc, bad, from, 7, models.PlanModeRecurring)
		assert.ErrorIs(t, err, ErrInvalidBoundaries)
	})
}
