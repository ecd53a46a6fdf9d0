package menu

import (
	"context"
	"testing"
	"time"

	"messmenu-service/internal/app/config"
	"messmenu-service/internal/app/models"
	"messmenu-service/internal/pkg/mealtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStore struct {
	doc   *models.MenuDocument
	state models.SyncState
	err   error
}

func (s *stubStore) Snapshot(ctx context.Context) (*models.MenuDocument, models.SyncState) {
	return s.doc, s.state
}

func (s *stubStore) Refresh(ctx context.Context) (*models.MenuDocument, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.state = models.SyncStateReady
	return s.doc, nil
}

func usecaseConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Menu: config.AppMenu{
			BreakfastStartHour: 0,
			LunchStartHour:     11,
			SnacksStartHour:    15,
			DinnerStartHour:    18,
			DayEndHour:         22,
		},
	}
}

func newTestMenuUsecase(store *stubStore) *menuUsecase {
	cfg := usecaseConfig()
	return &menuUsecase{
		MenuStore:      store,
		InternalConfig: cfg,
		Log:            zap.NewNop(),
		boundaries:     BoundariesFromConfig(cfg),
	}
}

func TestGetCurrentMeal(t *testing.T) {
	ctx := context.Background()

	t.Run("Sync Pending Is Not A Resolved State", func(t *testing.T) {
		uc := newTestMenuUsecase(&stubStore{state: models.SyncStateNoData})

		response, err := uc.GetCurrentMeal(ctx, time.Now())
		require.NoError(t, err)

		assert.Equal(t, models.SyncStateNoData, response.SyncState)
		assert.Nil(t, response.State, "no fallback food while the first sync is pending")
	})

	t.Run("Resolves Against Snapshot", func(t *testing.T) {
		uc := newTestMenuUsecase(&stubStore{
			doc: &models.MenuDocument{
				Meta: models.MenuMeta{WeekStart: "2024-12-02"},
				Menu: map[models.Weekday]map[models.MealSlot]string{
					models.Monday: {models.Lunch: "Rajma Chawal", models.Snacks: "Samosa"},
				},
			},
			state: models.SyncStateReady,
		})

		now := time.Date(2024, time.December, 2, 12, 0, 0, 0, time.UTC)
		response, err := uc.GetCurrentMeal(ctx, now)
		require.NoError(t, err)
		require.NotNil(t, response.State)

		assert.Equal(t, models.SyncStateReady, response.SyncState)
		assert.Equal(t, models.Lunch, response.State.CurrentMeal)
		assert.Equal(t, "Rajma Chawal", response.State.CurrentFood)
		assert.Equal(t, "2024-12-02", response.State.DisplayDate)
	})

	t.Run("Stale Snapshot Still Resolves", func(t *testing.T) {
		uc := newTestMenuUsecase(&stubStore{
			doc: &models.MenuDocument{
				Menu: map[models.Weekday]map[models.MealSlot]string{},
			},
			state: models.SyncStateStale,
		})

		response, err := uc.GetCurrentMeal(ctx, time.Now())
		require.NoError(t, err)
		require.NotNil(t, response.State)

		assert.Equal(t, models.SyncStateStale, response.SyncState)
		assert.Equal(t, mealtime.FallbackFood, response.State.CurrentFood)
	})
}

func TestGetWeekMenu(t *testing.T) {
	ctx := context.Background()

	t.Run("Days Carry Concrete Dates", func(t *testing.T) {
		uc := newTestMenuUsecase(&stubStore{
			doc: &models.MenuDocument{
				Meta: models.MenuMeta{WeekStart: "2024-12-02", LastUpdated: "2024-12-01"},
				Menu: map[models.Weekday]map[models.MealSlot]string{
					models.Monday:    {models.Lunch: "Rajma Chawal"},
					models.Wednesday: {models.Breakfast: "Upma"},
				},
			},
			state: models.SyncStateReady,
		})

		response, err := uc.GetWeekMenu(ctx)
		require.NoError(t, err)
		require.Len(t, response.Days, 2)

		assert.Equal(t, models.Monday, response.Days[0].Weekday)
		assert.Equal(t, "2024-12-02", response.Days[0].Date)
		assert.Equal(t, models.Wednesday, response.Days[1].Weekday)
		assert.Equal(t, "2024-12-04", response.Days[1].Date)
		assert.Equal(t, "2024-12-01", response.LastUpdated)
	})

	t.Run("Missing Week Start Leaves Dates Empty", func(t *testing.T) {
		uc := newTestMenuUsecase(&stubStore{
			doc: &models.MenuDocument{
				Menu: map[models.Weekday]map[models.MealSlot]string{
					models.Friday: {models.Dinner: "Veg Biryani"},
				},
			},
			state: models.SyncStateReady,
		})

		response, err := uc.GetWeekMenu(ctx)
		require.NoError(t, err)
		require.Len(t, response.Days, 1)
		assert.Empty(t, response.Days[0].Date)
	})
}
