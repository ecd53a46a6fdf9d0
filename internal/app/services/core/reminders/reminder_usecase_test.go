package reminders

import (
	"context"
	"testing"
	"time"

	"messmenu-service/internal/app/config"
	"messmenu-service/internal/app/models"
	"messmenu-service/internal/pkg/dto/requests"
	"messmenu-service/internal/pkg/exceptions"
	"messmenu-service/internal/pkg/mealtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStore struct {
	doc   *models.MenuDocument
	state models.SyncState
}

func (s *stubStore) Snapshot(ctx context.Context) (*models.MenuDocument, models.SyncState) {
	return s.doc, s.state
}

func (s *stubStore) Refresh(ctx context.Context) (*models.MenuDocument, error) {
	return s.doc, nil
}

type capturedSet struct {
	setID   string
	records []models.ReminderRecord
}

type stubQueue struct {
	published []capturedSet
	err       error
}

func (q *stubQueue) PublishSet(ctx context.Context, setID string, records []models.ReminderRecord) error {
	if q.err != nil {
		return q.err
	}
	q.published = append(q.published, capturedSet{setID: setID, records: records})
	return nil
}

func reminderConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Reminders: config.AppReminders{
			DefaultMode:        "recurring",
			DefaultHorizonDays: 7,
		},
	}
}

func newTestReminderUsecase(store *stubStore, queue *stubQueue) *reminderUsecase {
	return &reminderUsecase{
		MenuStore:      store,
		ReminderQueue:  queue,
		InternalConfig: reminderConfig(),
		Log:            zap.NewNop(),
		boundaries:     mealtime.DefaultBoundaries,
	}
}

func weekDocument() *models.MenuDocument {
	return &models.MenuDocument{
		Meta: models.MenuMeta{WeekStart: "2024-12-02"},
		Menu: map[models.Weekday]map[models.MealSlot]string{
			models.Monday: {
				models.Breakfast: "Idli Sambar",
				models.Lunch:     "Rajma Chawal",
			},
			models.Tuesday: {
				models.Dinner: "Veg Biryani",
			},
		},
	}
}

func TestPlanReminders(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, time.December, 2, 8, 0, 0, 0, time.UTC)

	t.Run("Defaults To Configured Mode", func(t *testing.T) {
		uc := newTestReminderUsecase(&stubStore{doc: weekDocument(), state: models.SyncStateReady}, &stubQueue{})

		plan, err := uc.PlanReminders(ctx, &requests.PlanReminders{}, from)
		require.NoError(t, err)

		assert.Equal(t, models.PlanModeRecurring, plan.Mode)
		assert.Len(t, plan.Reminders, 3)
		assert.Zero(t, plan.HorizonDays, "horizon is not reported in recurring mode")
	})

	t.Run("Absolute Mode Reports Horizon", func(t *testing.T) {
		uc := newTestReminderUsecase(&stubStore{doc: weekDocument(), state: models.SyncStateReady}, &stubQueue{})

		plan, err := uc.PlanReminders(ctx, &requests.PlanReminders{Mode: "absolute", HorizonDays: 7}, from)
		require.NoError(t, err)

		assert.Equal(t, models.PlanModeAbsolute, plan.Mode)
		assert.Equal(t, 7, plan.HorizonDays)
		for _, record := range plan.Reminders {
			require.NotNil(t, record.FireAt)
			assert.True(t, record.FireAt.After(from))
		}
	})

	t.Run("No Document Is Menu Not Ready", func(t *testing.T) {
		uc := newTestReminderUsecase(&stubStore{state: models.SyncStateNoData}, &stubQueue{})

		_, err := uc.PlanReminders(ctx, &requests.PlanReminders{}, from)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 503, customErr.StatusCode)
	})

	t.Run("Unknown Mode Rejected", func(t *testing.T) {
		uc := newTestReminderUsecase(&stubStore{doc: weekDocument(), state: models.SyncStateReady}, &stubQueue{})

		_, err := uc.PlanReminders(ctx, &requests.PlanReminders{Mode: "weekly"}, from)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})
}

func TestDispatchReminders(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, time.December, 2, 8, 0, 0, 0, time.UTC)

	t.Run("Publishes Full Replacement Set", func(t *testing.T) {
		queue := &stubQueue{}
		uc := newTestReminderUsecase(&stubStore{doc: weekDocument(), state: models.SyncStateReady}, queue)

		dispatch, err := uc.DispatchReminders(ctx, &requests.DispatchReminders{}, from)
		require.NoError(t, err)

		require.Len(t, queue.published, 1)
		assert.Equal(t, dispatch.SetID, queue.published[0].setID)
		assert.Equal(t, dispatch.Reminders, len(queue.published[0].records))
		assert.Equal(t, 3, dispatch.Reminders)
	})

	t.Run("Queue Failure Propagates", func(t *testing.T) {
		queue := &stubQueue{err: exceptions.ErrReminderQueuePublish(nil)}
		uc := newTestReminderUsecase(&stubStore{doc: weekDocument(), state: models.SyncStateReady}, queue)

		_, err := uc.DispatchReminders(ctx, &requests.DispatchReminders{}, from)
		assert.Error(t, err)
	})
}
