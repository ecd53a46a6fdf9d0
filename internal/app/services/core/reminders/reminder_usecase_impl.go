package reminders

import (
	"context"
	"errors"
	"sync"
	"time"

	"messmenu-service/internal/app/config"
	"messmenu-service/internal/app/contracts"
	"messmenu-service/internal/app/models"
	"messmenu-service/internal/pkg/constvars"
	"messmenu-service/internal/pkg/dto/requests"
	"messmenu-service/internal/pkg/dto/responses"
	"messmenu-service/internal/pkg/exceptions"
	"messmenu-service/internal/pkg/mealtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reminderUsecase struct {
	MenuStore      contracts.MenuStore
	ReminderQueue  contracts.ReminderQueueService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	boundaries     mealtime.BoundaryTable
}

var (
	reminderUsecaseInstance contracts.ReminderUsecase
	onceReminderUsecase     sync.Once
)

func NewReminderUsecase(
	menuStore contracts.MenuStore,
	reminderQueue contracts.ReminderQueueService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	boundaries mealtime.BoundaryTable,
) contracts.ReminderUsecase {
	onceReminderUsecase.Do(func() {
		instance := &reminderUsecase{
			MenuStore:      menuStore,
			ReminderQueue:  reminderQueue,
			InternalConfig: internalConfig,
			Log:            logger,
			boundaries:     boundaries,
		}
		reminderUsecaseInstance = instance
	})
	return reminderUsecaseInstance
}

func (uc *reminderUsecase) PlanReminders(ctx context.Context, request *requests.PlanReminders, from time.Time) (*responses.ReminderPlan, error) {
	mode, horizon := uc.applyDefaults(request.Mode, request.HorizonDays)

	records, err := uc.plan(ctx, mode, horizon, from)
	if err != nil {
		return nil, err
	}

	plan := &responses.ReminderPlan{
		Mode:      mode,
		Reminders: records,
	}
	if mode == models.PlanModeAbsolute {
		plan.HorizonDays = horizon
	}
	return plan, nil
}

func (uc *reminderUsecase) DispatchReminders(ctx context.Context, request *requests.DispatchReminders, from time.Time) (*responses.ReminderDispatch, error) {
	mode, horizon := uc.applyDefaults(request.Mode, request.HorizonDays)

	records, err := uc.plan(ctx, mode, horizon, from)
	if err != nil {
		return nil, err
	}

	setID := uuid.NewString()
	if err := uc.ReminderQueue.PublishSet(ctx, setID, records); err != nil {
		return nil, err
	}

	uc.Log.Info("reminderUsecase.DispatchReminders published set",
		zap.String("set_id", setID),
		zap.String(constvars.LoggingPlanModeKey, string(mode)),
		zap.Int(constvars.LoggingReminderCount, len(records)),
	)
	return &responses.ReminderDispatch{
		SetID:     setID,
		Reminders: len(records),
	}, nil
}

func (uc *reminderUsecase) plan(ctx context.Context, mode models.PlanMode, horizon int, from time.Time) ([]models.ReminderRecord, error) {
	doc, _ := uc.MenuStore.Snapshot(ctx)
	if doc == nil {
		return nil, exceptions.ErrMenuNotReady(nil)
	}

	records, err := mealtime.Plan(doc, uc.boundaries, from, horizon, mode)
	if err != nil {
		switch {
		case errors.Is(err, mealtime.ErrInvalidPlanMode):
			return nil, exceptions.ErrInvalidPlanMode(err)
		case errors.Is(err, mealtime.ErrInvalidHorizon):
			return nil, exceptions.ErrInvalidHorizon(err)
		default:
			return nil, exceptions.ErrInvalidBoundaryTable(err)
		}
	}
	return records, nil
}

func (uc *reminderUsecase) applyDefaults(mode string, horizon int) (models.PlanMode, int) {
	planMode := models.PlanMode(mode)
	if mode == "" {
		planMode = models.PlanMode(uc.InternalConfig.Reminders.DefaultMode)
	}
	if horizon <= 0 {
		horizon = uc.InternalConfig.Reminders.DefaultHorizonDays
	}
	return planMode, horizon
}
