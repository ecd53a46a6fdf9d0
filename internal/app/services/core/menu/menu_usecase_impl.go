package menu

import (
	"context"
	"sync"
	"time"

	"messmenu-service/internal/app/config"
	"messmenu-service/internal/app/contracts"
	"messmenu-service/internal/app/models"
	"messmenu-service/internal/pkg/dto/responses"
	"messmenu-service/internal/pkg/exceptions"
	"messmenu-service/internal/pkg/mealtime"

	"go.uber.org/zap"
)

type menuUsecase struct {
	MenuStore      contracts.MenuStore
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	boundaries     mealtime.BoundaryTable
}

var (
	menuUsecaseInstance contracts.MenuUsecase
	onceMenuUsecase     sync.Once
)

func NewMenuUsecase(
	menuStore contracts.MenuStore,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MenuUsecase {
	onceMenuUsecase.Do(func() {
		instance := &menuUsecase{
			MenuStore:      menuStore,
			InternalConfig: internalConfig,
			Log:            logger,
			boundaries:     BoundariesFromConfig(internalConfig),
		}
		menuUsecaseInstance = instance
	})
	return menuUsecaseInstance
}

// BoundariesFromConfig builds the single boundary table every caller shares.
// The table is configuration, not a constant: deployments disagree on the
// serving hours but must disagree in exactly one place.
func BoundariesFromConfig(internalConfig *config.InternalConfig) mealtime.BoundaryTable {
	return mealtime.BoundaryTable{
		BreakfastStart: internalConfig.Menu.BreakfastStartHour,
		LunchStart:     internalConfig.Menu.LunchStartHour,
		SnacksStart:    internalConfig.Menu.SnacksStartHour,
		DinnerStart:    internalConfig.Menu.DinnerStartHour,
		DayEnd:         internalConfig.Menu.DayEndHour,
	}
}

func (uc *menuUsecase) GetCurrentMeal(ctx context.Context, now time.Time) (*responses.CurrentMeal, error) {
	doc, state := uc.MenuStore.Snapshot(ctx)
	if doc == nil {
		// Sync pending is a distinct answer, not the missing-slot fallback.
		return &responses.CurrentMeal{SyncState: state}, nil
	}

	resolved, err := mealtime.Resolve(now, doc, uc.boundaries)
	if err != nil {
		return nil, exceptions.ErrInvalidBoundaryTable(err)
	}

	return &responses.CurrentMeal{
		SyncState: state,
		State:     resolved,
	}, nil
}

func (uc *menuUsecase) GetWeekMenu(ctx context.Context) (*responses.WeekMenu, error) {
	doc, state := uc.MenuStore.Snapshot(ctx)
	if doc == nil {
		return &responses.WeekMenu{SyncState: state}, nil
	}
	return buildWeekMenu(doc, state), nil
}

func (uc *menuUsecase) RefreshMenu(ctx context.Context) (*responses.WeekMenu, error) {
	doc, err := uc.MenuStore.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return buildWeekMenu(doc, models.SyncStateReady), nil
}

func buildWeekMenu(doc *models.MenuDocument, state models.SyncState) *responses.WeekMenu {
	week := &responses.WeekMenu{
		SyncState:   state,
		WeekStart:   doc.Meta.WeekStart,
		LastUpdated: doc.Meta.LastUpdated,
	}

	weekStart, hasWeekStart := doc.WeekStartDate()
	for _, day := range models.WeekdayOrder {
		meals, ok := doc.Menu[day]
		if !ok {
			continue
		}
		dayMenu := responses.DayMenu{
			Weekday: day,
			Meals:   meals,
		}
		if hasWeekStart {
			dayMenu.Date = weekStart.AddDate(0, 0, day.Index()).Format("2006-01-02")
		}
		week.Days = append(week.Days, dayMenu)
	}
	return week
}
