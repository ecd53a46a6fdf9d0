package contracts

import (
	"context"
	"time"

	"messmenu-service/internal/app/models"
	"messmenu-service/internal/pkg/dto/requests"
	"messmenu-service/internal/pkg/dto/responses"
)

// ReminderQueueService delivers a full reminder set to the platform
// notifiers. A set always replaces everything installed before it.
type ReminderQueueService interface {
	PublishSet(ctx context.Context, setID string, records []models.ReminderRecord) error
}

type ReminderUsecase interface {
	PlanReminders(ctx context.Context, request *requests.PlanReminders, from time.Time) (*responses.ReminderPlan, error)
	DispatchReminders(ctx context.Context, request *requests.DispatchReminders, from time.Time) (*responses.ReminderDispatch, error)
}
