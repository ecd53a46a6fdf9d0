package contracts

import (
	"context"
	"time"

	"messmenu-service/internal/app/models"
	"messmenu-service/internal/pkg/dto/responses"
)

// MenuFetcher retrieves and decodes the weekly menu document from the remote
// source. It either returns a fully decoded, validated document or an error;
// the core is never handed a partially decoded one.
type MenuFetcher interface {
	Fetch(ctx context.Context) (*models.MenuDocument, error)
}

// MenuStore owns the current document snapshot, its redis offline copy and
// the sync lifecycle (NoData, Syncing, Ready, Stale).
type MenuStore interface {
	Snapshot(ctx context.Context) (*models.MenuDocument, models.SyncState)
	Refresh(ctx context.Context) (*models.MenuDocument, error)
}

type MenuUsecase interface {
	GetCurrentMeal(ctx context.Context, now time.Time) (*responses.CurrentMeal, error)
	GetWeekMenu(ctx context.Context) (*responses.WeekMenu, error)
	RefreshMenu(ctx context.Context) (*responses.WeekMenu, error)
}
