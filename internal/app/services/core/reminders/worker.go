package reminders

import (
	"context"
	"time"

	"messmenu-service/internal/app/config"
	"messmenu-service/internal/app/contracts"
	"messmenu-service/internal/pkg/constvars"
	"messmenu-service/internal/pkg/dto/requests"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker periodically refetches the menu and republishes the reminder set.
type Worker struct {
	log             *zap.Logger
	cfg             *config.InternalConfig
	locker          contracts.LockerService
	menuStore       contracts.MenuStore
	reminderUsecase contracts.ReminderUsecase
	cron            *cron.Cron
	runCtx          context.Context
	cancel          context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, menuStore contracts.MenuStore, reminderUsecase contracts.ReminderUsecase) *Worker {
	return &Worker{
		log:             log,
		cfg:             cfg,
		locker:          lockerSvc,
		menuStore:       menuStore,
		reminderUsecase: reminderUsecase,
	}
}

// Start begins the periodic loop.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Reminders.WorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("reminders.worker: failed to schedule with provided cron spec; falling back to @hourly", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the cron and any in-flight run.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop() // wait for running jobs to finish
		<-ctx.Done()
	}
}

// runOnce refreshes the document and replaces the published reminder set.
// The leader lock guarantees that two instances never interleave their
// clear/install sequences on the queue.
func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyReminderLeaderLock, ttl)
	if err != nil {
		w.log.Warn("reminders.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("reminders.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyReminderLeaderLock, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, constvars.RedisKeyReminderLeaderLock, token, ttl); err != nil {
					w.log.Warn("reminders.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	if _, err := w.menuStore.Refresh(ctx); err != nil {
		// A stale document still yields a valid reminder set.
		w.log.Warn("reminders.worker: menu refresh failed, planning from cached document", zap.Error(err))
	}

	request := &requests.DispatchReminders{
		Mode:        w.cfg.Reminders.DefaultMode,
		HorizonDays: w.cfg.Reminders.DefaultHorizonDays,
	}
	dispatch, err := w.reminderUsecase.DispatchReminders(ctx, request, time.Now())
	if err != nil {
		w.log.Warn("reminders.worker: dispatch failed", zap.Error(err))
		return
	}
	w.log.Info("reminders.worker: reminder set replaced",
		zap.String("set_id", dispatch.SetID),
		zap.Int(constvars.LoggingReminderCount, dispatch.Reminders),
	)
}
