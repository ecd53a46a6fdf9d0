package menu

import (
	"context"
	"sync"
	"time"

	"messmenu-service/internal/app/config"
	"messmenu-service/internal/app/contracts"
	"messmenu-service/internal/app/models"
	"messmenu-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// menuStore owns the in-memory document snapshot and its redis offline copy.
// Lifecycle: NoData -> Syncing -> Ready, then Ready or Stale after each
// refresh. The resolver and planner only ever see a Ready or Stale document.
type menuStore struct {
	mu      sync.RWMutex
	doc     *models.MenuDocument
	state   models.SyncState
	fetcher contracts.MenuFetcher

	redisRepo contracts.RedisRepository
	cacheTTL  time.Duration
	Log       *zap.Logger
}

func NewMenuStore(fetcher contracts.MenuFetcher, redisRepo contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.MenuStore {
	return &menuStore{
		state:     models.SyncStateNoData,
		fetcher:   fetcher,
		redisRepo: redisRepo,
		cacheTTL:  time.Duration(internalConfig.Menu.CacheTTLInHours) * time.Hour,
		Log:       logger,
	}
}

// Snapshot returns the current document and sync state. With no in-memory
// document it falls back to the redis offline copy from a previous run.
func (s *menuStore) Snapshot(ctx context.Context) (*models.MenuDocument, models.SyncState) {
	s.mu.RLock()
	doc, state := s.doc, s.state
	s.mu.RUnlock()

	if doc != nil || state == models.SyncStateSyncing {
		return doc, state
	}

	if cached := s.loadOfflineCopy(ctx); cached != nil {
		s.mu.Lock()
		if s.doc == nil {
			s.doc = cached
			s.state = models.SyncStateStale
		}
		doc, state = s.doc, s.state
		s.mu.Unlock()
		return doc, state
	}

	return nil, models.SyncStateNoData
}

// Refresh fetches a fresh document. On success the snapshot and the offline
// copy are replaced; on failure an already-held document is kept and marked
// stale so callers keep resolving against the last good week.
func (s *menuStore) Refresh(ctx context.Context) (*models.MenuDocument, error) {
	s.mu.Lock()
	if s.doc == nil {
		s.state = models.SyncStateSyncing
	}
	s.mu.Unlock()

	doc, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.mu.Lock()
		if s.doc != nil {
			s.state = models.SyncStateStale
		} else {
			s.state = models.SyncStateNoData
		}
		state := s.state
		s.mu.Unlock()
		s.mirrorState(ctx, state)
		return nil, err
	}

	s.mu.Lock()
	s.doc = doc
	s.state = models.SyncStateReady
	s.mu.Unlock()

	s.storeOfflineCopy(ctx, doc)
	s.mirrorState(ctx, models.SyncStateReady)
	return doc, nil
}

func (s *menuStore) loadOfflineCopy(ctx context.Context) *models.MenuDocument {
	raw, err := s.redisRepo.Get(ctx, constvars.RedisKeyMenuDocument)
	if err != nil || raw == "" {
		return nil
	}

	doc := new(models.MenuDocument)
	if err := json.Unmarshal([]byte(raw), doc); err != nil {
		s.Log.Warn("menuStore.loadOfflineCopy cannot unmarshal cached document",
			zap.Error(err),
		)
		return nil
	}

	s.Log.Info("menuStore.loadOfflineCopy hydrated document from redis",
		zap.String(constvars.LoggingWeekStartKey, doc.Meta.WeekStart),
	)
	return doc
}

func (s *menuStore) storeOfflineCopy(ctx context.Context, doc *models.MenuDocument) {
	if err := s.redisRepo.Set(ctx, constvars.RedisKeyMenuDocument, doc, s.cacheTTL); err != nil {
		// The offline copy is best effort; resolution keeps working from memory.
		s.Log.Warn("menuStore.storeOfflineCopy failed", zap.Error(err))
	}
}

// mirrorState publishes the store lifecycle to redis so operators and other
// instances can observe it. Best effort, same as the offline copy.
func (s *menuStore) mirrorState(ctx context.Context, state models.SyncState) {
	if err := s.redisRepo.Set(ctx, constvars.RedisKeySyncState, string(state), s.cacheTTL); err != nil {
		s.Log.Warn("menuStore.mirrorState failed", zap.Error(err))
	}
}
