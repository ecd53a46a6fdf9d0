package contracts

import (
	"context"
	"time"
)

// LockerService is a redis-backed advisory lock keyed by an opaque token so
// only the holder can release or refresh it.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
	Refresh(ctx context.Context, key, token string, expiration time.Duration) error
}
