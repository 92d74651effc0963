package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLockNotAcquired = errors.New("lock not acquired")
	ErrNotLockOwner    = errors.New("lock release failed: not the lock owner")
)

// LockOptions controls how WithLock retries. The zero value tries once.
type LockOptions struct {
	TTL        time.Duration
	Retries    int
	RetryDelay time.Duration
}

// DefaultLockOptions retries three times two seconds apart.
var DefaultLockOptions = LockOptions{TTL: 10 * time.Second, Retries: 3, RetryDelay: 2 * time.Second}

// WithLock runs fn while holding key. The lock is released when fn returns.
func WithLock(ctx context.Context, locker Locker, key string, opts LockOptions, fn func(ctx context.Context) error) error {
	if opts.TTL <= 0 {
		opts.TTL = DefaultLockOptions.TTL
	}
	attempts := opts.Retries
	if attempts < 1 {
		attempts = 1
	}

	value := uuid.New().String()
	var (
		locked bool
		err    error
	)
	for i := 0; i < attempts; i++ {
		locked, err = locker.Acquire(ctx, key, value, opts.TTL)
		if err == nil && locked {
			break
		}
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.RetryDelay):
			}
		}
	}
	if err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !locked {
		return ErrLockNotAcquired
	}

	defer func() {
		if err := locker.Release(context.WithoutCancel(ctx), key, value); err != nil {
			log.Printf("Failed to release lock %s: %v", key, err)
		}
	}()

	return fn(ctx)
}
