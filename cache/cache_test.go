package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissReturnsEmpty(t *testing.T) {
	m := NewMemory()
	v, err := m.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(context.Background(), "k", []byte("v"), time.Minute))
	v, _ := m.Get(context.Background(), "k")
	assert.Equal(t, "v", v)

	now = now.Add(2 * time.Minute)
	v, _ = m.Get(context.Background(), "k")
	assert.Empty(t, v)
}

func TestMemoryLockOwnership(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	ok, err := m.Acquire(ctx, "lock", "a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Acquire(ctx, "lock", "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, m.Release(ctx, "lock", "b"), ErrNotLockOwner)
	assert.NoError(t, m.Release(ctx, "lock", "a"))
}

func TestWithLockRejectsConcurrentHolder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := WithLock(ctx, m, "booking", LockOptions{}, func(ctx context.Context) error {
		inner := WithLock(ctx, m, "booking", LockOptions{}, func(context.Context) error {
			return nil
		})
		assert.ErrorIs(t, inner, ErrLockNotAcquired)
		return nil
	})
	require.NoError(t, err)

	// released after the outer call returned
	ok, _ := m.Acquire(ctx, "booking", "x", time.Second)
	assert.True(t, ok)
}

func TestWithLockPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := WithLock(context.Background(), NewMemory(), "k", LockOptions{}, func(context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
