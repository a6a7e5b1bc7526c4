package quota

import (
	"context"
	"testing"
	"time"

	"flint/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuota(t *testing.T) (service.LikeQuota, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		require.NoError(t, client.Close())
	})

	return NewRedisQuota(client), mr
}

func TestRedisQuota_UsedStartsAtZero(t *testing.T) {
	t.Parallel()

	quota, _ := newTestQuota(t)

	used, err := quota.Used(context.Background(), "alice", "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 0, used)
}

func TestRedisQuota_IncrementAccumulates(t *testing.T) {
	t.Parallel()

	quota, mr := newTestQuota(t)
	ctx := context.Background()

	total, err := quota.Increment(ctx, "alice", "2026-08-29", 1, 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = quota.Increment(ctx, "alice", "2026-08-29", 1, 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	used, err := quota.Used(ctx, "alice", "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 2, used)

	// Counters are scoped per user and per day.
	used, err = quota.Used(ctx, "bob", "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 0, used)

	used, err = quota.Used(ctx, "alice", "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 0, used)

	assert.Positive(t, mr.TTL(quotaKey("alice", "2026-08-29")))
}

func TestRedisQuota_CounterExpires(t *testing.T) {
	t.Parallel()

	quota, mr := newTestQuota(t)
	ctx := context.Background()

	_, err := quota.Increment(ctx, "alice", "2026-08-29", 1, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	used, err := quota.Used(ctx, "alice", "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 0, used)
}
