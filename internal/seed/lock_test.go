package seed

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/viadorassan/viador/backend/go-services/internal/database"
)

func TestRedisLocker_Exclusive(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	a := NewRedisLocker(client, "test:seed:lock", 5*time.Second)
	b := NewRedisLocker(client, "test:seed:lock", 5*time.Second)

	unlockA, err := a.Lock(context.Background())
	require.NoError(t, err)
	require.True(t, m.Exists("test:seed:lock"))

	// second holder times out while the first holds the lock
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	_, err = b.Lock(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, unlockA(context.Background()))
	require.False(t, m.Exists("test:seed:lock"))

	unlockB, err := b.Lock(context.Background())
	require.NoError(t, err)
	require.NoError(t, unlockB(context.Background()))
}

func TestRedisLocker_StaleUnlockKeepsNewHolder(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	l := NewRedisLocker(client, "", time.Second)

	unlockOld, err := l.Lock(context.Background())
	require.NoError(t, err)

	// advance miniredis clock past TTL so the lock expires
	m.FastForward(2 * time.Second)

	unlockNew, err := l.Lock(context.Background())
	require.NoError(t, err)
	holder, err := m.Get("seed:lock")
	require.NoError(t, err)

	require.NoError(t, unlockOld(context.Background()))
	still, err := m.Get("seed:lock")
	require.NoError(t, err)
	require.Equal(t, holder, still)

	require.NoError(t, unlockNew(context.Background()))
	require.False(t, m.Exists("seed:lock"))
}

func TestSeeder_WithRedisLocker(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	store := database.NewMemoryStore()
	s := New(store, WithLocker(NewRedisLocker(client, "viador:seed", 5*time.Second)))

	_, err = s.Run(context.Background())
	require.NoError(t, err)
	require.False(t, m.Exists("viador:seed"))
}
