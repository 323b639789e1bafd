package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestAppSession_CreateGetDelete(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()
	ctx := context.Background()

	store := NewAppSessionStore(client, time.Minute)
	require.NoError(t, store.Create(ctx, "sess-1", 42, "USER"))

	as, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, int64(42), as.UserID)
	require.Equal(t, "USER", as.Role)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	_, err = store.Get(ctx, "sess-1")
	require.Error(t, err)
}

func TestAppSession_RevokeAllForUser(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()
	ctx := context.Background()

	store := NewAppSessionStore(client, time.Minute)
	require.NoError(t, store.Create(ctx, "sess-a", 43, "ADMIN"))
	require.NoError(t, store.Create(ctx, "sess-b", 43, "ADMIN"))

	require.NoError(t, store.RevokeAllForUser(ctx, 43))

	_, err := store.Get(ctx, "sess-a")
	require.Error(t, err)
	_, err = store.Get(ctx, "sess-b")
	require.Error(t, err)
}
