package redisstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/infrastructure/redisstore"
)

// fakeRedis implementa solo Set/Get; el resto de redis.Cmdable queda sin implementar.
type fakeRedis struct {
	redis.Cmdable
	data map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, _ interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	if _, ok := f.data[key]; !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult("1", nil)
}

func TestRevocationStore_RevocarYConsultar(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	store := redisstore.NewRevocationStore(fake)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", 2*time.Hour))
	assert.Equal(t, 2*time.Hour, fake.data["revoked:staff:jti-1"])

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevocationStore_TTLVencido_NoGuarda(t *testing.T) {
	fake := newFakeRedis()
	store := redisstore.NewRevocationStore(fake)

	require.NoError(t, store.Revoke(context.Background(), "jti-1", 0))
	require.NoError(t, store.Revoke(context.Background(), "", time.Hour))
	assert.Empty(t, fake.data)
}

func TestRevocationStore_ErrorDeRedis_SePropaga(t *testing.T) {
	fake := newFakeRedis()
	fake.err = errors.New("conexión rechazada")
	store := redisstore.NewRevocationStore(fake)

	_, err := store.IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
	assert.Error(t, store.Revoke(context.Background(), "jti-1", time.Hour))
}
