package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis records calls and answers from an in-memory map.
type fakeRedis struct {
	data    map[string]string
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	closed  bool
	lastKey string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.lastKey = key
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.lastKey = key
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

// ── RedisCache ───────────────────────────────────────────────────────────────

func TestRedisCache_SetThenGet(t *testing.T) {
	fake := newFakeRedis()
	c := NewRedisCache(fake, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "abc", []byte("png-bytes")))
	assert.Equal(t, KeyPrefix+"abc", fake.lastKey)
	assert.Equal(t, time.Minute, fake.ttls[KeyPrefix+"abc"])

	got, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("png-bytes"), got)
}

func TestRedisCache_Miss(t *testing.T) {
	got, ok, err := NewRedisCache(newFakeRedis(), time.Minute).Get(context.Background(), "nope")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisCache_Errors(t *testing.T) {
	fake := newFakeRedis()
	fake.getErr = errors.New("connection refused")
	fake.setErr = errors.New("read only replica")
	c := NewRedisCache(fake, time.Minute)

	_, ok, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)

	assert.Error(t, c.Set(context.Background(), "k", []byte("v")))
}

func TestRedisCache_Close(t *testing.T) {
	fake := newFakeRedis()

	require.NoError(t, NewRedisCache(fake, 0).Close())
	assert.True(t, fake.closed)
}

// ── New / Noop ───────────────────────────────────────────────────────────────

func TestNew_NoAddress_ReturnsNoop(t *testing.T) {
	c, err := New(context.Background(), config.Cache{}, logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, Noop{}, c)
}

func TestNew_UnreachableRedis_ReturnsError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := New(ctx, config.Cache{Address: "127.0.0.1:1"}, logger.Nop())

	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	var c RenderCache = Noop{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Close())
}
