// Package cache stores rendered QR artefacts keyed by payload, options and
// format. Redis backs the cache when an address is configured; otherwise a
// no-op implementation keeps the render path unconditional.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every render cache key.
const KeyPrefix = "qr:render:"

const pingTimeout = 3 * time.Second

//go:generate mockgen -source=cache.go -destination=../mock/cache_mock.go -package=mock

// RenderCache is a byte cache for rendered artefacts.
type RenderCache interface {
	// Get returns the cached value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// New returns a Redis-backed cache, or a no-op cache when cfg has no address.
// The Redis server is pinged once so misconfiguration fails at startup.
func New(ctx context.Context, cfg config.Cache, log *logger.Logger) (RenderCache, error) {
	if cfg.Address == "" {
		log.Info().Str("func", "cache.New").Msg("render cache disabled")
		return Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error connecting to redis at %s: %w", cfg.Address, err)
	}

	log.Info().Str("func", "cache.New").Str("addr", cfg.Address).Dur("ttl", cfg.TTL).Msg("render cache connected")
	return NewRedisCache(client, cfg.TTL), nil
}

// Noop is a RenderCache that never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, string, []byte) error         { return nil }
func (Noop) Close() error                                      { return nil }
