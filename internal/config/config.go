// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the merged configuration shared by both binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	App       App       `envPrefix:"APP_"`
	Storage   Storage   `envPrefix:"STORAGE_"`
	Server    Server    `envPrefix:"SERVER_"`
	Adapter   Adapter   `envPrefix:"ADAPTER_"`
	Render    Render    `envPrefix:"RENDER_"`
	Cache     Cache     `envPrefix:"CACHE_"`
	Templates Templates `envPrefix:"TEMPLATES_"`
	History   History   `envPrefix:"HISTORY_"`
	Workers   Workers   `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ShareSignKey signs share tokens (HS256).
	// Env: APP_SHARE_SIGN_KEY
	ShareSignKey string `env:"SHARE_SIGN_KEY"`

	// ShareTTL is how long a share link stays valid.
	// Env: APP_SHARE_TTL
	ShareTTL time.Duration `env:"SHARE_TTL"`

	// HashKey is the HMAC key for the HashSHA256 request header.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// DeviceID identifies the client towards the server history.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// LogDir is where the client writes its log file.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`

	// Offline keeps the client away from the server: no sync worker runs.
	// Env: APP_OFFLINE
	Offline bool `env:"OFFLINE"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the history database connection settings.
type DB struct {
	// DSN selects the driver: postgres:// and postgresql:// use pgx, anything
	// else is a SQLite file path or URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound transport settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Render holds the default visual options.
type Render struct {
	// Env: RENDER_SIZE
	Size int `env:"SIZE"`

	// Env: RENDER_COLOR_DARK
	ColorDark string `env:"COLOR_DARK"`

	// Env: RENDER_COLOR_LIGHT
	ColorLight string `env:"COLOR_LIGHT"`

	// CorrectLevel is one of L, M, Q, H.
	// Env: RENDER_CORRECT_LEVEL
	CorrectLevel string `env:"CORRECT_LEVEL"`

	// Padding is the white border added around downloaded PNGs, in pixels.
	// Env: RENDER_PADDING
	Padding int `env:"PADDING"`
}

// Cache holds the Redis render cache settings. An empty address disables
// the cache.
type Cache struct {
	// Env: CACHE_ADDRESS
	Address string `env:"ADDRESS"`

	// Env: CACHE_PASSWORD
	Password string `env:"PASSWORD"`

	// Env: CACHE_DB
	DB int `env:"DB"`

	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Templates points at an optional YAML file with extra templates.
type Templates struct {
	// Env: TEMPLATES_FILE
	FilePath string `env:"FILE"`
}

// History bounds the per-device history.
type History struct {
	// Env: HISTORY_MAX_ITEMS
	MaxItems int `env:"MAX_ITEMS"`
}

// Workers holds background job settings.
type Workers struct {
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads and merges configuration from env, flags and
// the optional JSON file, then applies defaults and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetServerConfig returns the configuration the server binary runs with.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateServer()
}
