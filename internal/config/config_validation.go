// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validate checks the settings both binaries depend on.
func (cfg *StructuredConfig) validate() error {
	r := cfg.Render
	if r.Size < 64 || r.Size > 2048 || r.Padding < 0 {
		return ErrInvalidRenderConfigs
	}
	if !hexColor.MatchString(r.ColorDark) || !hexColor.MatchString(r.ColorLight) {
		return ErrInvalidRenderConfigs
	}
	switch r.CorrectLevel {
	case "L", "M", "Q", "H":
	default:
		return ErrInvalidRenderConfigs
	}

	if cfg.History.MaxItems < 1 {
		return ErrInvalidHistoryConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.App.ShareTTL <= 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.DeviceID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.Offline {
		return nil
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
