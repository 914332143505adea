package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-forge/models"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version  string
	HashKey  string
	DeviceID string
	LogDir   string
	Offline  bool
}

// ClientAdapter holds the client's view of the server.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage holds the local history database settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientDB contains the local SQLite DSN.
type ClientDB struct {
	DSN string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientConfig is the configuration view used by the terminal client.
type ClientConfig struct {
	App       ClientApp
	Adapter   ClientAdapter
	Storage   ClientStorage
	Render    Render
	Templates Templates
	History   History
	Workers   ClientWorkers
}

// GetClientConfig builds and validates the client configuration view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig projects the fields the client needs.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			HashKey:  cfg.App.HashKey,
			DeviceID: cfg.App.DeviceID,
			LogDir:   cfg.App.LogDir,
			Offline:  cfg.App.Offline,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Render:    cfg.Render,
		Templates: cfg.Templates,
		History:   cfg.History,
		Workers:   ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
}

// RenderOptions converts the render defaults into model options.
func (r Render) RenderOptions() models.RenderOptions {
	return models.RenderOptions{
		Size:         r.Size,
		ColorDark:    r.ColorDark,
		ColorLight:   r.ColorLight,
		CorrectLevel: models.CorrectLevel(r.CorrectLevel),
	}
}
