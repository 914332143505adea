package config

import "time"

// Defaults applied to fields no source has set.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultGRPCAddress    = "localhost:9090"
	DefaultRequestTimeout = 10 * time.Second
	DefaultDSN            = "qr-forge.db"
	DefaultVersion        = "dev"
	DefaultShareTTL       = 24 * time.Hour
	DefaultDeviceID       = "default"

	DefaultSize         = 220
	DefaultColorDark    = "#0a0a1a"
	DefaultColorLight   = "#ffffff"
	DefaultCorrectLevel = "H"
	DefaultPadding      = 32

	DefaultCacheTTL     = 10 * time.Minute
	DefaultMaxItems     = 20
	DefaultSyncInterval = time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.Version, DefaultVersion)
	setDefault(&cfg.App.ShareTTL, DefaultShareTTL)
	setDefault(&cfg.App.DeviceID, DefaultDeviceID)

	setDefault(&cfg.Storage.DB.DSN, DefaultDSN)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.GRPCAddress, DefaultGRPCAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)

	setDefault(&cfg.Adapter.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultRequestTimeout)

	setDefault(&cfg.Render.Size, DefaultSize)
	setDefault(&cfg.Render.ColorDark, DefaultColorDark)
	setDefault(&cfg.Render.ColorLight, DefaultColorLight)
	setDefault(&cfg.Render.CorrectLevel, DefaultCorrectLevel)
	setDefault(&cfg.Render.Padding, DefaultPadding)

	setDefault(&cfg.Cache.TTL, DefaultCacheTTL)
	setDefault(&cfg.History.MaxItems, DefaultMaxItems)
	setDefault(&cfg.Workers.SyncInterval, DefaultSyncInterval)
}

func setDefault[T comparable](field *T, def T) {
	var zero T
	if *field == zero {
		*field = def
	}
}
