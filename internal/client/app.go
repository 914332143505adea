package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-qr-forge/internal/adapter"
	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/templates"
	"github.com/MKhiriev/go-qr-forge/internal/tui"
	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/internal/workers"
	"github.com/MKhiriev/go-qr-forge/models"
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	storages *store.Storages
	services *service.ClientServices

	logger *logger.Logger
}

// NewApp opens the local history database and builds the client services.
// The server adapter is only created when the client is not offline.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	library, err := loadLibrary(ctx, cfg.Templates)
	if err != nil {
		return nil, err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB.DSN, cfg.History.MaxItems, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	// stays nil when offline
	var serverAdapter adapter.ServerAdapter
	if !cfg.App.Offline {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
	}

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		storages:  storages,
		services:  service.NewClientServices(storages, library, serverAdapter, cfg, logger),
		logger:    logger,
	}, nil
}

// Run starts background sync, blocks in the terminal UI and releases
// everything once the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := workers.NewWorkers(ctx, a.services.SyncJob, a.cfg.Workers.SyncInterval, a.logger)
	w.Run()
	a.logger.Info().Str("func", "*App.Run").Int("workers", w.Len()).Msg("client started")

	ui := tui.New(a.services, a.buildInfo, a.cfg.App.DeviceID, saveDir(), a.logger)
	runErr := ui.Run(ctx)

	w.Stop()
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("error closing local storage")
	}

	if runErr != nil {
		return fmt.Errorf("terminal ui: %w", runErr)
	}
	return nil
}

func loadLibrary(ctx context.Context, cfg config.Templates) (*templates.Library, error) {
	f, err := templates.Load(ctx, cfg.FilePath, validators.NewTemplateValidator())
	if err != nil {
		return nil, err
	}
	return templates.NewLibrary(f), nil
}

// saveDir is where exported PNGs land: the working directory, or the
// executable's directory when the working directory is unknown.
func saveDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	return "."
}
