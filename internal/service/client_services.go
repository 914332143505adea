package service

import (
	"github.com/MKhiriev/go-qr-forge/internal/adapter"
	"github.com/MKhiriev/go-qr-forge/internal/cache"
	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/render"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/templates"
)

// ClientServices is what the terminal client runs on: the payload core and
// a local history, with the server reached only for sync.
type ClientServices struct {
	PayloadService  PayloadService
	RenderService   RenderService
	HistoryService  HistoryService
	TemplateService TemplateService
	SyncService     ClientSyncService
	SyncJob         ClientSyncJob
}

func NewClientServices(storages *store.Storages, library *templates.Library, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	defaults := cfg.Render.RenderOptions()
	history := NewHistoryService(storages.HistoryRepository, cfg.History.MaxItems, logger)

	services := &ClientServices{
		PayloadService:  NewPayloadService(logger),
		RenderService:   NewRenderService(render.NewRenderer(cfg.Render.Padding), cache.Noop{}, defaults, logger),
		HistoryService:  history,
		TemplateService: NewTemplateService(library, defaults, logger),
	}

	// Without a server the client works offline and never syncs.
	if serverAdapter != nil {
		services.SyncService = NewClientSyncService(history, serverAdapter, cfg.App.DeviceID, logger)
		services.SyncJob = NewClientSyncJob(services.SyncService, logger)
	}

	return services
}
