package service

import (
	"github.com/MKhiriev/go-qr-forge/internal/cache"
	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/render"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/templates"
)

type Services struct {
	PayloadService  PayloadService
	RenderService   RenderService
	HistoryService  HistoryService
	TemplateService TemplateService
	ShareService    ShareService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, renderCache cache.RenderCache, library *templates.Library, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	defaults := cfg.Render.RenderOptions()

	return &Services{
		PayloadService:  NewPayloadService(logger),
		RenderService:   NewRenderService(render.NewRenderer(cfg.Render.Padding), renderCache, defaults, logger),
		HistoryService:  NewHistoryService(storages.HistoryRepository, cfg.History.MaxItems, logger),
		TemplateService: NewTemplateService(library, defaults, logger),
		ShareService:    NewShareService(cfg.App, defaults, logger),
		AppInfoService:  appInfo,
	}, nil
}
