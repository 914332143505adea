package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/models"
)

type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService fixes the server description at startup. Share links are
// advertised only when a signing key is configured.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.VersionResponse{
			Version: cfg.Version,
			Types:   slices.Clone(models.AllTypes),
			Formats: slices.Clone(models.ExportFormats),
			Share:   cfg.ShareSignKey != "",
		},
		logger: logger,
	}, nil
}

// GetAppInfo returns a copy so callers cannot change the shared slices.
func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionResponse {
	info := s.info
	info.Types = slices.Clone(s.info.Types)
	info.Formats = slices.Clone(s.info.Formats)
	return info
}
