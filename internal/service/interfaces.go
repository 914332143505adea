package service

import (
	"context"

	"github.com/MKhiriev/go-qr-forge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PayloadService exposes the payload core to transports.
type PayloadService interface {
	// Encode validates typed and produces the encoded payload. Validation
	// failures are reported inside the result, never as an error.
	Encode(ctx context.Context, typed models.TypedData) models.EncodeResult
	Detect(ctx context.Context, text string) models.DetectionResult
}

// RenderService turns payloads into images and export bundles.
type RenderService interface {
	// Render validates the request, encodes its payload and renders it in the
	// requested format. Missing options are filled from the configured defaults.
	Render(ctx context.Context, req models.RenderRequest) (models.Rendered, error)

	// RenderEncoded renders an already encoded payload.
	RenderEncoded(ctx context.Context, encoded string, opts models.RenderOptions, format models.ExportFormat) (models.Rendered, error)

	Defaults() models.RenderOptions
}

// HistoryService manages the per-device list of generated payloads.
type HistoryService interface {
	Add(ctx context.Context, owner string, typed models.TypedData) (models.HistoryEntry, error)
	List(ctx context.Context, owner string) ([]models.HistoryEntry, error)
	Remove(ctx context.Context, owner, id string) error
	Clear(ctx context.Context, owner string) error

	// Import replaces the owner's history with the uploaded entries.
	Import(ctx context.Context, owner string, req models.HistoryImportRequest) error
}

type TemplateService interface {
	List(ctx context.Context) []models.Template
	Presets(ctx context.Context) []models.Preset
	Get(ctx context.Context, id string) (models.Template, error)
	Apply(ctx context.Context, id string) (models.AppliedTemplate, error)
}

// ShareService issues and resolves signed, self-contained share links.
type ShareService interface {
	Issue(ctx context.Context, req models.ShareRequest) (models.ShareResponse, error)
	Resolve(ctx context.Context, token string) (models.SharedQR, error)
}

// AppInfoService describes the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionResponse
}
