package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-forge/internal/cache"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/payload"
	"github.com/MKhiriev/go-qr-forge/internal/render"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
)

type renderService struct {
	renderer  *render.Renderer
	cache     cache.RenderCache
	validator validators.Validator
	defaults  models.RenderOptions

	logger *logger.Logger
}

func NewRenderService(renderer *render.Renderer, renderCache cache.RenderCache, defaults models.RenderOptions, logger *logger.Logger) RenderService {
	if renderCache == nil {
		renderCache = cache.Noop{}
	}
	return &renderService{
		renderer:  renderer,
		cache:     renderCache,
		validator: validators.NewRenderValidator(),
		defaults:  defaults,
		logger:    logger,
	}
}

func (s *renderService) Defaults() models.RenderOptions {
	return s.defaults
}

func (s *renderService) Render(ctx context.Context, req models.RenderRequest) (models.Rendered, error) {
	req.Options = req.Options.WithDefaults(s.defaults)
	if req.Format == "" {
		req.Format = models.FormatPNG
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Rendered{}, fmt.Errorf("%w: %w", ErrInvalidRenderOptions, err)
	}

	res := payload.EncodeTyped(req.TypedData)
	if !res.Valid {
		return models.Rendered{}, invalidPayload(res.Error)
	}

	return s.render(ctx, res.Encoded, req.Options, req.Format)
}

func (s *renderService) RenderEncoded(ctx context.Context, encoded string, opts models.RenderOptions, format models.ExportFormat) (models.Rendered, error) {
	opts = opts.WithDefaults(s.defaults)
	if format == "" {
		format = models.FormatPNG
	}

	if err := s.validator.Validate(ctx, opts); err != nil {
		return models.Rendered{}, fmt.Errorf("%w: %w", ErrInvalidRenderOptions, err)
	}
	if !format.IsValid() {
		return models.Rendered{}, fmt.Errorf("%w: %w", ErrInvalidRenderOptions, validators.ErrInvalidFormat)
	}

	return s.render(ctx, encoded, opts, format)
}

// render serves images from the cache; zip bundles and terminal art are
// cheap or rare enough to be rendered every time.
func (s *renderService) render(ctx context.Context, encoded string, opts models.RenderOptions, format models.ExportFormat) (models.Rendered, error) {
	log := logger.FromContext(ctx)

	cacheable := format == models.FormatPNG || format == models.FormatSVG
	key := utils.RenderKey(encoded, opts, format)

	if cacheable {
		content, found, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("func", "renderService.render").Msg("render cache read failed")
		}
		if found {
			log.Debug().Str("func", "renderService.render").Str("format", string(format)).Msg("render cache hit")
			return models.Rendered{Encoded: encoded, Format: format, Content: content}, nil
		}
	}

	rendered, err := s.renderer.Render(encoded, opts, format)
	if err != nil {
		log.Err(err).
			Str("func", "renderService.render").
			Str("format", string(format)).
			Int("length", len(encoded)).
			Msg("failed to render QR code")
		return models.Rendered{}, err
	}

	if cacheable {
		if err = s.cache.Set(ctx, key, rendered.Content); err != nil {
			log.Warn().Err(err).Str("func", "renderService.render").Msg("render cache write failed")
		}
	}

	return rendered, nil
}
