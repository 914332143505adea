package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/payload"
	"github.com/MKhiriev/go-qr-forge/internal/templates"
	"github.com/MKhiriev/go-qr-forge/models"
)

type templateService struct {
	library  *templates.Library
	defaults models.RenderOptions

	logger *logger.Logger
}

func NewTemplateService(library *templates.Library, defaults models.RenderOptions, logger *logger.Logger) TemplateService {
	return &templateService{
		library:  library,
		defaults: defaults,
		logger:   logger,
	}
}

func (s *templateService) List(ctx context.Context) []models.Template {
	return s.library.List()
}

func (s *templateService) Presets(ctx context.Context) []models.Preset {
	return s.library.Presets()
}

func (s *templateService) Get(ctx context.Context, id string) (models.Template, error) {
	t, err := s.library.Get(id)
	if errors.Is(err, templates.ErrTemplateNotFound) {
		return models.Template{}, ErrTemplateNotFound
	}
	return t, err
}

// Apply encodes the template payload and resolves its preset colours on top
// of the default render options. An unknown preset keeps the defaults.
func (s *templateService) Apply(ctx context.Context, id string) (models.AppliedTemplate, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return models.AppliedTemplate{}, err
	}

	typed, err := templates.Typed(t)
	if err != nil {
		return models.AppliedTemplate{}, invalidPayload(err.Error())
	}

	opts := s.defaults
	if preset, ok := s.library.Preset(t.Preset); ok {
		opts.ColorDark = preset.ColorDark
		opts.ColorLight = preset.ColorLight
	} else if t.Preset != "" {
		logger.FromContext(ctx).Warn().
			Str("func", "templateService.Apply").
			Str("template", t.ID).
			Str("preset", t.Preset).
			Msg("unknown preset, using default colours")
	}

	return models.AppliedTemplate{
		Template: t,
		Result:   payload.EncodeTyped(typed),
		Options:  opts,
	}, nil
}
