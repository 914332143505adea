package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/templates"
	"github.com/MKhiriev/go-qr-forge/models"
)

func newTestTemplateService(extra templates.File) TemplateService {
	return NewTemplateService(templates.NewLibrary(extra), testDefaults(), logger.Nop())
}

func TestTemplateService_ListAndPresets(t *testing.T) {
	svc := newTestTemplateService(templates.File{})
	ctx := context.Background()

	assert.Len(t, svc.List(ctx), 8)
	assert.Len(t, svc.Presets(ctx), 8)
}

func TestTemplateService_Get_NotFound(t *testing.T) {
	svc := newTestTemplateService(templates.File{})

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestTemplateService_Apply_ResolvesPreset(t *testing.T) {
	svc := newTestTemplateService(templates.File{})

	got, err := svc.Apply(context.Background(), "wifi-guest")
	require.NoError(t, err)

	assert.Equal(t, "wifi-guest", got.Template.ID)
	assert.True(t, got.Result.Valid)
	assert.Contains(t, got.Result.Encoded, "WIFI:T:")
	assert.Equal(t, "#0c4a6e", got.Options.ColorDark)
	assert.Equal(t, "#e0f2fe", got.Options.ColorLight)
	assert.Equal(t, 220, got.Options.Size, "size comes from the defaults")
}

func TestTemplateService_Apply_UnknownPresetKeepsDefaults(t *testing.T) {
	svc := newTestTemplateService(templates.File{Templates: []models.Template{{
		ID:     "plain",
		Name:   "Plain",
		Type:   models.TypeText,
		Data:   map[string]any{"value": "hello"},
		Preset: "does-not-exist",
	}}})

	got, err := svc.Apply(context.Background(), "plain")
	require.NoError(t, err)
	assert.Equal(t, models.Valid("hello"), got.Result)
	assert.Equal(t, testDefaults(), got.Options)
}

func TestTemplateService_Apply_InvalidTemplateData(t *testing.T) {
	svc := newTestTemplateService(templates.File{Templates: []models.Template{{
		ID:   "empty-url",
		Name: "Empty",
		Type: models.TypeURL,
		Data: map[string]any{"value": ""},
	}}})

	got, err := svc.Apply(context.Background(), "empty-url")
	require.NoError(t, err)
	assert.Equal(t, models.Invalid("Please enter a URL"), got.Result)
}
