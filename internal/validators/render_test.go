// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validOptions() models.RenderOptions {
	return models.RenderOptions{
		Size:         220,
		ColorDark:    "#0a0a1a",
		ColorLight:   "#fff",
		CorrectLevel: models.CorrectHigh,
	}
}

func validRenderRequest() models.RenderRequest {
	return models.RenderRequest{
		TypedData: models.TypedData{Type: models.TypeURL},
		Options:   validOptions(),
		Format:    models.FormatPNG,
	}
}

// ---------------------------------------------------------------------------
// RenderOptions
// ---------------------------------------------------------------------------

func TestRenderValidator_Options(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RenderOptions)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.RenderOptions) {}},
		{name: "min size", mutate: func(o *models.RenderOptions) { o.Size = MinSize }},
		{name: "max size", mutate: func(o *models.RenderOptions) { o.Size = MaxSize }},
		{name: "size too small", mutate: func(o *models.RenderOptions) { o.Size = MinSize - 1 }, wantErr: ErrInvalidSize},
		{name: "size too large", mutate: func(o *models.RenderOptions) { o.Size = MaxSize + 1 }, wantErr: ErrInvalidSize},
		{name: "named colour", mutate: func(o *models.RenderOptions) { o.ColorDark = "black" }, wantErr: ErrInvalidColor},
		{name: "four digit colour", mutate: func(o *models.RenderOptions) { o.ColorLight = "#ffff" }, wantErr: ErrInvalidColor},
		{name: "missing hash", mutate: func(o *models.RenderOptions) { o.ColorLight = "ffffff" }, wantErr: ErrInvalidColor},
		{name: "bad level", mutate: func(o *models.RenderOptions) { o.CorrectLevel = "X" }, wantErr: ErrInvalidCorrectLevel},
		{name: "label at limit", mutate: func(o *models.RenderOptions) { o.Label = strings.Repeat("é", MaxLabelLength) }},
		{name: "label too long", mutate: func(o *models.RenderOptions) { o.Label = strings.Repeat("a", MaxLabelLength+1) }, wantErr: ErrLabelTooLong},
		{name: "sublabel too long", mutate: func(o *models.RenderOptions) { o.Sublabel = strings.Repeat("a", MaxLabelLength+1) }, wantErr: ErrLabelTooLong},
	}

	v := NewRenderValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOptions()
			tt.mutate(&o)

			err := v.Validate(context.Background(), o)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRenderValidator_FieldScoping(t *testing.T) {
	o := validOptions()
	o.Size = 1

	err := NewRenderValidator().Validate(context.Background(), &o, FieldColorDark, FieldCorrectLevel)

	assert.NoError(t, err)
}

func TestRenderValidator_UnknownField(t *testing.T) {
	err := NewRenderValidator().Validate(context.Background(), validOptions(), "nope")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRenderValidator_UnsupportedType(t *testing.T) {
	err := NewRenderValidator().Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// RenderRequest / ShareRequest
// ---------------------------------------------------------------------------

func TestRenderValidator_RenderRequest(t *testing.T) {
	v := NewRenderValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validRenderRequest()))

	noFormat := validRenderRequest()
	noFormat.Format = ""
	assert.NoError(t, v.Validate(ctx, &noFormat))

	badFormat := validRenderRequest()
	badFormat.Format = "gif"
	assert.ErrorIs(t, v.Validate(ctx, badFormat), ErrInvalidFormat)

	badType := validRenderRequest()
	badType.Type = "fax"
	assert.ErrorIs(t, v.Validate(ctx, badType), ErrInvalidType)

	badSize := validRenderRequest()
	badSize.Options.Size = 0
	assert.ErrorIs(t, v.Validate(ctx, badSize), ErrInvalidSize)
	assert.NoError(t, v.Validate(ctx, badSize, FieldType, FieldFormat))
}

func TestRenderValidator_ShareRequest(t *testing.T) {
	v := NewRenderValidator()
	ctx := context.Background()

	req := models.ShareRequest{TypedData: models.TypedData{Type: models.TypeText}, Options: validOptions()}
	assert.NoError(t, v.Validate(ctx, req))

	req.Type = ""
	assert.ErrorIs(t, v.Validate(ctx, &req), ErrInvalidType)
}
