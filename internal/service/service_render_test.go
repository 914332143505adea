package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/mock"
	"github.com/MKhiriev/go-qr-forge/internal/render"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func testDefaults() models.RenderOptions {
	return models.RenderOptions{
		Size:         220,
		ColorDark:    "#0a0a1a",
		ColorLight:   "#ffffff",
		CorrectLevel: models.CorrectHigh,
	}
}

func urlRequest(url string) models.RenderRequest {
	return models.RenderRequest{
		TypedData: models.TypedData{Type: models.TypeURL, Data: []byte(`{"value":"` + url + `"}`)},
	}
}

func newTestRenderService(t *testing.T) (RenderService, *mock.MockRenderCache) {
	t.Helper()
	c := mock.NewMockRenderCache(gomock.NewController(t))
	return NewRenderService(render.NewRenderer(0), c, testDefaults(), logger.Nop()), c
}

// ── Render ──────────────────────────────────────────────────────────────────

func TestRenderService_Render_MissThenStore(t *testing.T) {
	svc, c := newTestRenderService(t)
	ctx := context.Background()

	key := utils.RenderKey("https://example.com", testDefaults(), models.FormatPNG)
	c.EXPECT().Get(ctx, key).Return(nil, false, nil)
	c.EXPECT().Set(ctx, key, gomock.Any()).Return(nil)

	got, err := svc.Render(ctx, urlRequest("example.com"))
	require.NoError(t, err)
	assert.Equal(t, models.FormatPNG, got.Format)
	assert.Equal(t, "https://example.com", got.Encoded)
	assert.True(t, bytes.HasPrefix(got.Content, pngMagic))
}

func TestRenderService_Render_CacheHit(t *testing.T) {
	svc, c := newTestRenderService(t)
	ctx := context.Background()

	c.EXPECT().Get(ctx, gomock.Any()).Return([]byte("<svg/>"), true, nil)

	req := urlRequest("example.com")
	req.Format = models.FormatSVG
	got, err := svc.Render(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []byte("<svg/>"), got.Content)
	assert.Equal(t, models.FormatSVG, got.Format)
}

func TestRenderService_Render_CacheErrorsAreNotFatal(t *testing.T) {
	svc, c := newTestRenderService(t)
	ctx := context.Background()

	c.EXPECT().Get(ctx, gomock.Any()).Return(nil, false, assert.AnError)
	c.EXPECT().Set(ctx, gomock.Any(), gomock.Any()).Return(assert.AnError)

	got, err := svc.Render(ctx, urlRequest("example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, got.Content)
}

func TestRenderService_Render_ZipBypassesCache(t *testing.T) {
	svc, _ := newTestRenderService(t)

	req := urlRequest("example.com")
	req.Format = models.FormatZIP
	got, err := svc.Render(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.FormatZIP, got.Format)
	assert.True(t, bytes.HasPrefix(got.Content, []byte("PK")))
}

func TestRenderService_Render_InvalidPayload(t *testing.T) {
	svc, _ := newTestRenderService(t)

	_, err := svc.Render(context.Background(), urlRequest(""))
	require.ErrorIs(t, err, ErrInvalidPayload)
	assert.Equal(t, "Please enter a URL", err.Error())
}

func TestRenderService_Render_InvalidOptions(t *testing.T) {
	svc, _ := newTestRenderService(t)

	tests := []struct {
		name   string
		mutate func(r *models.RenderRequest)
	}{
		{name: "size too small", mutate: func(r *models.RenderRequest) { r.Options.Size = 10 }},
		{name: "bad colour", mutate: func(r *models.RenderRequest) { r.Options.ColorDark = "black" }},
		{name: "bad level", mutate: func(r *models.RenderRequest) { r.Options.CorrectLevel = "X" }},
		{name: "bad format", mutate: func(r *models.RenderRequest) { r.Format = "gif" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := urlRequest("example.com")
			tt.mutate(&req)

			_, err := svc.Render(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRenderOptions)
		})
	}
}

// ── RenderEncoded ───────────────────────────────────────────────────────────

func TestRenderService_RenderEncoded_Terminal(t *testing.T) {
	svc, _ := newTestRenderService(t)

	got, err := svc.RenderEncoded(context.Background(), "hello", models.RenderOptions{}, models.FormatTXT)
	require.NoError(t, err)
	assert.NotEmpty(t, got.Content)
	assert.Equal(t, "hello", got.Encoded)
}

func TestRenderService_RenderEncoded_InvalidFormat(t *testing.T) {
	svc, _ := newTestRenderService(t)

	_, err := svc.RenderEncoded(context.Background(), "hello", models.RenderOptions{}, "bmp")
	assert.ErrorIs(t, err, ErrInvalidRenderOptions)
}

func TestRenderService_Defaults(t *testing.T) {
	svc, _ := newTestRenderService(t)
	assert.Equal(t, testDefaults(), svc.Defaults())
}
