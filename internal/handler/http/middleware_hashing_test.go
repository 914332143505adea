package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

const testHashKey = "hash-key"

func runCheckHash(t *testing.T, hashKey, body, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	h := NewHandler(&service.Services{}, hashKey, logger.Nop())

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, body, string(got), "body must be restored for the handler")
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/history", strings.NewReader(body))
	if header != "" {
		req.Header.Set(models.HeaderHash, header)
	}
	rec := httptest.NewRecorder()

	h.checkHash(next).ServeHTTP(rec, req)
	return rec, called
}

func TestCheckHash(t *testing.T) {
	const body = `{"entries":[],"length":0}`
	valid := utils.HashString(body, testHashKey)

	tests := []struct {
		name       string
		hashKey    string
		header     string
		wantCalled bool
		wantStatus int
	}{
		{name: "no key configured passes", hashKey: "", header: "", wantCalled: true, wantStatus: http.StatusNoContent},
		{name: "valid signature", hashKey: testHashKey, header: valid, wantCalled: true, wantStatus: http.StatusNoContent},
		{name: "missing header", hashKey: testHashKey, header: "", wantStatus: http.StatusBadRequest},
		{name: "wrong signature", hashKey: testHashKey, header: utils.HashString(body, "other"), wantStatus: http.StatusBadRequest},
		{name: "not hex", hashKey: testHashKey, header: "zz-not-hex", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, called := runCheckHash(t, tt.hashKey, body, tt.header)

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckHash_GuardsHistoryImportRoute(t *testing.T) {
	const body = `{"entries":[],"length":0}`

	t.Run("rejected before reaching the service", func(t *testing.T) {
		router, _ := newTestRouter(t, testHashKey)

		rec := doRequest(t, router, http.MethodPost, "/api/history", body, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Integrity check failed", decodeBody[utils.ErrorResponse](t, rec).Error)
	})

	t.Run("accepted with signature", func(t *testing.T) {
		router, m := newTestRouter(t, testHashKey)
		m.history.EXPECT().Import(gomock.Any(), models.DefaultDeviceID, gomock.Any()).Return(nil)

		rec := doRequest(t, router, http.MethodPost, "/api/history", body,
			map[string]string{models.HeaderHash: utils.HashString(body, testHashKey)})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("other routes are not checked", func(t *testing.T) {
		router, m := newTestRouter(t, testHashKey)
		m.history.EXPECT().Clear(gomock.Any(), models.DefaultDeviceID).Return(nil)

		rec := doRequest(t, router, http.MethodDelete, "/api/history", nil, nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
