package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteJSON_InvalidData(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, "Please enter a URL", http.StatusUnprocessableEntity)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Please enter a URL", body.Error)
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient("localhost:8080/", 3*time.Second)

	require.NotNil(t, c.Client)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, 3*time.Second, c.GetClient().Timeout)
}

func TestNewHTTPClient_KeepsScheme(t *testing.T) {
	c := NewHTTPClient("https://qr.example.com", 0)

	assert.Equal(t, "https://qr.example.com", c.BaseURL)
}
