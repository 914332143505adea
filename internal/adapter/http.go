package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPServerAdapter validates the server address and returns a resty
// backed [ServerAdapter]. An address without scheme is treated as http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	deviceID := appCfg.DeviceID
	if deviceID == "" {
		deviceID = models.DefaultDeviceID
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetHeader(models.HeaderDeviceID, deviceID)

	a := &httpServerAdapter{client: client, logger: logger}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include a host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(models.HeaderTraceID, utils.NewTraceID())
}

// PushHistory uploads entries as a [models.HistoryImportRequest]. The body is
// marshalled here so its HMAC can be sent alongside it.
func (h *httpServerAdapter) PushHistory(ctx context.Context, entries []models.HistoryEntry) error {
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	body, err := json.Marshal(models.HistoryImportRequest{Entries: entries, Length: len(entries)})
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hasher != nil {
		req.SetHeader(models.HeaderHash, h.hasher.SumHex(body))
	}

	resp, err := req.Post("/api/history")
	if err != nil {
		return fmt.Errorf("push history request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var v models.VersionResponse

	resp, err := h.request(ctx).
		SetResult(&v).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return v.Version, nil
}
