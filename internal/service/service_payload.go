package service

import (
	"context"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/payload"
	"github.com/MKhiriev/go-qr-forge/models"
)

type payloadService struct {
	logger *logger.Logger
}

func NewPayloadService(logger *logger.Logger) PayloadService {
	return &payloadService{logger: logger}
}

func (s *payloadService) Encode(ctx context.Context, typed models.TypedData) models.EncodeResult {
	res := payload.EncodeTyped(typed)
	if !res.Valid {
		logger.FromContext(ctx).Debug().
			Str("func", "payloadService.Encode").
			Str("type", string(typed.Type)).
			Str("reason", res.Error).
			Msg("payload rejected")
	}
	return res
}

func (s *payloadService) Detect(ctx context.Context, text string) models.DetectionResult {
	res := payload.Detect(text)
	logger.FromContext(ctx).Debug().
		Str("func", "payloadService.Detect").
		Str("type", string(res.Type)).
		Int("length", len(text)).
		Msg("text classified")
	return res
}
