package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/payload"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
)

// SharePathPrefix is the route a share token is resolved under.
const SharePathPrefix = "/api/share/"

type shareService struct {
	signKey   string
	ttl       time.Duration
	defaults  models.RenderOptions
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewShareService(cfg config.App, defaults models.RenderOptions, logger *logger.Logger) ShareService {
	return &shareService{
		signKey:   cfg.ShareSignKey,
		ttl:       cfg.ShareTTL,
		defaults:  defaults,
		validator: validators.NewRenderValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Issue signs the payload and its render options into a token. The payload
// is validated first so a link never resolves to an invalid code.
func (s *shareService) Issue(ctx context.Context, req models.ShareRequest) (models.ShareResponse, error) {
	if s.signKey == "" {
		return models.ShareResponse{}, ErrShareDisabled
	}

	req.Options = req.Options.WithDefaults(s.defaults)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ShareResponse{}, fmt.Errorf("%w: %w", ErrInvalidRenderOptions, err)
	}

	if res := payload.EncodeTyped(req.TypedData); !res.Valid {
		return models.ShareResponse{}, invalidPayload(res.Error)
	}

	claims := models.ShareClaims{
		Type:    req.Type,
		Data:    req.Data,
		Options: req.Options,
	}
	token, expiresAt, err := utils.GenerateShareToken(claims, s.ttl, s.signKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "shareService.Issue").Msg("failed to sign share token")
		return models.ShareResponse{}, err
	}

	return models.ShareResponse{
		Token:     token,
		Path:      SharePathPrefix + token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *shareService) Resolve(ctx context.Context, token string) (models.SharedQR, error) {
	if s.signKey == "" {
		return models.SharedQR{}, ErrShareDisabled
	}

	claims, err := utils.ParseShareToken(token, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "shareService.Resolve").Msg("share token rejected")
		return models.SharedQR{}, fmt.Errorf("%w: %w", ErrShareTokenInvalid, err)
	}

	res := payload.EncodeTyped(claims.Typed())
	if !res.Valid {
		return models.SharedQR{}, invalidPayload(res.Error)
	}

	return models.SharedQR{Encoded: res.Encoded, Options: claims.Options}, nil
}
