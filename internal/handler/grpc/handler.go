package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/models"
)

// Handler serves qrforge.v1.PayloadService on top of the payload service
// and owns the health status reported for it.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register adds PayloadService and the standard health service to s and
// marks PayloadService as serving.
func (h *Handler) Register(s *grpc.Server) {
	s.RegisterService(&PayloadServiceDesc, h)
	healthpb.RegisterHealthServer(s, h.health)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every health status to NOT_SERVING.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// Encode never fails on invalid input; the result carries the message.
func (h *Handler) Encode(ctx context.Context, in *models.TypedData) (*models.EncodeResult, error) {
	result := h.services.PayloadService.Encode(ctx, *in)
	return &result, nil
}

func (h *Handler) Detect(ctx context.Context, in *models.DetectRequest) (*models.DetectionResult, error) {
	result := h.services.PayloadService.Detect(ctx, in.Text)
	return &result, nil
}
