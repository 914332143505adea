package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-qr-forge/models"
)

const (
	ServiceName = "qrforge.v1.PayloadService"

	EncodeFullMethod = "/" + ServiceName + "/Encode"
	DetectFullMethod = "/" + ServiceName + "/Detect"
)

// PayloadServer is the server API of qrforge.v1.PayloadService.
type PayloadServer interface {
	Encode(ctx context.Context, in *models.TypedData) (*models.EncodeResult, error)
	Detect(ctx context.Context, in *models.DetectRequest) (*models.DetectionResult, error)
}

// PayloadServiceDesc describes qrforge.v1.PayloadService for grpc.Server.
var PayloadServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PayloadServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Encode", Handler: encodeHandler},
		{MethodName: "Detect", Handler: detectHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "qrforge/v1/payload",
}

func encodeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.TypedData)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayloadServer).Encode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: EncodeFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PayloadServer).Encode(ctx, req.(*models.TypedData))
	}
	return interceptor(ctx, in, info, handler)
}

func detectHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.DetectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayloadServer).Detect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DetectFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PayloadServer).Detect(ctx, req.(*models.DetectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PayloadClient calls qrforge.v1.PayloadService with the JSON codec.
type PayloadClient struct {
	cc grpc.ClientConnInterface
}

func NewPayloadClient(cc grpc.ClientConnInterface) *PayloadClient {
	return &PayloadClient{cc: cc}
}

func (c *PayloadClient) Encode(ctx context.Context, in *models.TypedData, opts ...grpc.CallOption) (*models.EncodeResult, error) {
	out := new(models.EncodeResult)
	if err := c.cc.Invoke(ctx, EncodeFullMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PayloadClient) Detect(ctx context.Context, in *models.DetectRequest, opts ...grpc.CallOption) (*models.DetectionResult, error) {
	out := new(models.DetectionResult)
	if err := c.cc.Invoke(ctx, DetectFullMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withJSON(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(JSONCodecName)}, opts...)
}
