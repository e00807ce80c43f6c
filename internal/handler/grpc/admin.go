package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/MKhiriev/go-market-keeper/internal/service"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
)

const (
	adminServiceName = "market.admin.v1.AdminService"
	whoAmIMethod     = "/" + adminServiceName + "/WhoAmI"
)

// AdminService is the gated gRPC surface for admin clients.
type AdminService interface {
	WhoAmI(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

type adminServer struct {
	services *service.Services
}

// WhoAmI reports the admin admitted by the interceptor chain.
func (s *adminServer) WhoAmI(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	adminID, ok := utils.GetAdminIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, service.ErrUnauthenticated.Error())
	}

	build := s.services.AppInfoService.GetBuildInfo(ctx)
	resp, err := structpb.NewStruct(map[string]any{
		"admin_id":     adminID,
		"version":      build.BuildVersion(),
		"build_date":   build.BuildDate(),
		"build_commit": build.BuildCommit(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return resp, nil
}

func registerAdminService(server grpc.ServiceRegistrar, svc AdminService) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: adminServiceName,
		HandlerType: (*AdminService)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "WhoAmI",
				Handler:    whoAmIHandler,
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "market/admin/v1/admin.proto",
	}, svc)
}

func whoAmIHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminService).WhoAmI(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: whoAmIMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdminService).WhoAmI(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}
