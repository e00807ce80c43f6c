// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/service"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
)

const (
	authorizationMetadataKey = "authorization"
	traceIDMetadataKey       = "x-trace-id"
)

// healthServicePrefix matches every method of the standard health service.
var healthServicePrefix = "/" + healthpb.Health_ServiceDesc.ServiceName + "/"

func isPublicMethod(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, healthServicePrefix)
}

// unaryLoggingInterceptor attaches a trace-scoped logger to the call and
// logs its outcome.
func (h *Handler) unaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstMetadataValue(ctx, traceIDMetadataKey)
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) unaryAuthInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublicMethod(info.FullMethod) {
		return handler(ctx, req)
	}

	ctx, err := h.authorize(ctx, info.FullMethod)
	if err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

func (h *Handler) streamAuthInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if isPublicMethod(info.FullMethod) {
		return handler(srv, ss)
	}

	ctx, err := h.authorize(ss.Context(), info.FullMethod)
	if err != nil {
		return err
	}
	return handler(srv, &authorizedStream{ServerStream: ss, ctx: ctx})
}

// authorize runs the access gate on the "authorization" metadata entry.
// Every rejection is the same Unauthenticated status.
func (h *Handler) authorize(ctx context.Context, fullMethod string) (context.Context, error) {
	adminID, err := h.services.AccessGate.Authorize(ctx, firstMetadataValue(ctx, authorizationMetadataKey))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("method", fullMethod).Msg("call rejected by access gate")
		return nil, status.Error(codes.Unauthenticated, service.ErrUnauthenticated.Error())
	}

	return utils.WithAdminID(ctx, adminID), nil
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// authorizedStream carries the admitted admin id to stream handlers.
type authorizedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authorizedStream) Context() context.Context {
	return s.ctx
}
