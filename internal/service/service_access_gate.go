// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
)

type accessGate struct {
	authService AuthService
}

// NewAccessGate returns an [AccessGate] delegating token checks to
// authService. The gate holds no state of its own.
func NewAccessGate(authService AuthService) AccessGate {
	return &accessGate{authService: authService}
}

func (g *accessGate) Authorize(ctx context.Context, authorizationHeader string) (int64, error) {
	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		log.Debug().Err(err).Msg("gate rejected request: no bearer token")
		gateDecisionsTotal.WithLabelValues("reject").Inc()
		return 0, ErrUnauthenticated
	}

	adminID, err := g.authService.ValidateToken(ctx, tokenString)
	if err != nil {
		log.Info().Err(err).Msg("gate rejected request")
		gateDecisionsTotal.WithLabelValues("reject").Inc()
		return 0, ErrUnauthenticated
	}

	gateDecisionsTotal.WithLabelValues("admit").Inc()
	return adminID, nil
}
