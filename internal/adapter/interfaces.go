// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the marketplace HTTP API on behalf of the admin
// command-line client.
//
// Non-2xx answers are mapped by mapHTTPError onto the sentinel errors in
// errors.go, so callers can match them with [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-market-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/market_adapter_mock.go -package=mock

// MarketAdapter is the admin client's view of the marketplace server.
type MarketAdapter interface {
	// SetToken stores the bearer token attached to gated requests.
	SetToken(token string)
	Token() string

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)
	Me(ctx context.Context) (models.MeResponse, error)

	// Upload sends files in one multipart request. A partially failed batch
	// returns the response together with [ErrPartialUpload]; a batch where
	// every file failed returns it with [ErrUnprocessable].
	Upload(ctx context.Context, files ...UploadFile) (models.UploadBatchResponse, error)

	CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// UploadFile is one file of a multipart upload.
type UploadFile struct {
	Name      string
	MediaType string
	Content   []byte
}
