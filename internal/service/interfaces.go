package service

import (
	"context"

	"github.com/MKhiriev/go-market-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies admin credentials, issues signed tokens and checks
// them on later requests. It also provisions admins.
type AuthService interface {
	// Authenticate returns a fresh token for a matching username/secret
	// pair. Unknown usernames and wrong secrets both yield
	// [ErrInvalidCredentials].
	Authenticate(ctx context.Context, username, secret string) (models.Token, error)
	// ValidateToken resolves a token to the admin it was issued for. Every
	// verification failure yields [ErrInvalidToken].
	ValidateToken(ctx context.Context, tokenString string) (int64, error)

	CreateAdmin(ctx context.Context, username, secret string) (models.Admin, error)
	DeleteAdmin(ctx context.Context, adminID int64) error
	// EnsureAdmin creates the admin unless the username already exists.
	EnsureAdmin(ctx context.Context, username, secret string) error
}

// AccessGate decides whether a privileged request may proceed.
type AccessGate interface {
	// Authorize admits a request carrying the header "Bearer <token>" and
	// returns the admin id behind the token. Any failure yields
	// [ErrUnauthenticated].
	Authorize(ctx context.Context, authorizationHeader string) (int64, error)
}

// UploadService is the ingestion boundary in front of the upload registry.
type UploadService interface {
	// RegisterBatch checks and registers every payload independently. The
	// result slice is index-aligned with payloads.
	RegisterBatch(ctx context.Context, payloads ...models.UploadPayload) []models.UploadResult
	GetUpload(ctx context.Context, id string) (models.Upload, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, productID int64, input models.ProductInput) (models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	RenameCategory(ctx context.Context, categoryID int64, input models.CategoryInput) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// AppInfoService reports what binary is running.
type AppInfoService interface {
	// GetAppVersion returns the configured version override, else the
	// version linked into the binary, else "dev".
	GetAppVersion(ctx context.Context) string
	// GetBuildInfo returns the build metadata with the version resolved as
	// by GetAppVersion.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
