package store

import (
	"context"

	"github.com/MKhiriev/go-market-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AdminRepository persists admin principals.
type AdminRepository interface {
	// Create inserts admin and returns it with server-assigned fields.
	// A taken username returns [ErrUsernameAlreadyExists].
	Create(ctx context.Context, admin models.Admin) (models.Admin, error)
	// FindByUsername returns [ErrNoAdminWasFound] when absent.
	FindByUsername(ctx context.Context, username string) (models.Admin, error)
	// FindByID returns [ErrNoAdminWasFound] when absent.
	FindByID(ctx context.Context, adminID int64) (models.Admin, error)
	// Delete returns [ErrNoAdminWasFound] when absent.
	Delete(ctx context.Context, adminID int64) error
}

// ProductRepository persists catalogue products.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	FindByID(ctx context.Context, productID int64) (models.Product, error)
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, productID int64) error
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	Create(ctx context.Context, name string) (models.Category, error)
	FindByID(ctx context.Context, categoryID int64) (models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Rename(ctx context.Context, categoryID int64, name string) (models.Category, error)
	Delete(ctx context.Context, categoryID int64) error
}

// UploadRegistry mints identifiers and retrievable references for binary
// payloads. Records are immutable once registered.
type UploadRegistry interface {
	// Register stores payload and returns its record. It fails with
	// [ErrRegistrationFailed] when the media type is unparsable or no
	// identifier can be minted.
	Register(ctx context.Context, payload models.UploadPayload) (models.Upload, error)
	// Lookup returns the record for id or [ErrUploadNotFound].
	Lookup(ctx context.Context, id string) (models.Upload, error)
}
