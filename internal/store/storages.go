package store

import "github.com/MKhiriev/go-market-keeper/internal/logger"

// Storages aggregates every persistence component the services depend on.
type Storages struct {
	AdminRepository    AdminRepository
	ProductRepository  ProductRepository
	CategoryRepository CategoryRepository
	UploadRegistry     UploadRegistry
}

// NewStorages wires SQL repositories on db together with an in-memory
// upload registry.
func NewStorages(db *DB, registry UploadRegistry, log *logger.Logger) *Storages {
	return &Storages{
		AdminRepository:    NewAdminRepository(db, log),
		ProductRepository:  NewProductRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
		UploadRegistry:     registry,
	}
}
