package service

import (
	"fmt"

	"github.com/MKhiriev/go-market-keeper/internal/config"
	"github.com/MKhiriev/go-market-keeper/internal/crypto"
	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/store"
	"github.com/MKhiriev/go-market-keeper/models"
)

type Services struct {
	AuthService     AuthService
	AccessGate      AccessGate
	UploadService   UploadService
	ProductService  ProductService
	CategoryService CategoryService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.AdminRepository, crypto.NewBcryptHasher(cfg.App.BcryptCost), cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	return &Services{
		AuthService:     authService,
		AccessGate:      NewAccessGate(authService),
		UploadService:   NewUploadService(storages.UploadRegistry, cfg.Upload, logger),
		ProductService:  NewProductService(storages.ProductRepository, storages.UploadRegistry, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, logger),
		AppInfoService:  NewAppInfoService(cfg.App, buildInfo, logger),
	}, nil
}
