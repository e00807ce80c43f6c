package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/store"
	"github.com/MKhiriev/go-market-keeper/models"
)

// maxListLimit caps a single product listing page.
const maxListLimit = 100

type productService struct {
	productRepository store.ProductRepository
	uploadRegistry    store.UploadRegistry

	logger *logger.Logger
}

// NewProductService returns a [ProductService] resolving product images
// through uploadRegistry.
func NewProductService(productRepository store.ProductRepository, uploadRegistry store.UploadRegistry, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		uploadRegistry:    uploadRegistry,
		logger:            logger,
	}
}

func (s *productService) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	product, err := s.fromInput(ctx, input)
	if err != nil {
		return models.Product{}, err
	}

	created, err := s.productRepository.Create(ctx, product)
	if err != nil {
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("product_id", created.ProductID).Msg("product created")
	return created, nil
}

func (s *productService) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	return s.productRepository.FindByID(ctx, productID)
}

// ListProducts clamps the page size to maxListLimit.
func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	if filter.Limit == 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	return s.productRepository.List(ctx, filter)
}

func (s *productService) UpdateProduct(ctx context.Context, productID int64, input models.ProductInput) (models.Product, error) {
	product, err := s.fromInput(ctx, input)
	if err != nil {
		return models.Product{}, err
	}
	product.ProductID = productID

	updated, err := s.productRepository.Update(ctx, product)
	if err != nil {
		return models.Product{}, fmt.Errorf("product update ended with error: %w", err)
	}

	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	return s.productRepository.Delete(ctx, productID)
}

// fromInput builds a product from input, copying the image reference out of
// the upload registry.
func (s *productService) fromInput(ctx context.Context, input models.ProductInput) (models.Product, error) {
	if input.Name == "" || input.PriceCents < 0 {
		return models.Product{}, ErrInvalidDataProvided
	}

	product := models.Product{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
	}

	if input.ImageID == "" {
		return product, nil
	}

	upload, err := s.uploadRegistry.Lookup(ctx, input.ImageID)
	if errors.Is(err, store.ErrUploadNotFound) {
		return models.Product{}, fmt.Errorf("%w: %s", ErrUnknownImage, input.ImageID)
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("error resolving image: %w", err)
	}

	product.ImageID = upload.ID
	product.ImageURL = upload.URL
	return product, nil
}
