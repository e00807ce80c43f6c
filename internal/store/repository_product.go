package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/models"
)

const productReturning = "RETURNING product_id, category_id, name, description, price_cents, image_id, image_url, created_at, updated_at"

var productColumns = []string{
	"product_id", "category_id", "name", "description", "price_cents",
	"image_id", "image_url", "created_at", "updated_at",
}

type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) Create(ctx context.Context, product models.Product) (models.Product, error) {
	query, args, err := r.db.builder.
		Insert(product.TableName()).
		Columns("category_id", "name", "description", "price_cents", "image_id", "image_url").
		Values(product.CategoryID, product.Name, product.Description, product.PriceCents, product.ImageID, product.ImageURL).
		Suffix(productReturning).
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Product{}, r.writeError(ctx, "*productRepository.Create", err)
	}

	return created, nil
}

func (r *productRepository) FindByID(ctx context.Context, productID int64) (models.Product, error) {
	query, args, err := r.db.builder.
		Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.FindByID").Msg("error selecting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return product, nil
}

// List returns products ordered by id, narrowed by filter. A zero Limit
// means no limit.
func (r *productRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(productColumns...).
		From(models.Product{}.TableName()).
		OrderBy("product_id")
	if filter.CategoryID != nil {
		builder = builder.Where(sq.Eq{"category_id": *filter.CategoryID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.List").Msg("error selecting products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// Update overwrites every mutable column of the product and bumps updated_at.
func (r *productRepository) Update(ctx context.Context, product models.Product) (models.Product, error) {
	query, args, err := r.db.builder.
		Update(product.TableName()).
		SetMap(map[string]any{
			"category_id": product.CategoryID,
			"name":        product.Name,
			"description": product.Description,
			"price_cents": product.PriceCents,
			"image_id":    product.ImageID,
			"image_url":   product.ImageURL,
			"updated_at":  sq.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(sq.Eq{"product_id": product.ProductID}).
		Suffix(productReturning).
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, r.writeError(ctx, "*productRepository.Update", err)
	}

	return updated, nil
}

func (r *productRepository) Delete(ctx context.Context, productID int64) error {
	query, args, err := r.db.builder.
		Delete(models.Product{}.TableName()).
		Where(sq.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.Delete").Msg("error deleting product")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requireAffected(result, ErrProductNotFound)
}

func (r *productRepository) writeError(ctx context.Context, funcName string, err error) error {
	class := r.db.classify(err)
	logger.FromContext(ctx).Err(err).Str("func", funcName).Stringer("class", class).Msg("error writing product")

	if class == ForeignKeyViolation {
		return ErrUnknownCategory
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func scanProduct(row sq.RowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ProductID, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents,
		&p.ImageID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
