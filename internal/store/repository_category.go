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

const categoriesTable = "categories"

type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by db.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) Create(ctx context.Context, name string) (models.Category, error) {
	query, args, err := r.db.builder.
		Insert(categoriesTable).
		Columns("name").
		Values(name).
		Suffix("RETURNING category_id, name, created_at").
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Category{}, r.writeError(ctx, "*categoryRepository.Create", err)
	}

	return category, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, categoryID int64) (models.Category, error) {
	query, args, err := r.db.builder.
		Select("category_id", "name", "created_at").
		From(categoriesTable).
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.FindByID").Msg("error selecting category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query, args, err := r.db.builder.
		Select("category_id", "name", "created_at").
		From(categoriesTable).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.List").Msg("error selecting categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *categoryRepository) Rename(ctx context.Context, categoryID int64, name string) (models.Category, error) {
	query, args, err := r.db.builder.
		Update(categoriesTable).
		Set("name", name).
		Where(sq.Eq{"category_id": categoryID}).
		Suffix("RETURNING category_id, name, created_at").
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, r.writeError(ctx, "*categoryRepository.Rename", err)
	}

	return category, nil
}

// Delete removes the category. Products referencing it keep existing with
// no category.
func (r *categoryRepository) Delete(ctx context.Context, categoryID int64) error {
	query, args, err := r.db.builder.
		Delete(categoriesTable).
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.Delete").Msg("error deleting category")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requireAffected(result, ErrCategoryNotFound)
}

func (r *categoryRepository) writeError(ctx context.Context, funcName string, err error) error {
	class := r.db.classify(err)
	logger.FromContext(ctx).Err(err).Str("func", funcName).Stringer("class", class).Msg("error writing category")

	if class == UniqueViolation {
		return ErrCategoryAlreadyExists
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func scanCategory(row sq.RowScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.CategoryID, &c.Name, &c.CreatedAt)
	return c, err
}
