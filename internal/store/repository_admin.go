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

var adminColumns = []string{"admin_id", "username", "password_hash", "created_at"}

// adminRepository is the SQL implementation of [AdminRepository] backed by
// the "admins" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by db.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new admin and returns the stored row (AdminID,
// CreatedAt filled by the database).
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *adminRepository) Create(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(admin.TableName()).
		Columns("username", "password_hash").
		Values(admin.Username, admin.PasswordHash).
		Suffix("RETURNING admin_id, username, password_hash, created_at").
		ToSql()
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAdmin(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		class := r.db.classify(err)
		log.Err(err).Str("func", "*adminRepository.Create").Stringer("class", class).Msg("error inserting admin")

		if class == UniqueViolation {
			return models.Admin{}, ErrUsernameAlreadyExists
		}
		return models.Admin{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindByUsername returns the admin with the given username.
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (models.Admin, error) {
	return r.findOne(ctx, "*adminRepository.FindByUsername", sq.Eq{"username": username})
}

// FindByID returns the admin with the given id.
func (r *adminRepository) FindByID(ctx context.Context, adminID int64) (models.Admin, error) {
	return r.findOne(ctx, "*adminRepository.FindByID", sq.Eq{"admin_id": adminID})
}

func (r *adminRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(adminColumns...).
		From(models.Admin{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	admin, err := scanAdmin(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, ErrNoAdminWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting admin")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return admin, nil
}

// Delete removes the admin with the given id.
func (r *adminRepository) Delete(ctx context.Context, adminID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Admin{}.TableName()).
		Where(sq.Eq{"admin_id": adminID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.Delete").Msg("error deleting admin")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requireAffected(result, ErrNoAdminWasFound)
}

func scanAdmin(row sq.RowScanner) (models.Admin, error) {
	var admin models.Admin
	err := row.Scan(&admin.AdminID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	return admin, err
}

// requireAffected returns notFound when result reports zero affected rows.
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
