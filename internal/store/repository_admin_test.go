package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/models"
)

func newTestAdminRepo(t *testing.T) (AdminRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewAdminRepository(db, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var adminRowColumns = []string{"admin_id", "username", "password_hash", "created_at"}

func TestAdminCreate_Success(t *testing.T) {
	repo, mock := newTestAdminRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO admins \(username,password_hash\) VALUES \(\$1,\$2\) RETURNING`).
		WithArgs("admin", "hash").
		WillReturnRows(sqlmock.NewRows(adminRowColumns).AddRow(1, "admin", "hash", now))

	created, err := repo.Create(context.Background(), models.Admin{Username: "admin", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.AdminID != 1 {
		t.Errorf("expected AdminID=1, got %d", created.AdminID)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, created.CreatedAt)
	}
}

func TestAdminCreate_UniqueViolation(t *testing.T) {
	repo, mock := newTestAdminRepo(t)

	mock.ExpectQuery("INSERT INTO admins").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.Admin{Username: "admin"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestAdminCreate_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestAdminRepo(t)

	mock.ExpectQuery("INSERT INTO admins").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), models.Admin{Username: "admin"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestAdminFindByUsername_Found(t *testing.T) {
	repo, mock := newTestAdminRepo(t)

	mock.ExpectQuery(`SELECT admin_id, username, password_hash, created_at FROM admins WHERE username = \$1`).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(adminRowColumns).AddRow(7, "admin", "hash", time.Now()))

	admin, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.AdminID != 7 || admin.PasswordHash != "hash" {
		t.Errorf("unexpected admin: %+v", admin)
	}
}

func TestAdminFindByUsername_NotFound(t *testing.T) {
	repo, mock := newTestAdminRepo(t)

	mock.ExpectQuery("SELECT .* FROM admins").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNoAdminWasFound) {
		t.Fatalf("expected ErrNoAdminWasFound, got %v", err)
	}
}

func TestAdminFindByID_EmptyResult(t *testing.T) {
	repo, mock := newTestAdminRepo(t)

	mock.ExpectQuery(`SELECT .* FROM admins WHERE admin_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(adminRowColumns))

	_, err := repo.FindByID(context.Background(), 3)
	if !errors.Is(err, ErrNoAdminWasFound) {
		t.Fatalf("expected ErrNoAdminWasFound, got %v", err)
	}
}

func TestAdminFindByID_DBError(t *testing.T) {
	repo, mock := newTestAdminRepo(t)

	mock.ExpectQuery("SELECT .* FROM admins").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByID(context.Background(), 3)
	if !errors.Is(err, ErrExecutingQuery) || errors.Is(err, ErrNoAdminWasFound) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestAdminDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		want     error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, want: ErrNoAdminWasFound},
		{name: "db error", execErr: errors.New("boom"), want: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAdminRepo(t)

			exp := mock.ExpectExec(`DELETE FROM admins WHERE admin_id = \$1`).WithArgs(int64(5))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.Delete(context.Background(), 5)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
