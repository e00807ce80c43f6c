package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-market-keeper/internal/config"
	"github.com/MKhiriev/go-market-keeper/internal/crypto"
	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/mock"
	"github.com/MKhiriev/go-market-keeper/internal/store"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/models"
)

const testSignKey = "test-sign-key"

var testAppConfig = config.App{
	TokenSignKey:  testSignKey,
	TokenIssuer:   "go-market-keeper",
	TokenDuration: 24 * time.Hour,
}

// newTestAuthSvc builds an authService with a mocked repository, a real
// bcrypt hasher at minimum cost and a fixed clock.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller, now time.Time) (*authService, *mock.MockAdminRepository, crypto.PasswordHasher) {
	t.Helper()

	repo := mock.NewMockAdminRepository(ctrl)
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)

	authSvc, err := NewAuthService(repo, hasher, testAppConfig, logger.Nop())
	require.NoError(t, err)
	svc := authSvc.(*authService)
	svc.now = func() time.Time { return now }

	return svc, repo, hasher
}

func storedAdmin(t *testing.T, hasher crypto.PasswordHasher, id int64, username, secret string) models.Admin {
	t.Helper()
	hash, err := hasher.Hash(secret)
	require.NoError(t, err)
	return models.Admin{AdminID: id, Username: username, PasswordHash: hash}
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, repo, hasher := newTestAuthSvc(t, ctrl, now)
	ctx := context.Background()

	admin := storedAdmin(t, hasher, 42, "admin", "correct-secret")
	repo.EXPECT().FindByUsername(ctx, "admin").Return(admin, nil)

	token, err := svc.Authenticate(ctx, "admin", "correct-secret")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.AdminID)
	assert.Equal(t, now.Add(24*time.Hour), token.ExpiresAt.UTC())

	// the token validates back to the same admin
	repo.EXPECT().FindByID(ctx, int64(42)).Return(admin, nil)
	adminID, err := svc.ValidateToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), adminID)
}

func TestAuthService_Authenticate_FreshSignatureEachCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, repo, hasher := newTestAuthSvc(t, ctrl, now)
	ctx := context.Background()

	admin := storedAdmin(t, hasher, 1, "admin", "correct-secret")
	repo.EXPECT().FindByUsername(ctx, "admin").Return(admin, nil).Times(2)

	first, err := svc.Authenticate(ctx, "admin", "correct-secret")
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(time.Second) }
	second, err := svc.Authenticate(ctx, "admin", "correct-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first.SignedString, second.SignedString)
}

func TestAuthService_Authenticate_UniformFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl, time.Now())
	ctx := context.Background()

	admin := storedAdmin(t, hasher, 1, "admin", "correct-secret")
	repo.EXPECT().FindByUsername(ctx, "admin").Return(admin, nil)
	repo.EXPECT().FindByUsername(ctx, "ghost").Return(models.Admin{}, store.ErrNoAdminWasFound)

	_, wrongSecret := svc.Authenticate(ctx, "admin", "wrong-secret")
	_, noSuchUser := svc.Authenticate(ctx, "ghost", "correct-secret")

	assert.ErrorIs(t, wrongSecret, ErrInvalidCredentials)
	assert.ErrorIs(t, noSuchUser, ErrInvalidCredentials)
	assert.Equal(t, wrongSecret.Error(), noSuchUser.Error())
}

func TestAuthService_Authenticate_UnknownUserStillCompares(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAdminRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Hash(dummySecret).Return("$2a$dummy", nil).Times(1)
	svc, err := NewAuthService(repo, hasher, testAppConfig, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	repo.EXPECT().FindByUsername(ctx, "ghost").Return(models.Admin{}, store.ErrNoAdminWasFound).Times(2)
	hasher.EXPECT().Compare("$2a$dummy", "secret").Return(crypto.ErrMismatchedPassword).Times(2)

	for range 2 {
		_, err := svc.Authenticate(ctx, "ghost", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestNewAuthService_DummyHashFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAdminRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	hashErr := errors.New("entropy exhausted")
	hasher.EXPECT().Hash(dummySecret).Return("", hashErr)

	svc, err := NewAuthService(repo, hasher, testAppConfig, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, hashErr)
}

func TestAuthService_Authenticate_UnknownUserComparesAgainstRealHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl, time.Now())

	cost, err := bcrypt.Cost([]byte(svc.dummyHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	repo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(models.Admin{}, store.ErrNoAdminWasFound)
	_, err = svc.Authenticate(context.Background(), "ghost", dummySecret+"x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl, time.Now())

	_, err := svc.Authenticate(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Authenticate(context.Background(), "admin", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Authenticate_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl, time.Now())
	storeErr := errors.New("connection refused")

	repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(models.Admin{}, storeErr)

	_, err := svc.Authenticate(context.Background(), "admin", "secret")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── ValidateToken ────────────────────────────────────────────────────────────

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestAuthSvc(t, ctrl, issued)

	token, err := svc.tokenFor(42)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(24 * time.Hour) }
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	svc.now = func() time.Time { return issued.Add(48 * time.Hour) }
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ValidateToken_JustBeforeExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestAuthSvc(t, ctrl, issued)

	token, err := svc.tokenFor(42)
	require.NoError(t, err)

	repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(models.Admin{AdminID: 42}, nil)
	svc.now = func() time.Time { return issued.Add(24*time.Hour - time.Second) }
	adminID, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), adminID)
}

func TestAuthService_ValidateToken_OtherSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Now()
	svc, _, _ := newTestAuthSvc(t, ctrl, now)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testAppConfig.TokenIssuer,
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Kind: models.AdminTokenKind,
	}).SignedString([]byte("some-other-key"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ValidateToken_WrongKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Now()
	svc, _, _ := newTestAuthSvc(t, ctrl, now)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testAppConfig.TokenIssuer,
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Kind: "customer",
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ValidateToken_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl, time.Now())

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}

func TestAuthService_ValidateToken_DeletedAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl, time.Now())
	ctx := context.Background()

	admin := storedAdmin(t, hasher, 7, "admin", "correct-secret")
	repo.EXPECT().FindByUsername(ctx, "admin").Return(admin, nil)

	token, err := svc.Authenticate(ctx, "admin", "correct-secret")
	require.NoError(t, err)

	gomock.InOrder(
		repo.EXPECT().FindByID(ctx, int64(7)).Return(admin, nil),
		repo.EXPECT().Delete(ctx, int64(7)).Return(nil),
		repo.EXPECT().FindByID(ctx, int64(7)).Return(models.Admin{}, store.ErrNoAdminWasFound),
	)

	_, err = svc.ValidateToken(ctx, token.SignedString)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdmin(ctx, 7))

	_, err = svc.ValidateToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ValidateToken_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl, time.Now())
	storeErr := errors.New("connection refused")

	token, err := svc.tokenFor(3)
	require.NoError(t, err)

	repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(models.Admin{}, storeErr)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, storeErr)
}

// ── provisioning ─────────────────────────────────────────────────────────────

func TestAuthService_CreateAdmin_HashesSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl, time.Now())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Admin) (models.Admin, error) {
			assert.Equal(t, "admin", a.Username)
			assert.NotEqual(t, "correct-secret", a.PasswordHash)
			assert.NoError(t, hasher.Compare(a.PasswordHash, "correct-secret"))
			a.AdminID = 1
			return a, nil
		},
	)

	admin, err := svc.CreateAdmin(context.Background(), "admin", "correct-secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), admin.AdminID)
}

func TestAuthService_CreateAdmin_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl, time.Now())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Admin{}, store.ErrUsernameAlreadyExists)

	_, err := svc.CreateAdmin(context.Background(), "admin", "secret")
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_CreateAdmin_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl, time.Now())

	_, err := svc.CreateAdmin(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _ := newTestAuthSvc(t, ctrl, time.Now())

		repo.EXPECT().FindByUsername(ctx, "admin").Return(models.Admin{AdminID: 1}, nil)
		assert.NoError(t, svc.EnsureAdmin(ctx, "admin", "secret"))
	})

	t.Run("absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _ := newTestAuthSvc(t, ctrl, time.Now())

		repo.EXPECT().FindByUsername(ctx, "admin").Return(models.Admin{}, store.ErrNoAdminWasFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(models.Admin{AdminID: 1, Username: "admin"}, nil)
		assert.NoError(t, svc.EnsureAdmin(ctx, "admin", "secret"))
	})

	t.Run("created concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _ := newTestAuthSvc(t, ctrl, time.Now())

		repo.EXPECT().FindByUsername(ctx, "admin").Return(models.Admin{}, store.ErrNoAdminWasFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(models.Admin{}, store.ErrUsernameAlreadyExists)
		assert.NoError(t, svc.EnsureAdmin(ctx, "admin", "secret"))
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _ := newTestAuthSvc(t, ctrl, time.Now())

		repo.EXPECT().FindByUsername(ctx, "admin").Return(models.Admin{}, errors.New("down"))
		assert.Error(t, svc.EnsureAdmin(ctx, "admin", "secret"))
	})
}

// tokenFor signs a token for adminID at the service's current clock.
func (a *authService) tokenFor(adminID int64) (string, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, adminID, a.now(), a.tokenDuration, a.tokenSignKey)
	return token.SignedString, err
}
