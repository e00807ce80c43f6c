package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-market-keeper/internal/config"
	"github.com/MKhiriev/go-market-keeper/internal/crypto"
	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/store"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/models"
)

// dummySecret is hashed at construction and compared against when a username
// is unknown, so both credential failures spend the same bcrypt work.
const dummySecret = "go-market-keeper-dummy-secret"

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes held by the AdminRepository
// and issues HS256 tokens.
type authService struct {
	// adminRepository is the data-access layer used to look up admins.
	adminRepository store.AdminRepository

	// hasher hashes and compares admin secrets.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuance and expiry checks.
	now func() time.Time

	// dummyHash is a hash of dummySecret at the hasher's cost.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and hasher and populated with token parameters from cfg.
//
// It fails when the dummy secret cannot be hashed: without that hash unknown
// usernames would be rejected faster than wrong secrets.
//
// The returned service is safe for concurrent use.
func NewAuthService(adminRepository store.AdminRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := hasher.Hash(dummySecret)
	if err != nil {
		return nil, fmt.Errorf("error hashing dummy secret: %w", err)
	}

	return &authService{
		adminRepository: adminRepository,
		hasher:          hasher,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		now:             time.Now,
		dummyHash:       dummyHash,
		logger:          logger,
	}, nil
}

// Authenticate verifies username and secret and issues a token valid for
// the configured duration.
//
// Returns:
//   - ErrInvalidDataProvided if username or secret is empty.
//   - ErrInvalidCredentials if the admin is unknown or the secret is wrong.
//   - a wrapped store error if the lookup itself failed.
//   - ErrTokenCreationFailed if signing failed.
func (a *authService) Authenticate(ctx context.Context, username, secret string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || secret == "" {
		authAttemptsTotal.WithLabelValues("invalid").Inc()
		return models.Token{}, ErrInvalidDataProvided
	}

	admin, err := a.adminRepository.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrNoAdminWasFound) {
		// spend the same work as a real comparison
		_ = a.hasher.Compare(a.dummyHash, secret)
		log.Info().Str("func", "*authService.Authenticate").Msg("login failed")
		authAttemptsTotal.WithLabelValues("invalid").Inc()
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("admin search by username failed")
		authAttemptsTotal.WithLabelValues("error").Inc()
		return models.Token{}, fmt.Errorf("admin search by username failed: %w", err)
	}

	if err := a.hasher.Compare(admin.PasswordHash, secret); err != nil {
		log.Info().Err(err).Str("func", "*authService.Authenticate").Msg("login failed")
		authAttemptsTotal.WithLabelValues("invalid").Inc()
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, admin.AdminID, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("error signing token")
		authAttemptsTotal.WithLabelValues("error").Inc()
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	authAttemptsTotal.WithLabelValues("success").Inc()
	log.Info().Int64("admin_id", admin.AdminID).Time("expires_at", token.ExpiresAt).Msg("admin logged in")
	return token, nil
}

// ValidateToken verifies tokenString and re-checks that its subject still
// exists, so deleted admins lose access on their next request.
//
// Every verification failure, including an absent subject, returns
// ErrInvalidToken. Store failures other than "not found" are wrapped and
// returned as they are.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (int64, error) {
	log := logger.FromContext(ctx)

	adminID, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ValidateToken").Msg("token rejected")
		return 0, ErrInvalidToken
	}

	if _, err := a.adminRepository.FindByID(ctx, adminID); err != nil {
		if errors.Is(err, store.ErrNoAdminWasFound) {
			log.Info().Int64("admin_id", adminID).Msg("token subject no longer exists")
			return 0, ErrInvalidToken
		}
		log.Err(err).Str("func", "*authService.ValidateToken").Msg("admin search by id failed")
		return 0, fmt.Errorf("admin search by id failed: %w", err)
	}

	return adminID, nil
}

// CreateAdmin hashes secret and stores a new admin.
func (a *authService) CreateAdmin(ctx context.Context, username, secret string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if username == "" || secret == "" {
		return models.Admin{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(secret)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.Admin{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.Admin{}, fmt.Errorf("error hashing secret: %w", err)
	}

	admin, err := a.adminRepository.Create(ctx, models.Admin{Username: username, PasswordHash: hash})
	if err != nil {
		log.Err(err).Str("username", username).Msg("admin creation ended with error")
		return models.Admin{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	log.Info().Int64("admin_id", admin.AdminID).Str("username", admin.Username).Msg("admin created")
	return admin, nil
}

// DeleteAdmin removes the admin. Tokens issued to it stop validating.
func (a *authService) DeleteAdmin(ctx context.Context, adminID int64) error {
	if err := a.adminRepository.Delete(ctx, adminID); err != nil {
		return fmt.Errorf("admin deletion ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("admin_id", adminID).Msg("admin deleted")
	return nil
}

// EnsureAdmin seeds the admin at startup when it does not exist yet.
func (a *authService) EnsureAdmin(ctx context.Context, username, secret string) error {
	_, err := a.adminRepository.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoAdminWasFound) {
		return fmt.Errorf("admin search by username failed: %w", err)
	}

	_, err = a.CreateAdmin(ctx, username, secret)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		// created concurrently by another instance
		return nil
	}

	return err
}
