package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-market-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// bearerPrefix is the literal scheme prefix of a bearer Authorization header.
const bearerPrefix = "Bearer "

var (
	errInvalidTokenParams = errors.New("invalid params for generating JWT token")
	errWrongTokenKind     = errors.New("token is not an admin token")
	errEmptySubject       = errors.New("empty subject error")

	// ErrInvalidBearerHeader is returned by [ParseBearerToken] when the header
	// is not of the literal form "Bearer <token>".
	ErrInvalidBearerHeader = errors.New("invalid bearer authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 admin token.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the admin ID encoded as a string
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//   - Kind     (kind): [models.AdminTokenKind]
//
// The returned ExpiresAt carries the same second precision as the exp claim.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("market", 42, time.Now(), 24*time.Hour, "secret")
func GenerateJWTToken(issuer string, adminID int64, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errInvalidTokenParams
	}

	expiresAt := jwt.NewNumericDate(issuedAt.Add(tokenDuration))
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(adminID, 10),
			ExpiresAt: expiresAt,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
		Kind: models.AdminTokenKind,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		ExpiresAt:    expiresAt.Time,
		AdminID:      adminID,
	}, nil
}

// ValidateAndParseJWTToken validates the given token string at instant now
// and returns the admin ID from its subject.
//
// Validation includes:
//   - HS256 signature verification with tokenSignKey (other algorithms are rejected)
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) presence and check against now
//   - Kind discriminator equal to [models.AdminTokenKind]
//   - Subject (sub) presence and conversion to int64
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (int64, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return 0, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Kind != models.AdminTokenKind {
		return 0, errWrongTokenKind
	}
	if claims.Subject == "" {
		return 0, errEmptySubject
	}

	return claims.AdminID()
}

// ParseBearerToken extracts the token from an Authorization header value of
// the literal form "Bearer <token>". The scheme is case-sensitive and the
// token must be a single non-empty field.
func ParseBearerToken(authorizationHeader string) (string, error) {
	tokenString, ok := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !ok || tokenString == "" || strings.ContainsAny(tokenString, " \t") {
		return "", ErrInvalidBearerHeader
	}

	return tokenString, nil
}

// ParseAdminIDFromJWT reads the subject of a token without verifying it.
// Only clients use it, to display who they are logged in as.
func ParseAdminIDFromJWT(tokenString string) (int64, error) {
	claims := &models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return 0, err
	}

	return claims.AdminID()
}
