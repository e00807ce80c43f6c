package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-market-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "test-issuer"
	testKey    = "secret-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 600, time.UTC)

	token, err := GenerateJWTToken(testIssuer, 123, now, 24*time.Hour, testKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.AdminID)
	assert.Equal(t, now.Add(24*time.Hour).Truncate(time.Second), token.ExpiresAt)

	claims := &models.TokenClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	require.NoError(t, err)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
	assert.Equal(t, models.AdminTokenKind, claims.Kind)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, time.Now(), tt.duration, tt.key)
			assert.ErrorIs(t, err, errInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	now := time.Now()
	token, err := GenerateJWTToken(testIssuer, 456, now, 5*time.Minute, testKey)
	require.NoError(t, err)

	adminID, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer, now)

	require.NoError(t, err)
	assert.Equal(t, int64(456), adminID)
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	now := time.Now()
	token, _ := GenerateJWTToken(testIssuer, 1, now, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(token.SignedString, "wrong-key", testIssuer, now)

	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued := time.Now()
	token, _ := GenerateJWTToken(testIssuer, 1, issued, 24*time.Hour, testKey)

	_, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer, issued.Add(24*time.Hour+time.Second))

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	now := time.Now()
	token, _ := GenerateJWTToken("real-issuer", 1, now, time.Hour, testKey)

	_, err := ValidateAndParseJWTToken(token.SignedString, testKey, "fake-issuer", now)

	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateAndParseJWTToken_WrongKind(t *testing.T) {
	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Kind: "customer",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testKey, testIssuer, now)

	assert.ErrorIs(t, err, errWrongTokenKind)
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer, Subject: "1"},
		Kind:             models.AdminTokenKind,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testKey, testIssuer, time.Now())

	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestValidateAndParseJWTToken_OtherAlgorithm(t *testing.T) {
	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Kind: models.AdminTokenKind,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testKey, testIssuer, now)

	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testKey, testIssuer, time.Now())

	assert.True(t, errors.Is(err, jwt.ErrTokenMalformed))
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme and space", header: "Bearer ", wantErr: true},
		{name: "lowercase scheme", header: "bearer abc", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "extra field", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBearerHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestParseAdminIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 77, time.Now(), time.Hour, testKey)
	require.NoError(t, err)

	adminID, err := ParseAdminIDFromJWT(token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(77), adminID)
}
