// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenKind is the discriminator carried by every admin-class token.
// Tokens with any other kind are rejected during validation.
const AdminTokenKind = "admin"

// TokenClaims is the claim set of an admin token: the standard registered
// claims plus the token class discriminator.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Kind marks the token class. Only [AdminTokenKind] is accepted.
	Kind string `json:"kind"`
}

// AdminID parses the "sub" claim as a base-10 admin identifier.
func (c *TokenClaims) AdminID() (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting subject from token: %w", err)
	}

	adminID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject to admin id: %w", err)
	}

	return adminID, nil
}

// Token is the result of a successful login.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// ExpiresAt is the instant after which the token stops validating.
	ExpiresAt time.Time `json:"expires_at"`

	// AdminID is the subject the token was issued for.
	AdminID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
