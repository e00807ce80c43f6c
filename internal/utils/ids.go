// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// hexIDBytes is the number of random bytes behind every hex identifier.
const hexIDBytes = 16

// NewTraceID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the v7 generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewHexID reads 128 bits from source and renders them as a 32-character
// lowercase hexadecimal string. Uniqueness is probabilistic; callers pass
// crypto/rand.Reader in production.
func NewHexID(source io.Reader) (string, error) {
	buf := make([]byte, hexIDBytes)
	if _, err := io.ReadFull(source, buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
