// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"
)

// errNotDataURI is returned by [Upload.Content] when the stored reference is
// not a base64 data URI.
var errNotDataURI = errors.New("reference is not a base64 data URI")

// UploadPayload is a labeled binary payload submitted for registration.
//
// DeclaredSize is expected to equal len(Bytes). The ingestion boundary checks
// that before the payload reaches the registry.
type UploadPayload struct {
	Bytes             []byte
	Filename          string
	DeclaredSize      int64
	DeclaredMediaType string
}

// Upload is an immutable record of one registered payload.
type Upload struct {
	// ID is a 32-character hexadecimal identifier minted from 128 random bits.
	ID string `json:"id"`

	// Filename is the original filename supplied by the client.
	Filename string `json:"filename"`

	// Size is the payload length in bytes.
	Size int64 `json:"size"`

	// MediaType is the declared media type.
	MediaType string `json:"media_type"`

	// URL is the self-contained retrievable representation of the content:
	// a data URI combining media type and base64 content.
	URL string `json:"url"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Content decodes the payload bytes back out of the data URI.
func (u Upload) Content() ([]byte, error) {
	_, encoded, ok := strings.Cut(u.URL, ";base64,")
	if !ok || !strings.HasPrefix(u.URL, "data:") {
		return nil, errNotDataURI
	}

	return base64.StdEncoding.DecodeString(encoded)
}

// UploadResult is the per-payload outcome of a batch registration.
// Exactly one of Upload and Error is set.
type UploadResult struct {
	Filename string  `json:"filename"`
	Upload   *Upload `json:"upload,omitempty"`
	Error    string  `json:"error,omitempty"`

	// Err keeps the typed failure for callers that need [errors.Is].
	Err error `json:"-"`
}

// OK reports whether the payload was registered.
func (r UploadResult) OK() bool {
	return r.Err == nil && r.Upload != nil
}
