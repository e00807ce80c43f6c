// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/models"
)

// uploadRegistry is the in-memory implementation of [UploadRegistry].
// Records live for the lifetime of the process; there is no eviction.
type uploadRegistry struct {
	mu      sync.RWMutex
	uploads map[string]models.Upload

	random io.Reader
	now    func() time.Time
}

// RegistryOption customises an upload registry.
type RegistryOption func(*uploadRegistry)

// WithRandomSource replaces crypto/rand.Reader as the identifier source.
func WithRandomSource(r io.Reader) RegistryOption {
	return func(u *uploadRegistry) {
		u.random = r
	}
}

// WithClock replaces time.Now for CreatedAt stamps.
func WithClock(now func() time.Time) RegistryOption {
	return func(u *uploadRegistry) {
		u.now = now
	}
}

// NewUploadRegistry returns an empty in-memory [UploadRegistry].
func NewUploadRegistry(opts ...RegistryOption) UploadRegistry {
	r := &uploadRegistry{
		uploads: make(map[string]models.Upload),
		random:  rand.Reader,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register mints a fresh identifier for payload and stores its data URI.
// Identical payloads registered twice get two distinct records.
func (r *uploadRegistry) Register(ctx context.Context, payload models.UploadPayload) (models.Upload, error) {
	log := logger.FromContext(ctx)

	if _, _, err := mime.ParseMediaType(payload.DeclaredMediaType); err != nil {
		log.Warn().Err(err).Str("func", "*uploadRegistry.Register").
			Str("media_type", payload.DeclaredMediaType).Msg("unparsable media type")
		return models.Upload{}, fmt.Errorf("%w: media type %q: %w", ErrRegistrationFailed, payload.DeclaredMediaType, err)
	}

	id, err := utils.NewHexID(r.random)
	if err != nil {
		log.Err(err).Str("func", "*uploadRegistry.Register").Msg("error minting upload id")
		return models.Upload{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	upload := models.Upload{
		ID:        id,
		Filename:  payload.Filename,
		Size:      int64(len(payload.Bytes)),
		MediaType: payload.DeclaredMediaType,
		URL:       dataURI(payload.DeclaredMediaType, payload.Bytes),
		CreatedAt: r.now().UTC(),
	}

	r.mu.Lock()
	r.uploads[id] = upload
	r.mu.Unlock()

	log.Debug().Str("upload_id", id).Int64("size", upload.Size).Msg("upload registered")
	return upload, nil
}

// Lookup returns the record registered under id.
func (r *uploadRegistry) Lookup(_ context.Context, id string) (models.Upload, error) {
	r.mu.RLock()
	upload, ok := r.uploads[id]
	r.mu.RUnlock()

	if !ok {
		return models.Upload{}, ErrUploadNotFound
	}

	return upload, nil
}

func dataURI(mediaType string, content []byte) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mediaType) + base64.StdEncoding.EncodedLen(len(content)))
	b.WriteString("data:")
	b.WriteString(mediaType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(content))
	return b.String()
}
