package service

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-market-keeper/internal/config"
	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/store"
	"github.com/MKhiriev/go-market-keeper/models"
)

type uploadService struct {
	registry          store.UploadRegistry
	maxFileSize       int64
	allowedMediaTypes map[string]struct{}

	logger *logger.Logger
}

// NewUploadService returns an [UploadService] that enforces the limits from
// cfg before handing payloads to registry.
func NewUploadService(registry store.UploadRegistry, cfg config.Upload, logger *logger.Logger) UploadService {
	allowed := make(map[string]struct{}, len(cfg.AllowedMediaTypes))
	for _, mt := range cfg.AllowedMediaTypes {
		allowed[strings.ToLower(strings.TrimSpace(mt))] = struct{}{}
	}

	return &uploadService{
		registry:          registry,
		maxFileSize:       cfg.MaxFileSize,
		allowedMediaTypes: allowed,
		logger:            logger,
	}
}

// RegisterBatch registers each payload on its own; one rejected payload
// never stops its siblings.
func (s *uploadService) RegisterBatch(ctx context.Context, payloads ...models.UploadPayload) []models.UploadResult {
	log := logger.FromContext(ctx)

	results := make([]models.UploadResult, len(payloads))
	for i, payload := range payloads {
		results[i] = models.UploadResult{Filename: payload.Filename}

		upload, err := s.register(ctx, payload)
		if err != nil {
			log.Info().Err(err).Str("filename", payload.Filename).Msg("payload rejected")
			uploadsRegisteredTotal.WithLabelValues("rejected").Inc()
			results[i].Err = err
			results[i].Error = err.Error()
			continue
		}

		uploadsRegisteredTotal.WithLabelValues("registered").Inc()
		results[i].Upload = &upload
	}

	return results
}

func (s *uploadService) register(ctx context.Context, payload models.UploadPayload) (models.Upload, error) {
	if payload.DeclaredSize != int64(len(payload.Bytes)) {
		return models.Upload{}, fmt.Errorf("%w: declared %d, got %d", ErrPayloadSizeMismatch, payload.DeclaredSize, len(payload.Bytes))
	}
	if payload.DeclaredSize > s.maxFileSize {
		return models.Upload{}, fmt.Errorf("%w: %d > %d bytes", ErrPayloadTooLarge, payload.DeclaredSize, s.maxFileSize)
	}
	mediaType, err := s.checkMediaType(payload)
	if err != nil {
		return models.Upload{}, err
	}
	payload.DeclaredMediaType = mediaType

	upload, err := s.registry.Register(ctx, payload)
	if err != nil {
		return models.Upload{}, fmt.Errorf("error registering payload: %w", err)
	}

	return upload, nil
}

// checkMediaType requires the declared type to be allowed and to agree with
// the type sniffed from the content. It returns the declared type without
// parameters, lowercased.
func (s *uploadService) checkMediaType(payload models.UploadPayload) (string, error) {
	declared, _, err := mime.ParseMediaType(payload.DeclaredMediaType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, payload.DeclaredMediaType)
	}

	if _, ok := s.allowedMediaTypes[declared]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, declared)
	}

	detected := mimetype.Detect(payload.Bytes)
	if !detected.Is(declared) {
		return "", fmt.Errorf("%w: declared %q, content is %q", ErrUnsupportedMediaType, declared, detected.String())
	}

	return declared, nil
}

func (s *uploadService) GetUpload(ctx context.Context, id string) (models.Upload, error) {
	return s.registry.Lookup(ctx, id)
}
