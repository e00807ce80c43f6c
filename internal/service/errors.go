package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// secret.
	ErrInvalidCredentials = errors.New("invalid username/password")

	// ErrInvalidToken covers every token verification failure: malformed,
	// bad signature, wrong issuer or kind, expired, deleted subject.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthenticated is the only rejection the access gate reports.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Upload ingestion errors, reported per payload.
var (
	ErrPayloadSizeMismatch  = errors.New("declared size does not match payload length")
	ErrPayloadTooLarge      = errors.New("payload exceeds the size limit")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// Catalogue errors.
var (
	// ErrUnknownImage is returned when a product references an image id the
	// upload registry never issued.
	ErrUnknownImage = errors.New("unknown image id")
)
