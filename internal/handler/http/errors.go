// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. Callers can match against them with [errors.Is].
var (
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a path identifier is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid identifier in path")

	// ErrInvalidQuery is returned for unparsable listing parameters.
	ErrInvalidQuery = errors.New("invalid query parameter")

	ErrMalformedMultipart = errors.New("malformed multipart body")
	ErrNoFiles            = errors.New("no files in `files` field")
	ErrTooManyFiles       = errors.New("too many files in one request")
	ErrRequestTooLarge    = errors.New("request body too large")
)
