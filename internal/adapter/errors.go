package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable request")
	ErrTooLarge            = errors.New("request too large")
	ErrInternalServerError = errors.New("internal server error")

	ErrPartialUpload = errors.New("some files were not uploaded")
	ErrEmptyAddress  = errors.New("empty server address")
)
