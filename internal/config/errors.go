package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate].
var (
	// ErrMissingTokenSignKey is returned when a production configuration
	// does not provide a token signing key.
	ErrMissingTokenSignKey = errors.New("token sign key is required in production")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unsupported database driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no transport address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUploadConfigs indicates invalid ingestion limits.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidClientConfigs indicates invalid admin client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
