// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// DevTokenSignKey is the fixed signing key used when no key is configured
// outside production. Tokens signed with it are worthless anywhere else.
const DevTokenSignKey = "go-market-keeper-development-sign-key"

const (
	defaultTokenIssuer    = "go-market-keeper"
	defaultTokenDuration  = 24 * time.Hour
	defaultBcryptCost     = 10
	defaultDBDriver       = DriverPostgres
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxFileSize    = 5 << 20
	defaultMaxFiles       = 10
	defaultClientBaseURL  = "http://localhost:8080"
	defaultClientTimeout  = 15 * time.Second
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaultAllowedMediaTypes are the image types accepted for product pictures.
var defaultAllowedMediaTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
			LogLevel:      "info",
		},
		Storage: Storage{
			DB: DB{Driver: defaultDBDriver},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Upload: Upload{
			MaxFileSize:       defaultMaxFileSize,
			MaxFiles:          defaultMaxFiles,
			AllowedMediaTypes: append([]string(nil), defaultAllowedMediaTypes...),
		},
		Client: Client{
			BaseURL: defaultClientBaseURL,
			Timeout: defaultClientTimeout,
		},
	}
}
