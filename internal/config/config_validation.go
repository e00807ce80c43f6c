// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the merged [StructuredConfig] satisfies the server's
// invariants. A missing token sign key is replaced with [DevTokenSignKey]
// outside production and rejected in production.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		if cfg.App.IsProduction() {
			return ErrMissingTokenSignKey
		}
		cfg.App.TokenSignKey = DevTokenSignKey
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token duration and issuer are required", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if (cfg.App.AdminUsername == "") != (cfg.App.AdminPassword == "") {
		return fmt.Errorf("%w: admin username and password must be set together", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Upload.MaxFileSize <= 0 || cfg.Upload.MaxFiles <= 0 || len(cfg.Upload.AllowedMediaTypes) == 0 {
		return ErrInvalidUploadConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" || cfg.Timeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
