// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// applyDefaults fills the fields that have a sensible default and were left
// empty by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
