// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SecretKey == "" {
		return ErrInvalidAppConfigs
	}
	// a sign key without issuer would accept tokens from any issuer
	if cfg.App.TokenSignKey != "" && cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.ListLimit < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.DriftCheckInterval < 0 {
		return ErrInvalidWorkersConfigs
	}

	return nil
}
