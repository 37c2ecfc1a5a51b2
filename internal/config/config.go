// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// connector-sync. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level secrets and token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local entity store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the REST API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for calls to remote connector management APIs.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SecretKey is the passphrase from which the key sealing endpoint API
	// keys at rest is derived. Must be kept confidential.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// TokenSignKey enables bearer-token authentication of the REST API when
	// set. Tokens must be HS256-signed with this key.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of API tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Storage groups the configuration for the local store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: a "postgres://" or "postgresql://" URL opens a
	// PostgreSQL connection, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound REST API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings for outbound management API calls.
type Adapter struct {
	// RequestTimeout bounds one remote call. A call exceeding it is
	// classified as a connection failure.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ListLimit is the page size sent in the QuerySpec of list calls.
	// Env: ADAPTER_LIST_LIMIT
	ListLimit int `env:"LIST_LIMIT"`
}

// Workers holds settings of background jobs run by the server binary.
type Workers struct {
	// DriftCheckInterval is the period of the background drift sweep over
	// all endpoints. Zero disables the sweep.
	// Env: WORKERS_DRIFT_CHECK_INTERVAL
	DriftCheckInterval time.Duration `env:"DRIFT_CHECK_INTERVAL"`
}

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultListLimit      = 1000
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields that are still zero after merging.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.ListLimit == 0 {
		cfg.Adapter.ListLimit = defaultListLimit
	}
}
