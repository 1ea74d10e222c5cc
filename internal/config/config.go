// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the server binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the server token settings.
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`

	// Adapter holds the outbound API settings of the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	Cache Cache `envPrefix:"CACHE_"`
	Query Query `envPrefix:"QUERY_"`
	Log   Log   `envPrefix:"LOG_"`

	// StartLocation is the list location the client opens first, for
	// example "/projects?page=2&search=roof".
	StartLocation string `env:"START_LOCATION"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Env: CONFIG, flags: -c / -config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds the token settings of the API server.
type App struct {
	// TokenSignKey signs and verifies access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Env: APP_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// AdminEmail and AdminPassword seed an administrator account on server
	// start when no user with that email exists.
	// Env: APP_ADMIN_EMAIL, APP_ADMIN_PASSWORD
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	// SessionFile switches the client session persistence from SQLite to a
	// JSON file at this path.
	// Env: STORAGE_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`

	// SessionKey is a passphrase that encrypts the persisted session tokens.
	// Env: STORAGE_SESSION_KEY
	SessionKey string `env:"SESSION_KEY"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN is a SQLite file path on the client and a PostgreSQL connection
	// string on the server.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound HTTP settings of the API server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the settings of the client request pipeline.
type Adapter struct {
	// HTTPAddress is the API base URL, for example "http://localhost:8080/api".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of outbound requests per second.
	// Zero disables throttling.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Cache holds the freshness windows of the client query cache.
type Cache struct {
	// Env: CACHE_LIST_TTL
	ListTTL time.Duration `env:"LIST_TTL"`

	// Env: CACHE_STATS_TTL
	StatsTTL time.Duration `env:"STATS_TTL"`

	// SweepInterval is how often the janitor evicts old entries.
	// Env: CACHE_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// Retention is how long an entry is kept after it went stale. Stale
	// entries are returned next to a failed refetch.
	// Env: CACHE_RETENTION
	Retention time.Duration `env:"RETENTION"`
}

// Query holds the list synchronizer settings.
type Query struct {
	// Env: QUERY_SEARCH_DEBOUNCE
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE"`
}

// Log holds the logger settings.
type Log struct {
	// File overrides the client log file location.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// defaults returns the values used for every field no source provides.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          "go-inventory-keeper",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 7 * 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
			RateBurst:      1,
		},
		Cache: Cache{
			ListTTL:       5 * time.Minute,
			StatsTTL:      10 * time.Minute,
			SweepInterval: time.Minute,
			Retention:     30 * time.Minute,
		},
		Query: Query{
			SearchDebounce: 300 * time.Millisecond,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from the
// environment, the process flags, the optional config file and the defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withFile().
		withDefaults().
		build()
}
