// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DefaultClientDSN is the SQLite database used when no DSN is configured.
const DefaultClientDSN = "inventory-keeper.db"

// ClientAdapter holds the settings of the client request pipeline.
type ClientAdapter struct {
	// BaseURL is the API base URL all endpoint paths are resolved against.
	BaseURL        string
	RequestTimeout time.Duration
	// RateLimit is in requests per second; zero disables throttling.
	RateLimit float64
	RateBurst int
}

// ClientStorage groups the client session persistence settings.
type ClientStorage struct {
	// DSN is the SQLite database path.
	DSN string
	// SessionFile, when set, selects the JSON file session store.
	SessionFile string
	// SessionKey, when set, seals the stored tokens.
	SessionKey string
}

// ClientCache holds the query cache windows.
type ClientCache struct {
	ListTTL       time.Duration
	StatsTTL      time.Duration
	SweepInterval time.Duration
	Retention     time.Duration
}

// ClientConfig is the configuration view used by the terminal client.
type ClientConfig struct {
	Adapter        ClientAdapter
	Storage        ClientStorage
	Cache          ClientCache
	SearchDebounce time.Duration
	LogFile        string
	StartLocation  string
}

// GetClientConfig loads the merged configuration and returns the validated
// client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientConfig()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientConfig() *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" && cfg.Storage.SessionFile == "" {
		dsn = DefaultClientDSN
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      cfg.Adapter.RateBurst,
		},
		Storage: ClientStorage{
			DSN:         dsn,
			SessionFile: cfg.Storage.SessionFile,
			SessionKey:  cfg.Storage.SessionKey,
		},
		Cache: ClientCache{
			ListTTL:       cfg.Cache.ListTTL,
			StatsTTL:      cfg.Cache.StatsTTL,
			SweepInterval: cfg.Cache.SweepInterval,
			Retention:     cfg.Cache.Retention,
		},
		SearchDebounce: cfg.Query.SearchDebounce,
		LogFile:        cfg.Log.File,
		StartLocation:  cfg.StartLocation,
	}
}
