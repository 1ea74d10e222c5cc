// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds the token settings of the API server.
type ServerApp struct {
	TokenSignKey         string
	TokenIssuer          string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	AdminEmail           string
	AdminPassword        string
}

// ServerHTTP holds the listener settings of the API server.
type ServerHTTP struct {
	Address         string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// ServerConfig is the configuration view used by the API server.
type ServerConfig struct {
	App  ServerApp
	HTTP ServerHTTP
	// DSN is the PostgreSQL connection string.
	DSN string
}

// GetServerConfig loads the merged configuration and returns the validated
// server view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.serverConfig()
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) serverConfig() *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:         cfg.App.TokenSignKey,
			TokenIssuer:          cfg.App.TokenIssuer,
			AccessTokenDuration:  cfg.App.AccessTokenDuration,
			RefreshTokenDuration: cfg.App.RefreshTokenDuration,
			AdminEmail:           cfg.App.AdminEmail,
			AdminPassword:        cfg.App.AdminPassword,
		},
		HTTP: ServerHTTP{
			Address:         cfg.Server.HTTPAddress,
			RequestTimeout:  cfg.Server.RequestTimeout,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		DSN: cfg.Storage.DB.DSN,
	}
}
