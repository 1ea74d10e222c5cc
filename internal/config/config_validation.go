// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.BaseURL)
	if cfg.Adapter.BaseURL == "" || err != nil || u.Host == "" {
		return fmt.Errorf("%w: bad API address %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RateLimit < 0 || cfg.Adapter.RateBurst < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DSN == "" && cfg.Storage.SessionFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Cache.ListTTL <= 0 || cfg.Cache.StatsTTL <= 0 || cfg.Cache.SweepInterval <= 0 || cfg.Cache.Retention < 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.SearchDebounce <= 0 {
		return ErrInvalidQueryConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" ||
		cfg.App.AccessTokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if (cfg.App.AdminEmail == "") != (cfg.App.AdminPassword == "") {
		return ErrInvalidAppConfigs
	}

	if cfg.HTTP.Address == "" || cfg.HTTP.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
