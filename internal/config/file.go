// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of the config file. The same
// keys are used for JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer" yaml:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration" yaml:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration" yaml:"refresh_token_duration"`
		AdminEmail           string   `json:"admin_email" yaml:"admin_email"`
		AdminPassword        string   `json:"admin_password" yaml:"admin_password"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
		SessionFile string `json:"session_file" yaml:"session_file"`
		SessionKey  string `json:"session_key" yaml:"session_key"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimit      float64  `json:"rate_limit" yaml:"rate_limit"`
		RateBurst      int      `json:"rate_burst" yaml:"rate_burst"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Cache struct {
		ListTTL       Duration `json:"list_ttl" yaml:"list_ttl"`
		StatsTTL      Duration `json:"stats_ttl" yaml:"stats_ttl"`
		SweepInterval Duration `json:"sweep_interval" yaml:"sweep_interval"`
		Retention     Duration `json:"retention" yaml:"retention"`
	} `json:"cache,omitempty" yaml:"cache,omitempty"`

	Query struct {
		SearchDebounce Duration `json:"search_debounce" yaml:"search_debounce"`
	} `json:"query,omitempty" yaml:"query,omitempty"`

	Log struct {
		File string `json:"file" yaml:"file"`
	} `json:"log,omitempty" yaml:"log,omitempty"`

	StartLocation string `json:"start_location" yaml:"start_location"`
}

// parseFile reads a JSON or YAML config file; the format is chosen by the
// file extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:         f.App.TokenSignKey,
			TokenIssuer:          f.App.TokenIssuer,
			AccessTokenDuration:  time.Duration(f.App.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(f.App.RefreshTokenDuration),
			AdminEmail:           f.App.AdminEmail,
			AdminPassword:        f.App.AdminPassword,
		},
		Storage: Storage{
			DB:          DB{DSN: f.Storage.DB.DSN},
			SessionFile: f.Storage.SessionFile,
			SessionKey:  f.Storage.SessionKey,
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			RateLimit:      f.Adapter.RateLimit,
			RateBurst:      f.Adapter.RateBurst,
		},
		Cache: Cache{
			ListTTL:       time.Duration(f.Cache.ListTTL),
			StatsTTL:      time.Duration(f.Cache.StatsTTL),
			SweepInterval: time.Duration(f.Cache.SweepInterval),
			Retention:     time.Duration(f.Cache.Retention),
		},
		Query:         Query{SearchDebounce: time.Duration(f.Query.SearchDebounce)},
		Log:           Log{File: f.Log.File},
		StartLocation: f.StartLocation,
	}
}

// Duration is a time.Duration read from strings like "1h" or "300ms", or
// from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}
	var nanos int64
	if err := value.Decode(&nanos); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(nanos))
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
