// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flags", RateBurst: 3}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3, cfg.Adapter.RateBurst)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Cache: Cache{ListTTL: time.Minute}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Cache.ListTTL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.StatsTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.Query.SearchDebounce)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://api.local")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://api.local", b.configs[0].Adapter.HTTPAddress)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("CACHE_LIST_TTL", "five minutes")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "http://flags.local"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://flags.local", b.configs[0].Adapter.HTTPAddress)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withFile())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsJSONConfig(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"adapter": {"http_address": "http://json"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://json", b.configs[1].Adapter.HTTPAddress)
}

func TestWithFile_FirstPathWins(t *testing.T) {
	first := writeTempConfig(t, "first.yaml", "start_location: /clients\n")
	second := writeTempConfig(t, "second.yaml", "start_location: /tasks\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{},
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: second},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "/clients", b.configs[3].StartLocation)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestClientConfig_DefaultsAreValid(t *testing.T) {
	cfg := defaults().clientConfig()

	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultClientDSN, cfg.Storage.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ListTTL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.StatsTTL)
}

func TestClientConfig_SessionFileReplacesDefaultDSN(t *testing.T) {
	sc := defaults()
	sc.Storage.SessionFile = "/tmp/session.json"

	cfg := sc.clientConfig()
	require.NoError(t, cfg.validate())
	assert.Empty(t, cfg.Storage.DSN)
	assert.Equal(t, "/tmp/session.json", cfg.Storage.SessionFile)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"empty address", func(c *ClientConfig) { c.Adapter.BaseURL = "" }, ErrInvalidAdapterConfigs},
		{"address without host", func(c *ClientConfig) { c.Adapter.BaseURL = "/api" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"negative rate", func(c *ClientConfig) { c.Adapter.RateLimit = -1 }, ErrInvalidAdapterConfigs},
		{"no storage", func(c *ClientConfig) { c.Storage = ClientStorage{} }, ErrInvalidStorageConfigs},
		{"zero list ttl", func(c *ClientConfig) { c.Cache.ListTTL = 0 }, ErrInvalidCacheConfigs},
		{"zero debounce", func(c *ClientConfig) { c.SearchDebounce = 0 }, ErrInvalidQueryConfigs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults().clientConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		sc := defaults()
		sc.App.TokenSignKey = "secret"
		sc.Storage.DB.DSN = "postgres://localhost/inventory"
		return sc.serverConfig()
	}
	require.NoError(t, valid().validate())

	tests := []struct {
		name    string
		mutate  func(c *ServerConfig)
		wantErr error
	}{
		{"no sign key", func(c *ServerConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"no refresh duration", func(c *ServerConfig) { c.App.RefreshTokenDuration = 0 }, ErrInvalidAppConfigs},
		{"no address", func(c *ServerConfig) { c.HTTP.Address = "" }, ErrInvalidServerConfigs},
		{"no dsn", func(c *ServerConfig) { c.DSN = "" }, ErrInvalidStorageConfigs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}
