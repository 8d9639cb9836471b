// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "portal.db"}},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that an empty builder fails validation
// because the token sign key is required.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies the listen address and driver defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	first := validConfig()
	first.App.TokenIssuer = "env-issuer"
	first.Server.RequestTimeout = time.Second
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unsupported driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Second },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv / withFlagSet ─────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.TokenSignKey)
}

func TestWithFlagSet_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlagSet(newTestFlagSet(), []string{"-d", "flags.db"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flags.db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlagSet_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlagSet(newTestFlagSet(), []string{"-unknown"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "json-secret"},
	})
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-secret", b.configs[1].App.TokenSignKey)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	b.withJSON()
	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_OverridesEnvAndFlags verifies the full priority chain:
// JSON values win over earlier sources.
func TestWithJSON_OverridesEnvAndFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
	})
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlagSet(newTestFlagSet(), []string{"-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
}
