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
		App: App{
			TokenSignKey:   "secret",
			TokenAlgorithm: "HS256",
			TokenDuration:  time.Hour,
			BcryptCost:     10,
		},
		Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: ":memory:"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without a
// signing secret is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
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

// TestBuild_LaterSourceOverrides verifies that non-zero fields of later
// sources override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenSignKey: "env-secret"},
			Storage: Storage{DB: DB{DSN: "postgres://env"}},
		},
		&StructuredConfig{
			App: App{TokenSignKey: "json-secret", TokenDuration: 2 * time.Hour},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DefaultTokenAlgorithm, cfg.App.TokenAlgorithm)
	assert.Equal(t, DefaultBcryptCost, cfg.App.BcryptCost)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].App.TokenSignKey)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvFlagsAndJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_duration": "15m"},
	})
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-secret",
		"STORAGE_DB_DATABASE_URI": "postgres://env",
	})

	cfg, err := GetStructuredConfig([]string{"-db-driver", "sqlite", "-d", ":memory:", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Minute, cfg.App.TokenDuration)
}

func TestGetStructuredConfig_MissingSecret(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://env",
	})

	_, err := GetStructuredConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestStructuredConfig_Redacted(t *testing.T) {
	cfg := validConfig()

	r := cfg.Redacted()

	assert.Equal(t, redacted, r.App.TokenSignKey)
	assert.Equal(t, redacted, r.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.App.TokenSignKey, "original must stay untouched")
}
