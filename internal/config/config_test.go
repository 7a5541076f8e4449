package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/contracts")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/contracts", cfg.DatabaseURL)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestFromEnv_PortOutOfRange(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090, "database_url": "postgres://db/x"}`), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://db/x", cfg.DatabaseURL)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 0, DatabaseURL: ""}
	merged := cfg.MergeWithDefaults(Config{Port: 8081, DatabaseURL: "postgres://db/y", SchemaDir: "out"})

	assert.Equal(t, 8081, merged.Port)
	assert.Equal(t, "postgres://db/y", merged.DatabaseURL)
	assert.Equal(t, "out", merged.SchemaDir)
}

func TestNewJWTConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	require.Error(t, err)
}

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.True(t, cfg.VerifyPassword("correct horse battery", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestPasswordConfig_CostBounds(t *testing.T) {
	t.Setenv("BCRYPT_COST", "20")

	_, err := NewPasswordConfig()
	require.Error(t, err)
}
