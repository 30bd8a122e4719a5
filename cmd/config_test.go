package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres"
	"shop/internal/jobs"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, postgres.DriverPgx, cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, 200*time.Millisecond, cfg.DBSlowQueryThreshold)
	assert.Equal(t, jobs.DefaultStoreStatsSchedule, cfg.StatsJobSchedule)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", postgres.DriverPQ)
	t.Setenv("DB_MAX_OPEN_CONNS", "42")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("LOG_PRODUCTION", "true")

	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, postgres.DriverPQ, cfg.DBDriver)
	assert.Equal(t, 42, cfg.DBMaxOpenConns)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.True(t, cfg.LogProduction)
	assert.Equal(t, 42, cfg.Postgres().MaxOpenConns)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_NAME=from_file\n"), 0o600))
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_NAME", "")
	// godotenv never overrides variables that are already set, so drop the
	// one t.Setenv registered before loading.
	require.NoError(t, os.Unsetenv("DB_NAME"))

	cfg, err := LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.DBName)
}

func TestConfig_Validate_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.ErrorIs(t, cfg.Validate(), errs.ErrValueIsRequired)
}

func TestConfig_Validate_RejectsUnknownDriver(t *testing.T) {
	cfg := Config{JWTSecret: "x", JWTTTL: time.Minute, DBDriver: "mysql"}

	require.ErrorIs(t, cfg.Validate(), errs.ErrValueIsInvalid)
}
