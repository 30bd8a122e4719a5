package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "shop", Password: "secret", Name: "shop"}

	assert.Equal(t, "host=db port=5432 user=shop password=secret dbname=shop sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestNewDialector(t *testing.T) {
	for _, driver := range []string{"", DriverPgx, DriverPQ} {
		d, err := newDialector(Config{Driver: driver})
		require.NoError(t, err)
		assert.Equal(t, "postgres", d.Name())
	}

	_, err := newDialector(Config{Driver: "mysql"})
	require.Error(t, err)
}
