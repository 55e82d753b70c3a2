package config_test

import (
	"log/slog"
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhd-selfcheck/backend/internal/infrastructure/config"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse(env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, 0, cfg.RetentionDays)
	assert.Equal(t, "@daily", cfg.RetentionSchedule)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse(env(map[string]string{
		"SERVER_ADDRESS":   ":9090",
		"SHUTDOWN_TIMEOUT": "3s",
		"LOG_LEVEL":        "debug",
		"STORE_DRIVER":     "Postgres",
		"POSTGRES_DSN":     "postgres://localhost/selfcheck?sslmode=disable",
		"REDIS_DB":         "2",
		"RETENTION_DAYS":   "30",
		"RATE_LIMIT_RPS":   "2.5",
		"RATE_LIMIT_BURST": "5",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 30, cfg.RetentionDays)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad duration":      {"SHUTDOWN_TIMEOUT": "soon"},
		"bad level":         {"LOG_LEVEL": "loud"},
		"bad driver":        {"STORE_DRIVER": "cassandra"},
		"postgres no dsn":   {"STORE_DRIVER": "postgres"},
		"bad int":           {"REDIS_DB": "one"},
		"negative days":     {"RETENTION_DAYS": "-1"},
		"zero rate":         {"RATE_LIMIT_RPS": "0"},
		"unparseable float": {"RATE_LIMIT_RPS": "fast"},
		"bad proxy":         {"TRUSTED_PROXIES": "10.0.0.1, gateway"},
		"bad proxy range":   {"TRUSTED_PROXIES": "10.0.0.0/33"},
	}

	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(env(vars))
			assert.Error(t, err)
		})
	}
}

func TestParse_TrustedProxies(t *testing.T) {
	cfg, err := config.Parse(env(map[string]string{
		"TRUSTED_PROXIES": "10.0.0.0/8, 192.168.1.10 ,::1",
	}))
	require.NoError(t, err)

	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.168.1.10/32"),
		netip.MustParsePrefix("::1/128"),
	}, cfg.TrustedProxies)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_DRIVER=sqlite\nSQLITE_PATH=/tmp/x.db\n# comment\nRETENTION_DAYS=7\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, 7, cfg.RetentionDays)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
