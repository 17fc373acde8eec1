// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/config"
)

var keys = []string{
	"PENNANT_ADDR", "PENNANT_DB_DRIVER", "PENNANT_DB_DSN",
	"PENNANT_ALGORITHM", "PENNANT_WORKERS", "PENNANT_LOG_LEVEL", "PENNANT_DEBUG",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		} else {
			t.Cleanup(func() { _ = os.Unsetenv(k) })
		}
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Addr:      ":8080",
		DBDriver:  "sqlite",
		DBDSN:     "pennant.db",
		Algorithm: "dinic",
		Workers:   0,
		LogLevel:  "info",
	}, cfg)
}

func TestEnvFileAndOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"PENNANT_ALGORITHM=edmonds-karp\nPENNANT_WORKERS=3\nPENNANT_ADDR=:9000\nPENNANT_DEBUG=true\n"), 0o600))
	t.Setenv("PENNANT_ADDR", ":7000")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "edmonds-karp", cfg.Algorithm)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, ":7000", cfg.Addr) // process env wins
	require.True(t, cfg.Debug)
}

func TestTypedFallbacks(t *testing.T) {
	t.Setenv("PENNANT_TEST_INT", "many")
	t.Setenv("PENNANT_TEST_BOOL", "perhaps")
	t.Setenv("PENNANT_TEST_STR", "")

	n, err := config.GetInt("PENNANT_TEST_INT", 5)
	require.ErrorIs(t, err, config.ErrInvalidValue)
	require.Equal(t, 5, n)

	b, err := config.GetBool("PENNANT_TEST_BOOL", true)
	require.ErrorIs(t, err, config.ErrInvalidValue)
	require.True(t, b)

	n, err = config.GetInt("PENNANT_TEST_UNSET", 7)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, "", config.GetString("PENNANT_TEST_STR", "fallback"))
	require.Equal(t, "fallback", config.GetString("PENNANT_TEST_UNSET", "fallback"))
}

func TestLoadInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PENNANT_WORKERS", "lots")
	t.Setenv("PENNANT_DEBUG", "maybe")
	t.Setenv("PENNANT_ALGORITHM", "edmonds-karp")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, config.ErrInvalidValue)
	require.Contains(t, err.Error(), "PENNANT_WORKERS")
	require.Contains(t, err.Error(), "PENNANT_DEBUG")
	require.Equal(t, 0, cfg.Workers)
	require.False(t, cfg.Debug)
	require.Equal(t, "edmonds-karp", cfg.Algorithm)
}
