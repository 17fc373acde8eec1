// SPDX-License-Identifier: MIT

// Package config reads runtime settings from the environment, after loading
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidValue is wrapped by GetInt and GetBool when a variable is set
// but cannot be parsed. The returned value is then the fallback.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds runtime configuration for the pennant binaries.
type Config struct {
	Addr      string // HTTP listen address
	DBDriver  string // "sqlite" or "postgres"
	DBDSN     string
	Algorithm string // flow algorithm name
	Workers   int    // 0 = one per CPU
	LogLevel  string
	Debug     bool // include error detail in HTTP responses
}

// Load reads the given .env files (default ".env"; missing files are
// skipped) and then builds a Config from environment variables. Variables
// already set in the environment win over .env entries.
//
// An unparsable variable does not stop loading: the Config carries its
// fallback and the error, wrapping ErrInvalidValue, is returned alongside.
// Callers decide whether to warn or abort.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return FromEnv()
}

// FromEnv constructs a Config from environment variables only. Invalid
// values fall back to their defaults and are reported together.
func FromEnv() (Config, error) {
	workers, errWorkers := GetInt("PENNANT_WORKERS", 0)
	debug, errDebug := GetBool("PENNANT_DEBUG", false)
	cfg := Config{
		Addr:      GetString("PENNANT_ADDR", ":8080"),
		DBDriver:  GetString("PENNANT_DB_DRIVER", "sqlite"),
		DBDSN:     GetString("PENNANT_DB_DSN", "pennant.db"),
		Algorithm: GetString("PENNANT_ALGORITHM", "dinic"),
		Workers:   workers,
		LogLevel:  GetString("PENNANT_LOG_LEVEL", "info"),
		Debug:     debug,
	}

	return cfg, errors.Join(errWorkers, errDebug)
}

// GetString retrieves an environment variable or returns a fallback when unset.
func GetString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetInt retrieves an environment variable as integer. Unset yields
// fallback; an unparsable value yields fallback and ErrInvalidValue.
func GetInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, key, value)
	}

	return parsed, nil
}

// GetBool is GetInt for booleans (strconv.ParseBool syntax).
func GetBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidValue, key, value)
	}

	return parsed, nil
}
