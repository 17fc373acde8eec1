// SPDX-License-Identifier: MIT

package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/logger"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "pennant", slog.LevelInfo)

	log.Debug("hidden")
	log.Info("computed", "teams", 4)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "pennant", rec["service"])
	require.Equal(t, "computed", rec["msg"])
	require.Equal(t, "INFO", rec["level"])
	require.EqualValues(t, 4, rec["teams"])
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	l, err := logger.ParseLevel("loud")
	require.Error(t, err)
	require.Equal(t, slog.LevelInfo, l)
}
