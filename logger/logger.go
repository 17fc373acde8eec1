// SPDX-License-Identifier: MIT

// Package logger builds the structured loggers used by the pennant binaries.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New returns a JSON slog.Logger writing to w and tagged with the given
// service name. The binaries pass stderr so stdout stays free for output.
func New(w io.Writer, service string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", service)
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case, or a
// slog offset such as "info+2") to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: bad level %q: %w", s, err)
	}
	return l, nil
}
