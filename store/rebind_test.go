// SPDX-License-Identifier: MIT

package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	q := `INSERT INTO t (a, b, c) VALUES (?, ?, ?)`

	sqlite := &Store{driver: DriverSQLite}
	require.Equal(t, q, sqlite.rebind(q))

	pg := &Store{driver: DriverPostgres}
	require.Equal(t, `INSERT INTO t (a, b, c) VALUES ($1, $2, $3)`, pg.rebind(q))
}

func TestFirstWords(t *testing.T) {
	require.Equal(t, "DELETE FROM teams", firstWords("DELETE FROM teams WHERE division = ?"))
	require.Equal(t, "SELECT 1", firstWords("  SELECT 1 "))
}
