// SPDX-License-Identifier: MIT
//
// File: games.go
// Role: Square, symmetric, zero-diagonal, non-negative remaining-games matrix.
// Determinism:
//   - Validation scans rows in order and reports the first violation found.
// Concurrency:
//   - Games is immutable once built; safe for concurrent readers.

package division

import "math"

// MaxTotalGames bounds the number of distinct games left in a division.
// It keeps every game total, and so every max-flow value built from it,
// strictly below flow.Unbounded.
const MaxTotalGames = math.MaxInt - 1

// Games is the remaining-games matrix: At(i, j) games are still to be
// played between team i and team j. The zero value is an empty matrix.
type Games struct {
	n    int
	data []int // row-major, n*n
}

// NewGames copies rows into a validated Games matrix.
//
// Steps:
//  1. ValidateSquare: every row has len(rows) entries.
//  2. ValidateNonNegative: no entry is below zero.
//  3. ValidateZeroDiagonal: a team plays no games against itself.
//  4. ValidateSymmetric: rows[i][j] == rows[j][i] (upper triangle scan).
//  5. ValidateTotal: the upper triangle sums to at most MaxTotalGames.
//
// Every violation wraps ErrMalformedDivision.
// Complexity: O(n²) time, O(n²) memory.
func NewGames(rows [][]int) (Games, error) {
	if err := ValidateSquare(rows); err != nil {
		return Games{}, err
	}
	if err := ValidateNonNegative(rows); err != nil {
		return Games{}, err
	}
	if err := ValidateZeroDiagonal(rows); err != nil {
		return Games{}, err
	}
	if err := ValidateSymmetric(rows); err != nil {
		return Games{}, err
	}
	if err := ValidateTotal(rows); err != nil {
		return Games{}, err
	}

	n := len(rows)
	g := Games{n: n, data: make([]int, n*n)}
	for i, row := range rows {
		copy(g.data[i*n:(i+1)*n], row)
	}

	return g, nil
}

// Size returns the number of rows (and columns).
func (g Games) Size() int { return g.n }

// At returns the games left between i and j. Indices are not checked;
// out-of-range indices panic like any slice access.
func (g Games) At(i, j int) int { return g.data[i*g.n+j] }

// Row returns a copy of row i.
func (g Games) Row(i int) []int {
	out := make([]int, g.n)
	copy(out, g.data[i*g.n:(i+1)*g.n])

	return out
}

// Total returns the number of distinct games left, counting each pair once.
// It never exceeds MaxTotalGames.
func (g Games) Total() int {
	total := 0
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			total += g.At(i, j)
		}
	}

	return total
}

// ValidateSquare checks that every row has exactly len(rows) entries.
// Complexity: O(n).
func ValidateSquare(rows [][]int) error {
	for i, row := range rows {
		if len(row) != len(rows) {
			return malformedf("games row %d has %d entries, want %d", i, len(row), len(rows))
		}
	}

	return nil
}

// ValidateNonNegative checks that no entry is negative.
// Assumes rows is square. Complexity: O(n²).
func ValidateNonNegative(rows [][]int) error {
	for i, row := range rows {
		for j, v := range row {
			if v < 0 {
				return malformedf("games[%d][%d] = %d is negative", i, j, v)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks that rows[i][i] == 0 for every i.
// Assumes rows is square. Complexity: O(n).
func ValidateZeroDiagonal(rows [][]int) error {
	for i := range rows {
		if rows[i][i] != 0 {
			return malformedf("games[%d][%d] = %d, a team plays no games against itself", i, i, rows[i][i])
		}
	}

	return nil
}

// ValidateSymmetric checks rows[i][j] == rows[j][i] on the upper triangle.
// Assumes rows is square. Complexity: O(n²).
func ValidateSymmetric(rows [][]int) error {
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			if rows[i][j] != rows[j][i] {
				return malformedf("games[%d][%d] = %d but games[%d][%d] = %d", i, j, rows[i][j], j, i, rows[j][i])
			}
		}
	}

	return nil
}

// ValidateTotal checks that the games on the upper triangle add up to at
// most MaxTotalGames without overflowing.
// Assumes rows is square and non-negative. Complexity: O(n²).
func ValidateTotal(rows [][]int) error {
	total := 0
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			if rows[i][j] > MaxTotalGames-total {
				return malformedf("more than %d games left in total (at games[%d][%d])", MaxTotalGames, i, j)
			}
			total += rows[i][j]
		}
	}

	return nil
}
