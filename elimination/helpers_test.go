// SPDX-License-Identifier: MIT

package elimination_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/division"
)

// randomDivision builds a seeded division of 1–6 teams. Remaining games are
// the row sum plus a few games against teams outside the division.
func randomDivision(t testing.TB, seed int64) *division.Division {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	n := 1 + r.Intn(6)

	games := make([][]int, n)
	for i := range games {
		games[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g := r.Intn(5)
			games[i][j], games[j][i] = g, g
		}
	}

	teams := make([]division.Team, n)
	for i := range teams {
		rem := r.Intn(3)
		for _, g := range games[i] {
			rem += g
		}
		teams[i] = division.Team{
			Name:      fmt.Sprintf("T%d", i),
			Wins:      r.Intn(30),
			Losses:    r.Intn(30),
			Remaining: rem,
		}
	}

	d, err := division.New(teams, games)
	require.NoError(t, err)

	return d
}

// subsetScore returns Σwins(R) + games(R) for the teams at idx.
func subsetScore(d *division.Division, idx []int) int {
	score := 0
	for a, i := range idx {
		score += d.TeamAt(i).Wins
		for _, j := range idx[a+1:] {
			score += d.GamesAt(i, j)
		}
	}

	return score
}

// bruteForceEliminated enumerates every non-empty rival subset R and
// reports whether some R forces a rival past the team at t:
// Σwins(R) + games(R) > (wins(t) + remaining(t)) * |R|.
func bruteForceEliminated(d *division.Division, t int) bool {
	target := d.TeamAt(t)
	best := target.Wins + target.Remaining

	var rivals []int
	for i := 0; i < d.TeamCount(); i++ {
		if i != t {
			rivals = append(rivals, i)
		}
	}
	for mask := 1; mask < 1<<len(rivals); mask++ {
		var idx []int
		for b, i := range rivals {
			if mask&(1<<b) != 0 {
				idx = append(idx, i)
			}
		}
		if subsetScore(d, idx) > best*len(idx) {
			return true
		}
	}

	return false
}

// certificateHolds checks the elimination inequality for a named certificate.
func certificateHolds(d *division.Division, t int, cert []string) bool {
	idx := make([]int, 0, len(cert))
	for _, name := range cert {
		i, err := d.Index(name)
		if err != nil || i == t {
			return false
		}
		idx = append(idx, i)
	}
	target := d.TeamAt(t)

	return subsetScore(d, idx) > (target.Wins+target.Remaining)*len(idx)
}
