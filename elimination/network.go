// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Pure construction of the per-team flow network and the trivial check.
// Determinism:
//   - Team vertices follow division order (target skipped); game vertices
//     follow (i, j) pairs in row-major order with i < j.
// Concurrency:
//   - BuildNetwork only reads the Division; networks share nothing.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/flow"
)

// Fixed vertices of every TeamNetwork.
const (
	SourceVertex = 0
	SinkVertex   = 1
)

// GameVertex is the vertex standing for the games left between the rivals
// at division indices I and J (I < J).
type GameVertex struct {
	I, J   int
	Vertex int
	Games  int
}

// TeamNetwork is the flow network that decides whether Target is eliminated.
//
// Layout: 0 = source, 1 = sink, then one vertex per rival in division order,
// then one vertex per rival pair.
type TeamNetwork struct {
	Target     int
	Network    *flow.Network
	Rivals     []int // Rivals[k] is the division index behind vertex 2+k
	Games      []GameVertex
	TotalGames int64 // sum of source edge capacities, at most division.MaxTotalGames
	MaxWins    int   // wins(Target) + remaining(Target)
}

// TeamVertex returns the vertex of the team at division index i,
// or -1 for the target or an index outside the division.
func (tn *TeamNetwork) TeamVertex(i int) int {
	switch {
	case i < 0 || i == tn.Target || i > len(tn.Rivals):
		return -1
	case i < tn.Target:
		return 2 + i
	default:
		return 2 + i - 1
	}
}

// stillWin is how many more games rival i may win without passing the
// target's best possible total. Negative means i already passed it.
func stillWin(d *division.Division, t, i int) int {
	target := d.TeamAt(t)

	return target.Wins + target.Remaining - d.TeamAt(i).Wins
}

// TrivialCertificate returns, in division order, the indices of the rivals
// that have already won more games than the team at t can reach.
// An empty result means no rival eliminates t on its own.
func TrivialCertificate(d *division.Division, t int) []int {
	var out []int
	for i := 0; i < d.TeamCount(); i++ {
		if i != t && stillWin(d, t, i) < 0 {
			out = append(out, i)
		}
	}

	return out
}

// BuildNetwork constructs the elimination network of the team at index t.
// It is a pure function of (d, t).
//
// Steps:
//  1. Validate t.
//  2. Allocate 2 + (n-1) + (n-1)(n-2)/2 vertices and label them.
//  3. For every rival pair i < j: source → game (games(i,j)) and
//     game → team(i), game → team(j) (Unbounded).
//  4. For every rival i: team(i) → sink (max(0, stillWin(i))).
//
// Complexity: O(n²) vertices and edges.
func BuildNetwork(d *division.Division, t int) (*TeamNetwork, error) {
	// 1) Validate target
	n := d.TeamCount()
	if t < 0 || t >= n {
		return nil, fmt.Errorf("%w: %d of %d", ErrTeamIndex, t, n)
	}

	// 2) Vertices
	rivals := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != t {
			rivals = append(rivals, i)
		}
	}
	pairs := len(rivals) * (len(rivals) - 1) / 2
	nw, err := flow.NewNetwork(2 + len(rivals) + pairs)
	if err != nil {
		return nil, err
	}
	target := d.TeamAt(t)
	tn := &TeamNetwork{
		Target:  t,
		Network: nw,
		Rivals:  rivals,
		Games:   make([]GameVertex, 0, pairs),
		MaxWins: target.Wins + target.Remaining,
	}
	// Every labeled vertex below was allocated by NewNetwork, so SetLabel
	// cannot report ErrVertexOutOfRange.
	_ = nw.SetLabel(SourceVertex, "source")
	_ = nw.SetLabel(SinkVertex, "sink")
	for k, i := range rivals {
		_ = nw.SetLabel(2+k, d.TeamAt(i).Name)
	}

	// 3) Game vertices
	next := 2 + len(rivals)
	for a := 0; a < len(rivals); a++ {
		for b := a + 1; b < len(rivals); b++ {
			i, j := rivals[a], rivals[b]
			g := d.GamesAt(i, j)
			gv := GameVertex{I: i, J: j, Vertex: next, Games: g}
			next++
			_ = nw.SetLabel(gv.Vertex, d.TeamAt(i).Name+"-"+d.TeamAt(j).Name)
			if err = nw.AddEdge(SourceVertex, gv.Vertex, int64(g)); err != nil {
				return nil, err
			}
			if err = nw.AddEdge(gv.Vertex, 2+a, flow.Unbounded); err != nil {
				return nil, err
			}
			if err = nw.AddEdge(gv.Vertex, 2+b, flow.Unbounded); err != nil {
				return nil, err
			}
			tn.TotalGames += int64(g)
			tn.Games = append(tn.Games, gv)
		}
	}

	// 4) Team → sink
	for k, i := range rivals {
		if err = nw.AddEdge(2+k, SinkVertex, int64(max(0, stillWin(d, t, i)))); err != nil {
			return nil, err
		}
	}

	return tn, nil
}
