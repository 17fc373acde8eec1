// SPDX-License-Identifier: MIT

package elimination_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/flow"
)

func loadFixture(t testing.TB, name string) *division.Division {
	t.Helper()
	d, err := division.Load(filepath.Join("..", "division", "testdata", name))
	require.NoError(t, err)

	return d
}

// TestBuildNetworkLayout pins the network of Philadelphia in teams4.
func TestBuildNetworkLayout(t *testing.T) {
	d := loadFixture(t, "teams4.txt")

	tn, err := elimination.BuildNetwork(d, 1)
	require.NoError(t, err)
	require.Equal(t, 1, tn.Target)
	require.Equal(t, []int{0, 2, 3}, tn.Rivals)
	require.Equal(t, int64(7), tn.TotalGames)
	require.Equal(t, 83, tn.MaxWins)
	require.Equal(t, 8, tn.Network.VertexCount())

	require.Equal(t, []elimination.GameVertex{
		{I: 0, J: 2, Vertex: 5, Games: 6},
		{I: 0, J: 3, Vertex: 6, Games: 1},
		{I: 2, J: 3, Vertex: 7, Games: 0},
	}, tn.Games)

	u := flow.Unbounded
	require.Equal(t, []flow.Edge{
		{From: 0, To: 5, Cap: 6}, {From: 5, To: 2, Cap: u}, {From: 5, To: 3, Cap: u},
		{From: 0, To: 6, Cap: 1}, {From: 6, To: 2, Cap: u}, {From: 6, To: 4, Cap: u},
		{From: 0, To: 7, Cap: 0}, {From: 7, To: 3, Cap: u}, {From: 7, To: 4, Cap: u},
		{From: 2, To: 1, Cap: 0}, {From: 3, To: 1, Cap: 5}, {From: 4, To: 1, Cap: 6},
	}, tn.Network.Edges())

	require.Equal(t, 2, tn.TeamVertex(0))
	require.Equal(t, -1, tn.TeamVertex(1))
	require.Equal(t, 3, tn.TeamVertex(2))
	require.Equal(t, 4, tn.TeamVertex(3))
	require.Equal(t, -1, tn.TeamVertex(4))
	require.Equal(t, -1, tn.TeamVertex(-1))

	require.Equal(t, "Atlanta", tn.Network.Label(2))
	require.Equal(t, "Atlanta-New_York", tn.Network.Label(5))
}

// TestBuildNetworkPure builds the same network twice and compares.
func TestBuildNetworkPure(t *testing.T) {
	d := loadFixture(t, "teams5.txt")
	for i := 0; i < d.TeamCount(); i++ {
		a, err := elimination.BuildNetwork(d, i)
		require.NoError(t, err)
		b, err := elimination.BuildNetwork(d, i)
		require.NoError(t, err)
		require.Equal(t, a.Network.Edges(), b.Network.Edges())
		// 2 + 4 rivals + 6 pairs
		require.Equal(t, 12, a.Network.VertexCount())
	}
}

// TestBuildNetworkSingleTeam yields a network with no edges.
func TestBuildNetworkSingleTeam(t *testing.T) {
	d, err := division.New([]division.Team{{Name: "Solo", Wins: 1}}, [][]int{{0}})
	require.NoError(t, err)

	tn, err := elimination.BuildNetwork(d, 0)
	require.NoError(t, err)
	require.Equal(t, 2, tn.Network.VertexCount())
	require.Equal(t, 0, tn.Network.EdgeCount())
	require.Equal(t, int64(0), tn.TotalGames)
}

func TestBuildNetworkBadIndex(t *testing.T) {
	d := loadFixture(t, "teams4.txt")
	_, err := elimination.BuildNetwork(d, 4)
	require.ErrorIs(t, err, elimination.ErrTeamIndex)
	_, err = elimination.BuildNetwork(d, -1)
	require.ErrorIs(t, err, elimination.ErrTeamIndex)
}

// TestNetworkMinCut solves Philadelphia's network directly.
func TestNetworkMinCut(t *testing.T) {
	d := loadFixture(t, "teams4.txt")
	tn, err := elimination.BuildNetwork(d, 1)
	require.NoError(t, err)

	res, err := flow.EdmondsKarp(tn.Network, elimination.SourceVertex, elimination.SinkVertex, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, int64(6), res.Value)
	require.True(t, res.InCut(tn.TeamVertex(0)))  // Atlanta
	require.True(t, res.InCut(tn.TeamVertex(2)))  // New_York
	require.False(t, res.InCut(tn.TeamVertex(3))) // Montreal
}

func TestTrivialCertificate(t *testing.T) {
	d := loadFixture(t, "teams4.txt")
	require.Equal(t, []int{0}, elimination.TrivialCertificate(d, 3))
	for i := 0; i < 3; i++ {
		require.Empty(t, elimination.TrivialCertificate(d, i))
	}
}
