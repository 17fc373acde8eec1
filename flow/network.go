// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Index-based directed capacitated network consumed by the solvers.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - A Network is built by one goroutine and then only read; it carries no locks.
//     Solvers never mutate it, so one Network may be solved concurrently.

package flow

import (
	"fmt"
	"math"
	"strconv"
)

// Unbounded is the capacity used for edges that must never bind.
// Residual arithmetic saturates at Unbounded instead of overflowing.
const Unbounded int64 = math.MaxInt64

// Edge is a directed edge From→To with a non-negative capacity.
type Edge struct {
	From, To int
	Cap      int64
}

// Network is a directed graph over vertices 0..n-1 with capacitated edges.
// Parallel edges are allowed and behave as one edge with the summed capacity.
// Self-loops are accepted and ignored by the solvers.
type Network struct {
	n      int
	edges  []Edge
	labels []string
}

// NewNetwork creates an empty network with n vertices.
// Returns ErrBadVertexCount if n < 0.
// Complexity: O(n).
func NewNetwork(n int) (*Network, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}

	return &Network{n: n, labels: make([]string, n)}, nil
}

// AddEdge appends the edge from→to with the given capacity.
// Returns ErrVertexOutOfRange for bad endpoints and EdgeError for a negative capacity.
// Complexity: O(1) amortized.
func (nw *Network) AddEdge(from, to int, capacity int64) error {
	if !nw.valid(from) || !nw.valid(to) {
		return fmt.Errorf("%w: edge %d→%d in network of %d vertices", ErrVertexOutOfRange, from, to, nw.n)
	}
	if capacity < 0 {
		return EdgeError{From: from, To: to, Cap: capacity}
	}
	nw.edges = append(nw.edges, Edge{From: from, To: to, Cap: capacity})

	return nil
}

// VertexCount returns the number of vertices.
func (nw *Network) VertexCount() int { return nw.n }

// EdgeCount returns the number of edges added so far.
func (nw *Network) EdgeCount() int { return len(nw.edges) }

// Edges returns a copy of all edges in insertion order.
func (nw *Network) Edges() []Edge {
	out := make([]Edge, len(nw.edges))
	copy(out, nw.edges)

	return out
}

// SetLabel attaches a human-readable name to vertex v (used only in logs).
func (nw *Network) SetLabel(v int, label string) error {
	if !nw.valid(v) {
		return fmt.Errorf("%w: label for %d", ErrVertexOutOfRange, v)
	}
	nw.labels[v] = label

	return nil
}

// Label returns the label of v, or its decimal index when unlabeled.
func (nw *Network) Label(v int) string {
	if nw.valid(v) && nw.labels[v] != "" {
		return nw.labels[v]
	}

	return strconv.Itoa(v)
}

func (nw *Network) valid(v int) bool { return v >= 0 && v < nw.n }
