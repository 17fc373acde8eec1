// SPDX-License-Identifier: MIT

package flow

import "fmt"

// residual is the arc-pair residual representation shared by all solvers.
// Arc 2k is the forward copy of network edge k and arc 2k+1 its reverse,
// so the partner of arc a is always a^1.
type residual struct {
	adj [][]int // adj[u] = indices of arcs leaving u
	to  []int   // head of each arc
	cap []int64 // remaining capacity of each arc
}

// validate checks the solver arguments shared by every algorithm.
func validate(nw *Network, source, sink int) error {
	if nw == nil {
		return ErrNilNetwork
	}
	if !nw.valid(source) {
		return fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !nw.valid(sink) {
		return fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return ErrSourceIsSink
	}

	return nil
}

// buildResidual constructs the residual network of nw.
//
// Steps:
//  1. Allocate one adjacency slice per vertex (O(V)).
//  2. For each edge (O(E)):
//     a. Check ctx for early cancellation every so often.
//     b. Self-loops are skipped: they never lie on an augmenting path.
//     c. A negative capacity yields EdgeError.
//     d. Append the forward arc with cap and the reverse arc with 0.
//
// Complexity:
//
//	Time:   O(V + E).
//	Memory: O(V + E).
func buildResidual(nw *Network, opts FlowOptions) (*residual, error) {
	if err := opts.Ctx.Err(); err != nil {
		return nil, err
	}

	r := &residual{
		adj: make([][]int, nw.n),
		to:  make([]int, 0, 2*len(nw.edges)),
		cap: make([]int64, 0, 2*len(nw.edges)),
	}
	for i, e := range nw.edges {
		if i%1024 == 0 {
			if err := opts.Ctx.Err(); err != nil {
				return nil, err
			}
		}
		if e.From == e.To {
			continue
		}
		if e.Cap < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Cap}
		}
		a := len(r.to)
		r.to = append(r.to, e.To, e.From)
		r.cap = append(r.cap, e.Cap, 0)
		r.adj[e.From] = append(r.adj[e.From], a)
		r.adj[e.To] = append(r.adj[e.To], a+1)
	}

	return r, nil
}

// push moves delta units along arc a, crediting its partner.
func (r *residual) push(a int, delta int64) {
	if r.cap[a] != Unbounded {
		r.cap[a] -= delta
	}
	r.cap[a^1] = satAdd(r.cap[a^1], delta)
}

// reachable marks every vertex reachable from source over arcs with positive
// residual capacity: the source side of a minimum cut once the flow is maximal.
func (r *residual) reachable(source int) []bool {
	seen := make([]bool, len(r.adj))
	seen[source] = true
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.adj[u] {
			v := r.to[a]
			if r.cap[a] > 0 && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// satAdd returns a+b clamped to Unbounded. Both operands are non-negative.
func satAdd(a, b int64) int64 {
	if a > Unbounded-b {
		return Unbounded
	}

	return a + b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}
