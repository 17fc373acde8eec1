// SPDX-License-Identifier: MIT

// Package flow implements maximum-flow / minimum-cut algorithms over a small
// index-based network type. It is the collaborator the elimination engine
// delegates to: given a vertex count, capacitated directed edges, a source
// and a sink, it returns the maximum flow value and, for every vertex,
// whether it lies on the source side of a minimum cut.
//
// The key algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search to find any augmenting path.
//
//   - Time:   O(E · F), where F is the total flow pushed (integral networks).
//
//   - Memory: O(V + E) for the residual arcs and DFS stack.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case with integer capacities.
//
//   - Memory: O(V + E).
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(V² · E) in general, O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V + E) for levels, arc iterators and recursion state.
//
// # Network
//
// Vertices are the integers 0..n-1. Capacities are int64; the Unbounded
// sentinel marks edges that must never bind, and residual arithmetic
// saturates at Unbounded rather than overflowing. Parallel edges add up,
// self-loops are ignored.
//
//	nw, _ := flow.NewNetwork(4)
//	_ = nw.AddEdge(0, 1, 3)
//	_ = nw.AddEdge(1, 3, flow.Unbounded)
//
// # API
//
// All three entry points share one signature (see Solver):
//
//	func Dinic(nw *Network, source, sink int, opts FlowOptions) (*Result, error)
//
// Result.Value is the max-flow value; Result.InCut(v) reports whether v is
// reachable from the source in the final residual network.
//
// FlowOptions carries a context (checked between augmentations), an optional
// *slog.Logger for per-augmentation Debug records, and Dinic's
// LevelRebuildInterval. Use DefaultOptions() for production-safe defaults.
//
// # Errors
//
//	ErrNilNetwork       - nil network.
//	ErrSourceNotFound   - source index outside the network.
//	ErrSinkNotFound     - sink index outside the network.
//	ErrSourceIsSink     - source == sink.
//	EdgeError           - a negative capacity.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is done.
//
// A network with no edges is valid: its max flow is 0 and only the source
// is on the source side.
package flow
