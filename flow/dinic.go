// SPDX-License-Identifier: MIT

package flow

import "context"

// Dinic computes the maximum flow from `source` to `sink` in `nw` using
// Dinic’s algorithm (level graph + blocking flows).
//
// It returns:
//   - res : the total flow value and the source side of a minimum cut
//   - err : ErrNilNetwork, ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
//     EdgeError, or context cancellation error
//
// Steps:
//  1. Normalize options and capture context (O(1)).
//  2. Validate that `source` and `sink` exist in `nw` (O(1)).
//  3. Build the residual network via buildResidual (O(V + E)).
//  4. Repeat until no more augmenting paths:
//     a. Check for cancellation (O(1)).
//     b. BFS to build the level graph: distance from source for each vertex (O(V + E)).
//     c. If sink unreachable, break.
//     d. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding level graph every LevelRebuildInterval augmentations.
//  5. Mark vertices reachable from source in the final residual network.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E·√V) on unit‐capacity networks.
//	Memory: O(V + E) for arcs and auxiliary slices (level, iter).
func Dinic(nw *Network, source, sink int, opts FlowOptions) (*Result, error) {
	// 1) Normalize options (set default Ctx and Logger if needed)
	opts.normalize()
	ctx := opts.Ctx

	// 2) Validate presence of source and sink
	if err := validate(nw, source, sink); err != nil {
		return nil, err
	}

	// 3) Residual arcs
	r, err := buildResidual(nw, opts)
	if err != nil {
		return nil, err
	}

	// 4) Main loop: level graph + blocking flows
	res := &Result{}
	level := make([]int, len(r.adj))
	iter := make([]int, len(r.adj))
phases:
	for {
		// 4a) Cancellation check before BFS
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		// 4b) BFS to compute levels
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue := []int{source}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, a := range r.adj[u] {
				v := r.to[a]
				if r.cap[a] > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		// 4c) If sink unreachable in level graph, we're done
		if level[sink] < 0 {
			break
		}

		// 4d) DFS‐based blocking flow
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			pushed := r.dinicPush(ctx, level, iter, source, sink, Unbounded)
			if pushed == 0 {
				break
			}
			if pushed == Unbounded {
				res.Value = Unbounded
				break phases
			}
			res.Value = satAdd(res.Value, pushed)
			res.Augmentations++
			opts.Logger.Debug("dinic: pushed", "delta", pushed, "total", res.Value)
			// 4d.ii) Optionally rebuild level graph
			if opts.LevelRebuildInterval > 0 && res.Augmentations%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	// 5) Source side of the minimum cut
	res.sourceSide = r.reachable(source)

	return res, nil
}

// dinicPush recursively pushes flow along the level graph.
// It respects cancellation via ctx, updates arc capacities in place,
// and returns the amount actually sent.
func (r *residual) dinicPush(ctx context.Context, level, iter []int, u, sink int, available int64) int64 {
	// Check for cancellation at DFS entry
	if ctx.Err() != nil {
		return 0
	}
	// If we reached sink, return the available flow
	if u == sink {
		return available
	}
	// Iterate over level-graph arcs, starting from iter[u]
	for ; iter[u] < len(r.adj[u]); iter[u]++ {
		a := r.adj[u][iter[u]]
		v := r.to[a]
		if r.cap[a] <= 0 || level[v] != level[u]+1 {
			continue
		}
		pushed := r.dinicPush(ctx, level, iter, v, sink, min64(available, r.cap[a]))
		if pushed > 0 {
			// On success, update residual capacities
			r.push(a, pushed)

			return pushed
		}
	}

	return 0
}
