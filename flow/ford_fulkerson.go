// SPDX-License-Identifier: MIT

package flow

// FordFulkerson computes the maximum flow from `source` to `sink` in `nw`
// using the Ford–Fulkerson method (DFS-based augmenting paths).
//
// It returns:
//   - res : the flow value and the source side of a minimum cut
//   - err : ErrNilNetwork, ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
//     EdgeError, or a context error
//
// Steps:
//  1. Normalize options (O(1)).
//  2. Validate source and sink (O(1)).
//  3. Build the residual network via buildResidual (O(V + E)).
//  4. Repeat until no augmenting path:
//     a. Check ctx for cancellation.
//     b. Iterative DFS from source over arcs with positive capacity (O(V + E)).
//     c. If sink was not reached, break.
//     d. Push the bottleneck along the parent arcs (O(path length)).
//  5. Mark the vertices still reachable from source (min-cut source side).
//
// Complexity:
//
//	Time:   O(E * F) where F = maxFlow (integral capacities).
//	Memory: O(V + E) for the residual arcs and DFS stack.
//
// Suitable for small networks with modest capacities; for stronger guarantees,
// consider Edmonds–Karp (BFS) or Dinic (level graph + blocking flow).
func FordFulkerson(nw *Network, source, sink int, opts FlowOptions) (*Result, error) {
	// 1) Normalize options to ensure Ctx and Logger are set
	opts.normalize()
	ctx := opts.Ctx

	// 2) Validate arguments
	if err := validate(nw, source, sink); err != nil {
		return nil, err
	}

	// 3) Residual arcs
	r, err := buildResidual(nw, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	n := len(r.adj)
	for {
		// 4a) Check for cancellation before each search
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		// 4b) Iterative DFS; parentArc[v] = arc used to reach v (-1 = unvisited)
		parentArc := make([]int, n)
		for i := range parentArc {
			parentArc[i] = -1
		}
		visited := make([]bool, n)
		visited[source] = true
		stack := []int{source}
		found := false
		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range r.adj[u] {
				v := r.to[a]
				if r.cap[a] <= 0 || visited[v] {
					continue
				}
				visited[v] = true
				parentArc[v] = a
				if v == sink {
					found = true
					break
				}
				stack = append(stack, v)
			}
		}

		// 4c) No augmenting path left
		if !found {
			break
		}

		// 4d) Bottleneck along the path, then push
		delta := Unbounded
		for v := sink; v != source; v = r.to[parentArc[v]^1] {
			delta = min64(delta, r.cap[parentArc[v]])
		}
		if delta == Unbounded {
			res.Value = Unbounded
			break
		}
		for v := sink; v != source; v = r.to[parentArc[v]^1] {
			r.push(parentArc[v], delta)
		}
		res.Value = satAdd(res.Value, delta)
		res.Augmentations++
		opts.Logger.Debug("ford-fulkerson: augmenting path",
			"source", nw.Label(source), "sink", nw.Label(sink), "delta", delta, "total", res.Value)
	}

	// 5) Source side of the minimum cut
	res.sourceSide = r.reachable(source)

	return res, nil
}
