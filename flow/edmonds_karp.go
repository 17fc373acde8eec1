// SPDX-License-Identifier: MIT

package flow

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - res: flow value and min-cut source side
//   - err: non-nil on bad arguments, negative capacities or cancellation.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(nw *Network, source, sink int, opts FlowOptions) (*Result, error) {
	opts.normalize()
	if err := validate(nw, source, sink); err != nil {
		return nil, err
	}
	r, err := buildResidual(nw, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for {
		if err = opts.Ctx.Err(); err != nil {
			return nil, err
		}
		parentArc, bottle := r.bfsAugmentingPath(source, sink)
		if bottle == 0 {
			break
		}
		if bottle == Unbounded {
			res.Value = Unbounded
			break
		}
		for v := sink; v != source; v = r.to[parentArc[v]^1] {
			r.push(parentArc[v], bottle)
		}
		res.Value = satAdd(res.Value, bottle)
		res.Augmentations++
		opts.Logger.Debug("edmonds-karp: augmenting path", "delta", bottle, "total", res.Value)
	}
	res.sourceSide = r.reachable(source)

	return res, nil
}

// bfsAugmentingPath finds the shortest (fewest-arcs) path source→sink with
// positive residual capacity. It returns the parent arc of every vertex on
// the path and the bottleneck, or a zero bottleneck when sink is unreachable.
func (r *residual) bfsAugmentingPath(source, sink int) ([]int, int64) {
	parentArc := make([]int, len(r.adj))
	for i := range parentArc {
		parentArc[i] = -1
	}
	// bottle[v] = bottleneck capacity from source to v
	bottle := make([]int64, len(r.adj))
	bottle[source] = Unbounded

	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.adj[u] {
			v := r.to[a]
			if v == source || parentArc[v] >= 0 || r.cap[a] <= 0 {
				continue
			}
			parentArc[v] = a
			bottle[v] = min64(bottle[u], r.cap[a])
			if v == sink {
				return parentArc, bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
