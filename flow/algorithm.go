// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"
	"sort"
	"strings"
)

// Solver is the common signature of FordFulkerson, EdmondsKarp and Dinic.
type Solver func(nw *Network, source, sink int, opts FlowOptions) (*Result, error)

// Algorithm names accepted by SolverFor.
const (
	AlgorithmFordFulkerson = "ford-fulkerson"
	AlgorithmEdmondsKarp   = "edmonds-karp"
	AlgorithmDinic         = "dinic"
)

var solvers = map[string]Solver{
	AlgorithmFordFulkerson: FordFulkerson,
	AlgorithmEdmondsKarp:   EdmondsKarp,
	AlgorithmDinic:         Dinic,
}

// SolverFor returns the solver registered under name (case-insensitive).
// Returns ErrUnknownAlgorithm for anything else.
func SolverFor(name string) (Solver, error) {
	s, ok := solvers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownAlgorithm, name, strings.Join(Algorithms(), ", "))
	}

	return s, nil
}

// Algorithms lists the registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
