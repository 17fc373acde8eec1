// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, EdgeError, FlowOptions and the Result of a max-flow run.
// Determinism:
//   - Result.SourceSide() lists vertices in ascending index order.
// Concurrency:
//   - Result is immutable after a solver returns it; safe for concurrent readers.

package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for flow operations.
var (
	// ErrNilNetwork is returned when a nil *Network is passed to a solver.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrSourceNotFound is returned when the source index is outside the network.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink index is outside the network.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSourceIsSink is returned when source and sink are the same vertex.
	ErrSourceIsSink = errors.New("flow: source and sink are the same vertex")

	// ErrVertexOutOfRange is returned by AddEdge/SetLabel for indices outside [0, n).
	ErrVertexOutOfRange = errors.New("flow: vertex index out of range")

	// ErrBadVertexCount is returned by NewNetwork for a negative vertex count.
	ErrBadVertexCount = errors.New("flow: vertex count must be non-negative")

	// ErrUnknownAlgorithm is returned by SolverFor for an unrecognised name.
	ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Ctx: checked between augmentations; nil means context.Background().
//   - Logger: if non-nil, each augmentation is logged at Debug level.
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N augmentations
//     (0 = only when the current level graph is blocked).
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *slog.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: background context,
// discarded logging, no forced level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Logger: discardLogger,
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// normalize fills zero-valued fields with their defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = discardLogger
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// Result is the outcome of a max-flow computation.
//
// Value is the maximum flow from source to sink. The minimum cut is
// recorded as the set of vertices reachable from the source in the
// residual network once no augmenting path remains.
type Result struct {
	// Value is the total flow pushed from source to sink.
	Value int64

	// Augmentations counts the augmenting pushes performed.
	Augmentations int

	sourceSide []bool
}

// InCut reports whether vertex v lies on the source side of the minimum cut.
// Indices outside the network report false.
func (r *Result) InCut(v int) bool {
	if r == nil || v < 0 || v >= len(r.sourceSide) {
		return false
	}

	return r.sourceSide[v]
}

// SourceSide returns the source-side vertices of the minimum cut in ascending order.
func (r *Result) SourceSide() []int {
	if r == nil {
		return nil
	}
	out := make([]int, 0, len(r.sourceSide))
	for v, in := range r.sourceSide {
		if in {
			out = append(out, v)
		}
	}

	return out
}
