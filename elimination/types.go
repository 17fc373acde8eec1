// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Verdict, engine options and sentinel errors.

package elimination

import (
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/pennant/flow"
)

// Sentinel errors for the engine.
var (
	// ErrTeamIndex is returned by BuildNetwork for a target outside the division.
	ErrTeamIndex = errors.New("elimination: team index out of range")

	// ErrEmptyCertificate reports a flow verdict of elimination whose minimum
	// cut holds no team vertex. It indicates a solver defect.
	ErrEmptyCertificate = errors.New("elimination: eliminated team has an empty certificate")

	// ErrVerdictMismatch is returned by FromVerdicts when the verdicts do not
	// cover the division's teams one to one.
	ErrVerdictMismatch = errors.New("elimination: verdicts do not match division")
)

// Verdict is the outcome of the elimination check for one team.
// Certificate lists rival names in division order and is nil exactly
// when Eliminated is false.
type Verdict struct {
	Team        string   `json:"team"`
	Eliminated  bool     `json:"eliminated"`
	Trivial     bool     `json:"trivial"`
	Certificate []string `json:"certificate,omitempty"`
	MaxFlow     int64    `json:"max_flow"`
	TotalGames  int64    `json:"total_games"`
}

// clone returns a copy that shares no memory with v.
func (v Verdict) clone() Verdict {
	if v.Certificate != nil {
		v.Certificate = append([]string(nil), v.Certificate...)
	}

	return v
}

// Options configures Compute.
//   - Solver: the max-flow algorithm (default flow.Dinic).
//   - Workers: concurrent per-team checks; <= 0 means runtime.NumCPU().
//   - Logger: per-team Debug records; nil discards.
type Options struct {
	Solver  flow.Solver
	Workers int
	Logger  *slog.Logger

	err error // deferred option error, reported by Compute
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Dinic, one worker per CPU and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Solver:  flow.Dinic,
		Workers: runtime.NumCPU(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSolver selects the max-flow solver. A nil solver keeps the default.
func WithSolver(s flow.Solver) Option {
	return func(o *Options) {
		if s != nil {
			o.Solver = s
		}
	}
}

// WithAlgorithm selects the solver by name (see flow.Algorithms).
// An unknown name makes Compute fail with flow.ErrUnknownAlgorithm.
func WithAlgorithm(name string) Option {
	return func(o *Options) {
		s, err := flow.SolverFor(name)
		if err != nil {
			o.err = err
			return
		}
		o.Solver = s
	}
}

// WithWorkers bounds the number of concurrent per-team checks.
// n <= 0 means runtime.NumCPU(); 1 runs the checks sequentially.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		o.Workers = n
	}
}

// WithLogger sets the logger used for per-team Debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
