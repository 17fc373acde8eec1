// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Per-team check and the eager compute-all pass.
// Determinism:
//   - Verdicts are identical for every solver and worker count.
// Concurrency:
//   - Each goroutine writes only its own verdict slot; the Report is
//     published only after every goroutine has returned.

package elimination

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/flow"
)

// Compute checks every team of d and returns the resulting Report.
//
// Steps:
//  1. Apply options; an option error (unknown algorithm) is returned as is.
//  2. Start one task per team on an errgroup limited to Workers.
//  3. Each task runs Check and stores the verdict in its own slot.
//  4. The first error cancels the remaining tasks and is returned.
//
// Complexity: O(n) flow problems of O(n²) vertices each.
func Compute(ctx context.Context, d *division.Division, opts ...Option) (*Report, error) {
	// 1) Options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if d == nil {
		return nil, fmt.Errorf("elimination: %w: nil division", division.ErrMalformedDivision)
	}

	// 2) Bounded fan-out
	verdicts := make([]Verdict, d.TeamCount())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for t := range verdicts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// 3) Own slot only
			v, err := Check(gctx, d, t, o)
			if err != nil {
				return err
			}
			verdicts[t] = v

			return nil
		})
	}

	// 4) No partial reports
	if err := g.Wait(); err != nil {
		return nil, err
	}
	o.Logger.Info("elimination: computed", "teams", len(verdicts), "eliminated", countEliminated(verdicts))

	return &Report{d: d, verdicts: verdicts}, nil
}

// Check decides whether the team at index t is eliminated.
//
// Steps:
//  1. Trivial check; if any rival already passed max(T), return at once.
//  2. Build the team network and run o.Solver from source to sink.
//  3. Eliminated iff the flow value is below TotalGames; the certificate is
//     the rivals on the source side of the minimum cut.
func Check(ctx context.Context, d *division.Division, t int, o Options) (Verdict, error) {
	if d == nil {
		return Verdict{}, fmt.Errorf("elimination: %w: nil division", division.ErrMalformedDivision)
	}
	if o.Solver == nil {
		o.Solver = flow.Dinic
	}
	if o.Logger == nil {
		o.Logger = DefaultOptions().Logger
	}
	if t < 0 || t >= d.TeamCount() {
		return Verdict{}, fmt.Errorf("%w: %d of %d", ErrTeamIndex, t, d.TeamCount())
	}
	name := d.TeamAt(t).Name
	log := o.Logger.With("team", name)

	// 1) Trivial
	if blockers := TrivialCertificate(d, t); len(blockers) > 0 {
		v := Verdict{Team: name, Eliminated: true, Trivial: true, Certificate: names(d, blockers)}
		log.Debug("elimination: trivially eliminated", "certificate", v.Certificate)

		return v, nil
	}

	// 2) Flow
	tn, err := BuildNetwork(d, t)
	if err != nil {
		return Verdict{}, err
	}
	fo := flow.DefaultOptions()
	fo.Ctx = ctx
	fo.Logger = log
	res, err := o.Solver(tn.Network, SourceVertex, SinkVertex, fo)
	if err != nil {
		return Verdict{}, fmt.Errorf("elimination: %s: %w", name, err)
	}

	// 3) Interpret
	v := Verdict{Team: name, MaxFlow: res.Value, TotalGames: tn.TotalGames}
	if res.Value >= tn.TotalGames {
		log.Debug("elimination: not eliminated", "flow", res.Value, "games", tn.TotalGames)

		return v, nil
	}
	var blockers []int
	for k, i := range tn.Rivals {
		if res.InCut(2 + k) {
			blockers = append(blockers, i)
		}
	}
	if len(blockers) == 0 {
		return Verdict{}, fmt.Errorf("%w: %s", ErrEmptyCertificate, name)
	}
	v.Eliminated = true
	v.Certificate = names(d, blockers)
	log.Debug("elimination: eliminated", "flow", res.Value, "games", tn.TotalGames, "certificate", v.Certificate)

	return v, nil
}

func names(d *division.Division, idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = d.TeamAt(i).Name
	}

	return out
}

func countEliminated(vs []Verdict) int {
	c := 0
	for _, v := range vs {
		if v.Eliminated {
			c++
		}
	}

	return c
}
