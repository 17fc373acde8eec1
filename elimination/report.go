// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	"github.com/katalvlaran/pennant/division"
)

// Report holds one Verdict per team of a Division. It is immutable and safe
// for concurrent readers; every accessor returns copies.
type Report struct {
	d        *division.Division
	verdicts []Verdict // division order
}

// FromVerdicts rebuilds a Report from previously computed verdicts, for
// example ones loaded from storage. The verdicts must name every team of d
// exactly once; they are reordered into division order.
func FromVerdicts(d *division.Division, verdicts []Verdict) (*Report, error) {
	if len(verdicts) != d.TeamCount() {
		return nil, fmt.Errorf("%w: %d verdicts for %d teams", ErrVerdictMismatch, len(verdicts), d.TeamCount())
	}
	out := make([]Verdict, d.TeamCount())
	seen := make([]bool, d.TeamCount())
	for _, v := range verdicts {
		i, err := d.Index(v.Team)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrVerdictMismatch, err)
		}
		if seen[i] {
			return nil, fmt.Errorf("%w: duplicate verdict for %q", ErrVerdictMismatch, v.Team)
		}
		if v.Eliminated != (len(v.Certificate) > 0) {
			return nil, fmt.Errorf("%w: %q eliminated=%t with %d certificate teams",
				ErrVerdictMismatch, v.Team, v.Eliminated, len(v.Certificate))
		}
		seen[i] = true
		out[i] = v.clone()
	}

	return &Report{d: d, verdicts: out}, nil
}

// Division returns the division the report was computed for.
func (r *Report) Division() *division.Division { return r.d }

// Verdict returns the verdict of name.
func (r *Report) Verdict(name string) (Verdict, error) {
	i, err := r.d.Index(name)
	if err != nil {
		return Verdict{}, err
	}

	return r.verdicts[i].clone(), nil
}

// Verdicts returns every verdict in division order.
func (r *Report) Verdicts() []Verdict {
	out := make([]Verdict, len(r.verdicts))
	for i, v := range r.verdicts {
		out[i] = v.clone()
	}

	return out
}

// IsEliminated reports whether name is mathematically eliminated.
func (r *Report) IsEliminated(name string) (bool, error) {
	i, err := r.d.Index(name)
	if err != nil {
		return false, err
	}

	return r.verdicts[i].Eliminated, nil
}

// CertificateOfElimination returns the rivals that eliminate name, in
// division order, or nil when name is not eliminated.
func (r *Report) CertificateOfElimination(name string) ([]string, error) {
	v, err := r.Verdict(name)
	if err != nil {
		return nil, err
	}

	return v.Certificate, nil
}

// Eliminated returns the names of all eliminated teams in division order.
func (r *Report) Eliminated() []string {
	var out []string
	for _, v := range r.verdicts {
		if v.Eliminated {
			out = append(out, v.Team)
		}
	}

	return out
}

// Wins passes through to the division.
func (r *Report) Wins(name string) (int, error) { return r.d.Wins(name) }

// Losses passes through to the division.
func (r *Report) Losses(name string) (int, error) { return r.d.Losses(name) }

// Remaining passes through to the division.
func (r *Report) Remaining(name string) (int, error) { return r.d.Remaining(name) }

// GamesBetween passes through to the division.
func (r *Report) GamesBetween(a, b string) (int, error) { return r.d.GamesBetween(a, b) }

// Standing joins a team's standings row with its verdict.
type Standing struct {
	Name        string   `json:"name"`
	Wins        int      `json:"wins"`
	Losses      int      `json:"losses"`
	Remaining   int      `json:"remaining"`
	Eliminated  bool     `json:"eliminated"`
	Trivial     bool     `json:"trivial,omitempty"`
	Certificate []string `json:"certificate,omitempty"`
}

// Standings returns every team with its verdict, in division order.
func (r *Report) Standings() []Standing {
	out := make([]Standing, len(r.verdicts))
	for i, v := range r.verdicts {
		out[i] = standing(r.d.TeamAt(i), v.clone())
	}

	return out
}

// Standing returns the joined row of name.
func (r *Report) Standing(name string) (Standing, error) {
	i, err := r.d.Index(name)
	if err != nil {
		return Standing{}, err
	}

	return standing(r.d.TeamAt(i), r.verdicts[i].clone()), nil
}

func standing(t division.Team, v Verdict) Standing {
	return Standing{
		Name:        t.Name,
		Wins:        t.Wins,
		Losses:      t.Losses,
		Remaining:   t.Remaining,
		Eliminated:  v.Eliminated,
		Trivial:     v.Trivial,
		Certificate: v.Certificate,
	}
}
