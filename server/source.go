// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/store"
)

// ErrDivisionNotFound is returned by a Source for an unknown division name.
var ErrDivisionNotFound = errors.New("server: division not found")

// Source supplies computed reports by division name.
type Source interface {
	Divisions(ctx context.Context) ([]string, error)
	Report(ctx context.Context, name string) (*elimination.Report, error)
}

// StaticSource serves a fixed set of precomputed reports.
type StaticSource map[string]*elimination.Report

// Divisions lists the division names in ascending order.
func (s StaticSource) Divisions(context.Context) ([]string, error) {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Report returns the report of name.
func (s StaticSource) Report(_ context.Context, name string) (*elimination.Report, error) {
	r, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDivisionNotFound, name)
	}

	return r, nil
}

// DivisionLoader is the part of *store.Store a StoreSource needs.
type DivisionLoader interface {
	Divisions(ctx context.Context) ([]string, error)
	LoadDivision(ctx context.Context, name string) (*division.Division, error)
	LoadVerdicts(ctx context.Context, name string) ([]elimination.Verdict, error)
}

// StoreSource loads divisions on first use and caches their reports.
// Saved verdicts are reused when they still match the division; otherwise
// the report is computed with the configured options.
type StoreSource struct {
	loader DivisionLoader
	opts   []elimination.Option

	mu    sync.Mutex
	cache map[string]*elimination.Report
}

// NewStoreSource wraps loader; opts are passed to elimination.Compute.
func NewStoreSource(loader DivisionLoader, opts ...elimination.Option) *StoreSource {
	return &StoreSource{loader: loader, opts: opts, cache: make(map[string]*elimination.Report)}
}

// Divisions lists the divisions known to the loader.
func (s *StoreSource) Divisions(ctx context.Context) ([]string, error) {
	return s.loader.Divisions(ctx)
}

// Report returns the cached report of name, loading it on a miss.
// The lock is held during the load so each division is computed once.
func (s *StoreSource) Report(ctx context.Context, name string) (*elimination.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.cache[name]; ok {
		return r, nil
	}

	d, err := s.loader.LoadDivision(ctx, name)
	if errors.Is(err, store.ErrDivisionNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrDivisionNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	var r *elimination.Report
	if vs, verr := s.loader.LoadVerdicts(ctx, name); verr == nil && len(vs) > 0 {
		r, _ = elimination.FromVerdicts(d, vs)
	}
	if r == nil {
		if r, err = elimination.Compute(ctx, d, s.opts...); err != nil {
			return nil, err
		}
	}
	s.cache[name] = r

	return r, nil
}

// Invalidate drops the cached report of name.
func (s *StoreSource) Invalidate(name string) {
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
}
