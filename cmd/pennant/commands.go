// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/server"
	"github.com/katalvlaran/pennant/store"
)

// errUsage marks a flag error already reported by the FlagSet.
var errUsage = errors.New("usage")

func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	return nil
}

// loadDivision reads FILE, or stdin for "-".
func loadDivision(e *env, fs *flag.FlagSet) (*division.Division, error) {
	if fs.NArg() != 1 {
		fmt.Fprintf(e.stderr, "%s: want exactly one FILE argument\n", fs.Name())
		return nil, errUsage
	}
	if path := fs.Arg(0); path != "-" {
		return division.Load(path)
	}

	return division.Parse(e.stdin)
}

func engineOptions(e *env, algorithm string, workers int) []elimination.Option {
	return []elimination.Option{
		elimination.WithAlgorithm(algorithm),
		elimination.WithWorkers(workers),
		elimination.WithLogger(e.log),
	}
}

// runReport prints the elimination report of one division file.
func runReport(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "report")
	algorithm := fs.String("algorithm", e.cfg.Algorithm, "max-flow algorithm: dinic, edmonds-karp or ford-fulkerson")
	workers := fs.Int("workers", e.cfg.Workers, "concurrent per-team checks (0 = one per CPU)")
	asJSON := fs.Bool("json", false, "print JSON instead of text")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	d, err := loadDivision(e, fs)
	if err != nil {
		return err
	}
	r, err := elimination.Compute(ctx, d, engineOptions(e, *algorithm, *workers)...)
	if err != nil {
		return err
	}
	if *asJSON {
		return elimination.WriteJSON(e.stdout, r)
	}

	return elimination.WriteText(e.stdout, r)
}

// runImport parses a division file, computes it and saves both.
func runImport(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "import")
	name := fs.String("division", "", "division name to save under (required)")
	driver := fs.String("db-driver", e.cfg.DBDriver, "database driver: sqlite or postgres")
	dsn := fs.String("db-dsn", e.cfg.DBDSN, "database DSN")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *name == "" {
		fmt.Fprintln(e.stderr, "import: -division is required")
		return errUsage
	}

	d, err := loadDivision(e, fs)
	if err != nil {
		return err
	}
	r, err := elimination.Compute(ctx, d, engineOptions(e, e.cfg.Algorithm, e.cfg.Workers)...)
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, *driver, *dsn, store.WithLogger(e.log))
	if err != nil {
		return err
	}
	defer st.Close()
	if err = st.SaveDivision(ctx, *name, d); err != nil {
		return err
	}
	if err = st.SaveVerdicts(ctx, *name, r.Verdicts()); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "imported %s: %d teams, %d eliminated\n", *name, d.TeamCount(), len(r.Eliminated()))

	return nil
}

// runServe serves the stored divisions until ctx is canceled.
func runServe(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "serve")
	addr := fs.String("addr", e.cfg.Addr, "listen address")
	driver := fs.String("db-driver", e.cfg.DBDriver, "database driver: sqlite or postgres")
	dsn := fs.String("db-dsn", e.cfg.DBDSN, "database DSN")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	st, err := store.Open(ctx, *driver, *dsn, store.WithLogger(e.log))
	if err != nil {
		return err
	}
	defer st.Close()

	src := server.NewStoreSource(st, engineOptions(e, e.cfg.Algorithm, e.cfg.Workers)...)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.New(src, server.WithLogger(e.log), server.WithDebug(e.cfg.Debug)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return serve(ctx, e, srv)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, e *env, srv *http.Server) error {
	errorCh := make(chan error, 1)
	go func() {
		e.log.Info("server starting", "addr", srv.Addr)
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		e.log.Info("server stopped")

		return nil
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}
