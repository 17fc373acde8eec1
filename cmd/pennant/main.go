// SPDX-License-Identifier: MIT

// Command pennant reports which teams of a division are mathematically
// eliminated, persists divisions, and serves reports over HTTP.
//
//	pennant report [-algorithm A] [-workers N] [-json] FILE
//	pennant import -division NAME [-db-driver D] [-db-dsn DSN] FILE
//	pennant serve  [-addr ADDR] [-db-driver D] [-db-dsn DSN]
//
// Defaults come from PENNANT_* environment variables (optionally via .env);
// flags override them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/pennant/config"
	"github.com/katalvlaran/pennant/logger"
)

const usage = `usage:
  pennant report [-algorithm A] [-workers N] [-json] FILE
  pennant import -division NAME [-db-driver D] [-db-dsn DSN] FILE
  pennant serve  [-addr ADDR] [-db-driver D] [-db-dsn DSN]
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// env bundles what every subcommand needs.
type env struct {
	cfg    config.Config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// run dispatches a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, cfgErr := config.Load()
	if cfgErr != nil && !errors.Is(cfgErr, config.ErrInvalidValue) {
		fmt.Fprintln(stderr, cfgErr)
		return 1
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	e := &env{
		cfg:    cfg,
		log:    logger.New(stderr, "pennant", level),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	if cfgErr != nil {
		e.log.Warn("config: using defaults for invalid settings", "error", cfgErr)
	}

	var cmd func(context.Context, *env, []string) error
	switch args[0] {
	case "report":
		cmd = runReport
	case "import":
		cmd = runImport
	case "serve":
		cmd = runServe
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "pennant: unknown command %q\n%s", args[0], usage)
		return 2
	}

	if err = cmd(ctx, e, args[1:]); err != nil {
		if err == errUsage {
			return 2
		}
		e.log.Error("command failed", "command", args[0], "error", err)
		return 1
	}

	return 0
}
