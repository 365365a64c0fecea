// Package main implements yabu-vacuum: keep the N most recently modified files
// of those given on the command line and delete the rest.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/raoulx24/yabu-vacuum/internal/config"
	"github.com/raoulx24/yabu-vacuum/internal/retention"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd(os.Stdout, os.Stderr, nil).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "yabu-vacuum: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error kinds to distinct process exit statuses.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrArgument):
		return 2
	case errors.Is(err, retention.ErrAccess):
		return 3
	case errors.Is(err, retention.ErrDeletion):
		return 4
	default:
		return 1
	}
}
