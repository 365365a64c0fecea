package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/raoulx24/yabu-vacuum/internal/config"
	"github.com/raoulx24/yabu-vacuum/internal/fs"
	"github.com/raoulx24/yabu-vacuum/internal/logging"
	"github.com/raoulx24/yabu-vacuum/internal/metrics"
	"github.com/raoulx24/yabu-vacuum/internal/retention"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

// newRootCmd builds the command. stdout receives only the pruning report;
// diagnostics go to stderr. A nil filesystem means the OS filesystem.
func newRootCmd(stdout, stderr io.Writer, filesystem fs.FS) *cobra.Command {
	opts := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "yabu-vacuum [flags] <file>... <keep>",
		Short: "Keep the most recently modified files and delete the rest",
		Long: `yabu-vacuum keeps the <keep> most recently modified files among those given
and deletes the others, oldest first. Paths are taken literally: no globbing
and no directory traversal. A negative <keep> deletes every file.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, stdout, stderr, filesystem)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// flags must precede the first path; everything after it is positional,
	// so a negative keep-count is not mistaken for a flag
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with logging and metrics settings")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrArgument, err)
	})

	return cmd
}

func run(ctx context.Context, opts *rootFlags, args []string, stdout, stderr io.Writer, filesystem fs.FS) error {
	inv, err := config.ParseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	logger := logging.New(cfg.Logging, stderr)
	defer logger.Close()
	log := logger.With("run_id", uuid.NewString())

	log.Debug("starting run", "version", version, "files", len(inv.Files), "keep", inv.Keep)

	start := time.Now()
	res, runErr := retention.New(filesystem, log, stdout).Apply(ctx, inv.Files, inv.Keep)
	took := time.Since(start)

	if cfg.Metrics.Textfile != "" {
		rec := metrics.New(cfg.Metrics.Job)
		rec.Observe(res, runErr, time.Now(), took)
		if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Error("metrics export failed", "path", cfg.Metrics.Textfile, "error", err)
			if runErr == nil {
				return err
			}
		}
	}

	if runErr != nil {
		log.Warn("run aborted", "deleted", len(res.Deleted), "error", runErr)
		return runErr
	}

	log.Info("run complete",
		"found", res.Found,
		"deleted", len(res.Deleted),
		"kept", len(res.Kept),
		"bytes_freed", res.BytesFreed,
		"took", took)
	return nil
}
