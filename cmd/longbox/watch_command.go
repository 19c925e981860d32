package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"longbox/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [root...]",
		Short: "Watch library roots and index archives as they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Watch.Enabled {
				return fmt.Errorf("watching is disabled; set watch.enabled = true in %s", ctx.configPath)
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			scanner, store, err := ctx.openScanner()
			if err != nil {
				return err
			}
			defer store.Close()

			roots := args
			if len(roots) == 0 {
				roots = cfg.Library.Roots
			}
			if len(roots) == 0 {
				return fmt.Errorf("no library roots configured; pass roots or set library.roots")
			}

			watcher, err := watch.New(cfg, scanner, logger)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %d root(s); press Ctrl-C to stop\n", len(roots))
			if err := watcher.Run(runCtx, roots); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
