package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/preflightci/preflight/internal/checks/alphaspec"
	"github.com/preflightci/preflight/internal/runner"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Watch files or directories and re-run checks on change",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, paths []string) {
		args := newArgs()
		if args.Mode == "" {
			args.Mode = alphaspec.ModeDevelopment
		}
		// writing fixes back would retrigger the watcher
		args.Fix = false

		session := runner.NewSession(args, os.Stdout, logger)
		registerAllChecks(session)

		watcher, err := runner.NewWatcher(session, logger, lintScanner().Match)
		if err != nil {
			logger.Fatal("cannot create watcher", zap.Error(err))
		}
		if err := watcher.Add(paths...); err != nil {
			logger.Fatal("cannot watch paths", zap.Error(err))
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Fatal("watch failed", zap.Error(err))
		}
	},
}
