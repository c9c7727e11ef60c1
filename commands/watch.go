package commands

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch a directory and convert dataset files as they appear",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.Watch.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				return fmt.Errorf("no watch directory: pass one or set watch.dir in the config")
			}

			extensions := a.cfg.Watch.FileExtensions
			if len(extensions) == 0 {
				extensions = a.readers.Extensions()
			}

			watcher, err := newFileWatcher(dir, a.cfg.Watch.DebounceDelay, extensions, a.logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := watcher.Start(ctx); err != nil {
				return err
			}
			defer watcher.Stop()

			return a.runWatchLoop(ctx, watcher)
		},
	}
	return cmd
}

// runWatchLoop converts every changed file until the context is cancelled.
// A single failing file is logged and skipped, never stops the loop.
func (a *app) runWatchLoop(ctx context.Context, watcher *fileWatcher) error {
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("watch stopped")
			return nil
		case path, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			out := filepath.Join(a.cfg.Output.Dir, outputName(path))
			if err := a.convertFile(path, out); err != nil {
				a.logger.Error("conversion failed", "file", path, "error", err)
			}
		}
	}
}
