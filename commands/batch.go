package commands

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <pattern>",
		Short: "Convert every dataset file matching a glob pattern",
		Long:  "Convert every file matching a doublestar glob pattern, e.g. 'data/**/*.csv'. Files that fail are reported and skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := doublestar.FilepathGlob(args[0])
			if err != nil {
				return fmt.Errorf("bad pattern %q: %w", args[0], err)
			}
			if len(matches) == 0 {
				return fmt.Errorf("no files match %q", args[0])
			}

			converted := 0
			failed := 0
			for _, path := range matches {
				if a.readers.Get(path) == nil {
					a.logger.Debug("skipping unsupported file", "file", path)
					continue
				}
				out := filepath.Join(a.cfg.Output.Dir, outputName(path))
				if err := a.convertFile(path, out); err != nil {
					a.logger.Error("conversion failed", "file", path, "error", err)
					failed++
					continue
				}
				converted++
			}

			a.logger.Info("batch complete", "converted", converted, "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d conversions failed", failed, converted+failed)
			}
			return nil
		},
	}
	return cmd
}
