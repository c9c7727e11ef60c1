// Package commands implements the cdigen command line interface.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/statmeta/cdigen/config"
	"github.com/statmeta/cdigen/source"
)

// Version is the binary version, overridden at build time.
var Version = "0.1.0"

// app carries the state shared by all subcommands after the persistent
// pre-run: the resolved configuration, the logger, and the reader registry.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	readers *source.Registry
}

// NewRoot builds the root command with all subcommands attached.
func NewRoot() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	a := &app{readers: source.DefaultRegistry}

	root := &cobra.Command{
		Use:           "cdigen",
		Short:         "Convert tabular datasets to DDI-CDI JSON-LD",
		Long:          "cdigen converts tabular and array-structured dataset files into DDI-CDI JSON-LD metadata documents.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(a.logger)

			if configPath != "" {
				cfg, err := config.LoadFromFile(configPath)
				if err != nil {
					return err
				}
				if err := cfg.Validate(); err != nil {
					return err
				}
				a.cfg = cfg
				return nil
			}

			cfg, err := config.NewLoader(a.logger).Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: layered cdigen.yaml lookup)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newWatchCmd(a))

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRoot().Execute()
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
