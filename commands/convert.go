package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/statmeta/cdigen/export"
	"github.com/statmeta/cdigen/generator"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		outputPath string
		allRows    bool
		maxRows    int
		chunkSize  int
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a dataset file to a DDI-CDI document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if outputPath == "" {
				outputPath = filepath.Join(a.cfg.Output.Dir, outputName(path))
			}
			if cmd.Flags().Changed("all-rows") {
				a.cfg.Convert.ProcessAllRows = allRows
			}
			if cmd.Flags().Changed("max-rows") {
				a.cfg.Convert.MaxRows = maxRows
			}
			if cmd.Flags().Changed("chunk-size") {
				a.cfg.Convert.ChunkSize = chunkSize
			}
			return a.convertFile(path, outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: <output.dir>/<name>.jsonld)")
	cmd.Flags().BoolVar(&allRows, "all-rows", false, "process every row instead of a preview")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "preview row cap when not processing all rows")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "rows per chunk when processing all rows")

	return cmd
}

// convertFile runs one file through the reader, the generator, and the
// exporter.
func (a *app) convertFile(path, outputPath string) error {
	result, err := a.readers.ReadFile(path)
	if err != nil {
		return err
	}

	a.logger.Info("converting dataset",
		"file", path,
		"rows", result.Rows,
		"variables", len(result.Meta.ColumnNames),
		"format", string(result.Meta.FileFormat))

	doc, err := generator.Generate(result.Frame, result.Meta, generator.Options{
		SourceFilename: result.Filename,
		ChunkSize:      a.cfg.Convert.ChunkSize,
		ProcessAllRows: a.cfg.Convert.ProcessAllRows,
		MaxRows:        a.cfg.Convert.MaxRows,
		Logger:         a.logger,
	})
	if err != nil {
		return fmt.Errorf("convert %s: %w", path, err)
	}

	if err := export.WriteFile(outputPath, doc, a.cfg.Output.Pretty); err != nil {
		return err
	}
	a.logger.Info("document written", "output", outputPath, "nodes", doc.Len())
	return nil
}

// outputName derives the output filename from the source path.
func outputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".jsonld"
}
