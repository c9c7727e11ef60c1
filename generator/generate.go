package generator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/statmeta/cdigen/dataset"
	"github.com/statmeta/cdigen/metric"
	"github.com/statmeta/cdigen/missing"
	"github.com/statmeta/cdigen/model"
	"github.com/statmeta/cdigen/vocabulary/cdi"
)

// Default processing bounds.
const (
	DefaultChunkSize = 1000
	DefaultMaxRows   = 100
)

// Options controls one conversion run.
type Options struct {
	// SourceFilename is recorded on the physical dataset node.
	SourceFilename string

	// ChunkSize bounds how many rows a single pass materializes when all
	// rows are processed.
	ChunkSize int

	// ProcessAllRows selects between the full dataset and a bounded
	// preview of MaxRows rows.
	ProcessAllRows bool

	// MaxRows caps the preview window when ProcessAllRows is false.
	MaxRows int

	// Logger receives progress and diagnostics. Defaults to slog.Default.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.MaxRows <= 0 {
		o.MaxRows = DefaultMaxRows
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Generate converts a dataframe and its metadata into a complete document.
// It returns either an internally consistent document or an error; it never
// returns a partial document.
func Generate(frame *dataset.DataFrame, meta *model.Metadata, opts Options) (*model.Document, error) {
	start := time.Now()
	opts = opts.withDefaults()
	logger := opts.Logger.With("run_id", uuid.NewString())

	doc, err := generate(frame, meta, opts, logger)
	if err != nil {
		metric.ConversionsTotal.WithLabelValues(metric.OutcomeError).Inc()
		return nil, err
	}

	metric.ConversionsTotal.WithLabelValues(metric.OutcomeOK).Inc()
	metric.NodesGenerated.Add(float64(doc.Len()))
	metric.ConversionDuration.Observe(time.Since(start).Seconds())
	logger.Info("conversion complete",
		"nodes", doc.Len(),
		"rows", frame.Len(),
		"variables", len(meta.ColumnNames),
		"elapsed", time.Since(start))
	return doc, nil
}

func generate(frame *dataset.DataFrame, meta *model.Metadata, opts Options, logger *slog.Logger) (*model.Document, error) {
	if frame == nil {
		return nil, fmt.Errorf("generator: nil dataframe")
	}
	if meta == nil {
		return nil, fmt.Errorf("generator: nil metadata")
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if err := checkColumns(frame, meta); err != nil {
		return nil, err
	}

	rows := frame.Len()
	if !opts.ProcessAllRows && rows > opts.MaxRows {
		logger.Info("limiting processed rows",
			"total", rows,
			"max_rows", opts.MaxRows)
		rows = opts.MaxRows
	}

	b := &builder{
		meta:   meta,
		frame:  frame,
		spec:   specFor(meta.FileFormat),
		roles:  newRoleSets(meta),
		class:  missing.New(meta, logger),
		opts:   opts,
		logger: logger,
		rows:   rows,
	}

	var nodes []*model.Node
	nodes = append(nodes, b.physicalDataSetStructure())
	nodes = append(nodes, b.physicalDataSet())
	nodes = append(nodes, b.physicalRecordSegment())
	nodes = append(nodes, b.physicalSegmentLayout())
	nodes = append(nodes, b.valueMappings()...)
	nodes = append(nodes, b.valueMappingPositions()...)
	nodes = append(nodes, b.dataPoints()...)
	nodes = append(nodes, b.dataPointPositions()...)
	nodes = append(nodes, b.instanceValues()...)
	nodes = append(nodes, b.dataStore())
	nodes = append(nodes, b.logicalRecord())
	nodes = append(nodes, b.dataSet())
	nodes = append(nodes, b.dataStructure())
	nodes = append(nodes, b.componentNodes()...)
	nodes = append(nodes, b.primaryKey()...)
	nodes = append(nodes, b.instanceVariables()...)
	nodes = append(nodes, b.substantiveValueDomains()...)
	nodes = append(nodes, b.substantiveEnumerationDomains()...)
	nodes = append(nodes, b.sentinelValueDomains()...)
	nodes = append(nodes, b.sentinelEnumerationDomains()...)
	nodes = append(nodes, b.valueAndConceptDescriptions()...)
	nodes = append(nodes, b.componentPositions()...)
	nodes = append(nodes, b.substantiveConceptSchemes()...)
	nodes = append(nodes, b.sentinelConceptSchemes()...)
	nodes = append(nodes, b.concepts()...)

	return assemble(nodes), nil
}

// assemble partitions the generated nodes into the core vocabulary array and
// the SKOS partition.
func assemble(nodes []*model.Node) *model.Document {
	doc := &model.Document{Models: []*model.Node{}}
	for _, node := range nodes {
		if cdi.IsSKOS(node.Type) {
			doc.Included = append(doc.Included, node)
		} else {
			doc.Models = append(doc.Models, node)
		}
	}
	return doc
}

// checkColumns verifies the frame carries exactly the metadata's columns in
// the same order.
func checkColumns(frame *dataset.DataFrame, meta *model.Metadata) error {
	columns := frame.Columns()
	if len(columns) != len(meta.ColumnNames) {
		return fmt.Errorf("generator: dataframe has %d columns, metadata names %d",
			len(columns), len(meta.ColumnNames))
	}
	for i, name := range meta.ColumnNames {
		if columns[i] != name {
			return fmt.Errorf("generator: column %d is %q, metadata names %q",
				i, columns[i], name)
		}
	}
	return nil
}
