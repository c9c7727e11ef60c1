package generator

import (
	"time"

	"github.com/statmeta/cdigen/metric"
	"github.com/statmeta/cdigen/model"
)

// instanceValues produces every InstanceValue of the processed window.
// Small windows run in one pass; full-dataset runs larger than the chunk
// size are split into row chunks to bound peak memory. Both paths yield the
// same nodes in the same order: per-variable accumulators keep the chunked
// output variable-major exactly like the direct pass.
func (b *builder) instanceValues() []*model.Node {
	if !b.opts.ProcessAllRows || b.rows <= b.opts.ChunkSize {
		var nodes []*model.Node
		for _, variable := range b.meta.ColumnNames {
			nodes = append(nodes, b.instanceValuesRange(variable, 0, b.rows)...)
		}
		return nodes
	}

	chunkCount := (b.rows + b.opts.ChunkSize - 1) / b.opts.ChunkSize
	b.logger.Info("processing rows in chunks",
		"rows", b.rows,
		"chunk_size", b.opts.ChunkSize,
		"chunks", chunkCount)

	perVariable := make(map[string][]*model.Node, len(b.meta.ColumnNames))
	for chunk := 0; chunk < chunkCount; chunk++ {
		start := chunk * b.opts.ChunkSize
		end := start + b.opts.ChunkSize
		if end > b.rows {
			end = b.rows
		}

		chunkStart := time.Now()
		for _, variable := range b.meta.ColumnNames {
			perVariable[variable] = append(perVariable[variable],
				b.instanceValuesRange(variable, start, end)...)
		}
		metric.ChunksProcessed.Inc()
		b.logger.Debug("chunk processed",
			"chunk", chunk+1,
			"chunks", chunkCount,
			"start", start,
			"end", end,
			"elapsed", time.Since(chunkStart))
	}

	var nodes []*model.Node
	for _, variable := range b.meta.ColumnNames {
		nodes = append(nodes, perVariable[variable]...)
	}
	return nodes
}
