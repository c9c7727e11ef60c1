package generator

import (
	"github.com/statmeta/cdigen/dataset"
	"github.com/statmeta/cdigen/missing"
	"github.com/statmeta/cdigen/model"
	"github.com/statmeta/cdigen/vocabulary/cdi"
)

// Row-level generators walk the processed row window variable-major: all
// rows of the first column, then the second, and so on. Row indices are
// always global document indices, never chunk-local ones.

// valueMappings emits one mapping per variable whose formats list holds the
// data point ids of every processed row. An empty window yields empty lists.
func (b *builder) valueMappings() []*model.Node {
	nodes := make([]*model.Node, 0, len(b.meta.ColumnNames))
	for _, variable := range b.meta.ColumnNames {
		formats := make([]string, 0, b.rows)
		for row := 0; row < b.rows; row++ {
			formats = append(formats, cdi.DataPointID(row, variable))
		}
		nodes = append(nodes, model.NewNode(
			cdi.ValueMappingID(variable), cdi.ClassValueMapping).
			Set("defaultValue", "").
			Set("formats", formats))
	}
	return nodes
}

func (b *builder) valueMappingPositions() []*model.Node {
	nodes := make([]*model.Node, 0, len(b.meta.ColumnNames))
	for idx, variable := range b.meta.ColumnNames {
		nodes = append(nodes, model.NewNode(
			cdi.ValueMappingPositionID(variable), cdi.ClassValueMappingPosition).
			Set("value", idx).
			Set("indexes", cdi.ValueMappingID(variable)))
	}
	return nodes
}

func (b *builder) dataPoints() []*model.Node {
	nodes := make([]*model.Node, 0, b.rows*len(b.meta.ColumnNames))
	for _, variable := range b.meta.ColumnNames {
		ivRef := cdi.InstanceVariableID(variable)
		for row := 0; row < b.rows; row++ {
			nodes = append(nodes, model.NewNode(
				cdi.DataPointID(row, variable), cdi.ClassDataPoint).
				Set("isDescribedBy", ivRef).
				Set("has_DataPoint_OF_DataSet", b.spec.datasetID))
		}
	}
	return nodes
}

func (b *builder) dataPointPositions() []*model.Node {
	nodes := make([]*model.Node, 0, b.rows*len(b.meta.ColumnNames))
	for _, variable := range b.meta.ColumnNames {
		for row := 0; row < b.rows; row++ {
			nodes = append(nodes, model.NewNode(
				cdi.DataPointPositionID(row, variable), cdi.ClassDataPointPosition).
				Set("value", row).
				Set("indexes", cdi.DataPointID(row, variable)))
		}
	}
	return nodes
}

// instanceValuesRange emits the instance values of one variable over the
// global row interval [start, end), classifying the whole column slice in
// one pass.
func (b *builder) instanceValuesRange(variable string, start, end int) []*model.Node {
	column := b.frame.Column(variable)[start:end]
	domains := b.class.ClassifyColumn(variable, column)

	nodes := make([]*model.Node, 0, len(column))
	for local, value := range column {
		row := globalIndex(start, local)
		domainRef := cdi.SubstantiveValueDomainID(variable)
		if domains[local] == missing.Sentinel {
			domainRef = cdi.SentinelValueDomainID(variable)
		}
		nodes = append(nodes, model.NewNode(
			cdi.InstanceValueID(row, variable), cdi.ClassInstanceValue).
			Set("content", model.Typed(dataset.String(value))).
			Set("isStoredIn", cdi.DataPointID(row, variable)).
			Set("hasValueFrom_ValueDomain", domainRef))
	}
	return nodes
}

// globalIndex converts a chunk-local offset into the document-wide row
// index.
func globalIndex(chunkStart, local int) int {
	return chunkStart + local
}
