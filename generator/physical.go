package generator

import (
	"strconv"
	"strings"

	"github.com/statmeta/cdigen/model"
	"github.com/statmeta/cdigen/vocabulary/cdi"
)

func (b *builder) physicalDataSetStructure() *model.Node {
	return model.NewNode(cdi.PhysicalDataSetStructureID, cdi.ClassPhysicalDataSetStructure).
		Set("correspondsTo_DataStructure", b.spec.structureID).
		Set("structures", cdi.PhysicalDataSetID)
}

func (b *builder) physicalDataSet() *model.Node {
	return model.NewNode(cdi.PhysicalDataSetID, cdi.ClassPhysicalDataSet).
		Set("allowsDuplicates", false).
		Set("physicalFileName", b.opts.SourceFilename).
		Set("correspondsTo_DataSet", b.spec.datasetID).
		Set("formats", cdi.DataStoreID).
		Set("has_PhysicalRecordSegment", []string{cdi.PhysicalRecordSegmentID})
}

// physicalRecordSegment lists every data point position of the processed row
// window, variable-major in column order.
func (b *builder) physicalRecordSegment() *model.Node {
	positions := make([]string, 0, b.rows*len(b.meta.ColumnNames))
	for _, variable := range b.meta.ColumnNames {
		for row := 0; row < b.rows; row++ {
			positions = append(positions, cdi.DataPointPositionID(row, variable))
		}
	}
	return model.NewNode(cdi.PhysicalRecordSegmentID, cdi.ClassPhysicalRecordSegment).
		Set("mapsTo", cdi.LogicalRecordID).
		Set("has_PhysicalSegmentLayout", cdi.PhysicalSegmentLayoutID).
		Set("has_DataPointPosition", positions)
}

func (b *builder) physicalSegmentLayout() *model.Node {
	delimited := false
	delimiter := ""
	switch {
	case b.meta.FileFormat == model.FormatTabular && b.meta.Delimiter != "":
		delimited = true
		delimiter = b.meta.Delimiter
	case b.meta.FileFormat == model.FormatKeyValue && keyValueDecomposed(b.meta):
		// Hierarchical keys were flattened into key-1..key-n columns with
		// "/" joining the original path segments.
		delimited = true
		delimiter = "/"
	}

	mappings := make([]string, 0, len(b.meta.ColumnNames))
	for _, variable := range b.meta.ColumnNames {
		mappings = append(mappings, cdi.ValueMappingPositionID(variable))
	}

	return model.NewNode(cdi.PhysicalSegmentLayoutID, cdi.ClassPhysicalSegmentLayout).
		Set("allowsDuplicates", false).
		Set("formats", cdi.LogicalRecordID).
		Set("isDelimited", delimited).
		Set("isFixedWidth", false).
		Set("delimiter", delimiter).
		Set("has_ValueMappingPosition", mappings)
}

// keyValueDecomposed reports whether the columns follow the decomposed
// hierarchical-key pattern: at least one key-N column plus a value column.
func keyValueDecomposed(meta *model.Metadata) bool {
	keyColumns := false
	valueColumn := false
	for _, name := range meta.ColumnNames {
		if suffix, ok := strings.CutPrefix(name, "key-"); ok {
			if _, err := strconv.Atoi(suffix); err == nil {
				keyColumns = true
			}
		}
		if name == "value" {
			valueColumn = true
		}
	}
	return keyColumns && valueColumn
}

func (b *builder) dataStore() *model.Node {
	return model.NewNode(cdi.DataStoreID, cdi.ClassDataStore).
		Set("allowsDuplicates", false).
		Set("recordCount", b.meta.NumberRows).
		Set("has_LogicalRecord", []string{cdi.LogicalRecordID})
}

func (b *builder) logicalRecord() *model.Node {
	variables := make([]string, 0, len(b.meta.ColumnNames))
	for _, variable := range b.meta.ColumnNames {
		variables = append(variables, cdi.InstanceVariableID(variable))
	}
	return model.NewNode(cdi.LogicalRecordID, cdi.ClassLogicalRecord).
		Set("organizes", b.spec.datasetID).
		Set("has_InstanceVariable", variables)
}
