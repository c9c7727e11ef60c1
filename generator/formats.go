package generator

import (
	"github.com/statmeta/cdigen/model"
	"github.com/statmeta/cdigen/vocabulary/cdi"
)

// formatSpec fixes every format-dependent choice in one place: which dataset
// and structure classes anchor the document, which component classes bind
// identifier and measure roles, and whether a primary key is generated.
type formatSpec struct {
	datasetClass string
	datasetID    string

	structureClass string
	structureID    string

	identifierClass  string
	identifierPrefix string

	measureClass  string
	measurePrefix string

	// hasMeasure is false for key-value data, which binds values through
	// the variable-value component family instead of measures.
	hasMeasure bool

	// hasPrimaryKey gates PrimaryKey generation when identifier variables
	// exist. Key-value data never carries a primary key even though its
	// identifier components are still emitted.
	hasPrimaryKey bool
}

var formatSpecs = map[model.FileFormat]formatSpec{
	model.FormatTabular: {
		datasetClass:     cdi.ClassWideDataSet,
		datasetID:        cdi.WideDataSetID,
		structureClass:   cdi.ClassWideDataStructure,
		structureID:      cdi.WideDataStructureID,
		identifierClass:  cdi.ClassIdentifierComponent,
		identifierPrefix: cdi.PrefixIdentifierComponent,
		measureClass:     cdi.ClassMeasureComponent,
		measurePrefix:    cdi.PrefixMeasureComponent,
		hasMeasure:       true,
		hasPrimaryKey:    true,
	},
	model.FormatKeyValue: {
		datasetClass:     cdi.ClassKeyValueDataStore,
		datasetID:        cdi.KeyValueDataStoreID,
		structureClass:   cdi.ClassKeyValueStructure,
		structureID:      cdi.KeyValueStructureID,
		identifierClass:  cdi.ClassIdentifierComponent,
		identifierPrefix: cdi.PrefixIdentifierComponent,
		hasMeasure:       false,
		hasPrimaryKey:    false,
	},
	model.FormatDimensional: {
		datasetClass:     cdi.ClassDimensionalDataSet,
		datasetID:        cdi.DimensionalDataSetID,
		structureClass:   cdi.ClassDimensionalDataStructure,
		structureID:      cdi.DimensionalDataStructID,
		identifierClass:  cdi.ClassDimensionComponent,
		identifierPrefix: cdi.PrefixDimensionComponent,
		measureClass:     cdi.ClassQualifiedMeasure,
		measurePrefix:    cdi.PrefixQualifiedMeasure,
		hasMeasure:       true,
		hasPrimaryKey:    true,
	},
}

// specFor returns the dispatch entry for a file format. Formats are validated
// before generation, so unknown values fall back to the tabular entry rather
// than branching mid-generation.
func specFor(format model.FileFormat) formatSpec {
	if spec, ok := formatSpecs[format]; ok {
		return spec
	}
	return formatSpecs[model.FormatTabular]
}
