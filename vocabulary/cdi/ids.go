package cdi

import (
	"fmt"
	"strconv"
)

// Fixed structural anchors. Exactly one node carries each of these ids in
// every document.
const (
	PhysicalDataSetStructureID = "#physicalDataSetStructure"
	PhysicalDataSetID          = "#physicalDataSet"
	PhysicalRecordSegmentID    = "#physicalRecordSegment"
	PhysicalSegmentLayoutID    = "#physicalSegmentLayout"
	DataStoreID                = "#dataStore"
	LogicalRecordID            = "#logicalRecord"
	PrimaryKeyID               = "#primaryKey"
)

// Format-selected dataset and structure anchors.
const (
	WideDataSetID           = "#wideDataSet"
	WideDataStructureID     = "#wideDataStructure"
	KeyValueDataStoreID     = "#keyValueDataStore"
	KeyValueStructureID     = "#keyValueStructure"
	DimensionalDataSetID    = "#dimensionalDataSet"
	DimensionalDataStructID = "#dimensionalDataStructure"
)

// Component id prefixes. The identifier/measure pair varies by file format;
// the rest are format-independent.
const (
	PrefixIdentifierComponent = "identifierComponent"
	PrefixDimensionComponent  = "dimensionComponent"
	PrefixMeasureComponent    = "measureComponent"
	PrefixQualifiedMeasure    = "qualifiedMeasure"
	PrefixAttributeComponent  = "attributeComponent"
	PrefixContextualComponent = "contextualComponent"
	PrefixSyntheticID         = "syntheticIdComponent"
	PrefixVariableValue       = "variableValueComponent"
	PrefixVariableDescriptor  = "variableDescriptorComponent"
)

// ComponentID builds a structural component id from its prefix and variable.
func ComponentID(prefix, variable string) string {
	return "#" + prefix + "-" + variable
}

// ComponentPositionID is keyed by the single running counter spanning all
// components of the structure, in column order.
func ComponentPositionID(position int) string {
	return "#componentPosition-" + strconv.Itoa(position)
}

// PrimaryKeyComponentID identifies the primary-key member for a variable.
func PrimaryKeyComponentID(variable string) string {
	return "#primaryKeyComponent-" + variable
}

// InstanceVariableID identifies the instance variable for a column.
func InstanceVariableID(variable string) string {
	return "#instanceVariable-" + variable
}

// Value-domain ids. Each variable has a substantive side and, when it
// declares sentinel values, a sentinel side.
func SubstantiveValueDomainID(variable string) string {
	return "#substantiveValueDomain-" + variable
}

func SentinelValueDomainID(variable string) string {
	return "#sentinelValueDomain-" + variable
}

func SubstantiveEnumerationDomainID(variable string) string {
	return "#substantiveEnumerationDomain-" + variable
}

func SentinelEnumerationDomainID(variable string) string {
	return "#sentinelEnumerationDomain-" + variable
}

func SubstantiveDescriptionID(variable string) string {
	return "#substantiveValueAndConceptDescription-" + variable
}

func SentinelDescriptionID(variable string) string {
	return "#sentinelValueAndConceptDescription-" + variable
}

// Concept-scheme ids for enumerated (value-labelled) variables.
func SubstantiveConceptSchemeID(variable string) string {
	return "#substantiveConceptScheme-" + variable
}

func SentinelConceptSchemeID(variable string) string {
	return "#sentinelConceptScheme-" + variable
}

// ConceptID identifies the SKOS concept for one labelled value of a variable.
func ConceptID(variable, value string) string {
	return "#" + variable + "-concept-" + value
}

// Row-level ids carry the global (document-wide) row index, never a
// chunk-local one.
func DataPointID(row int, variable string) string {
	return fmt.Sprintf("#dataPoint-%d-%s", row, variable)
}

func DataPointPositionID(row int, variable string) string {
	return fmt.Sprintf("#dataPointPosition-%d-%s", row, variable)
}

func InstanceValueID(row int, variable string) string {
	return fmt.Sprintf("#instanceValue-%d-%s", row, variable)
}

func ValueMappingID(variable string) string {
	return "#valueMapping-" + variable
}

func ValueMappingPositionID(variable string) string {
	return "#valueMappingPosition-" + variable
}
