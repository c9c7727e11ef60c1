package cdi

import "strings"

// ContextURL is the published DDI-CDI JSON-LD context document.
const ContextURL = "https://docs.ddialliance.org/DDI-CDI/1.0/model/encoding/json-ld/ddi-cdi.jsonld"

// SKOSNamespace is the SKOS core namespace, declared under the "skos" prefix
// in the document context.
const SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"

// Physical-description class names.
const (
	// ClassPhysicalDataSetStructure links a physical dataset to the
	// logical data structure it realizes.
	ClassPhysicalDataSetStructure = "PhysicalDataSetStructure"

	// ClassPhysicalDataSet describes the source file as stored.
	ClassPhysicalDataSet = "PhysicalDataSet"

	// ClassPhysicalRecordSegment is the single record segment covering
	// every data point position in the file.
	ClassPhysicalRecordSegment = "PhysicalRecordSegment"

	// ClassPhysicalSegmentLayout carries the delimiter/fixed-width facts
	// of the segment.
	ClassPhysicalSegmentLayout = "PhysicalSegmentLayout"

	// ClassDataStore is the logical store with the full record count.
	ClassDataStore = "DataStore"

	// ClassLogicalRecord organizes the instance variables of the dataset.
	ClassLogicalRecord = "LogicalRecord"
)

// Dataset and structure class names, selected by file format.
const (
	ClassWideDataSet       = "WideDataSet"
	ClassWideDataStructure = "WideDataStructure"

	ClassKeyValueDataStore = "KeyValueDataStore"
	ClassKeyValueStructure = "KeyValueStructure"

	ClassDimensionalDataSet       = "DimensionalDataSet"
	ClassDimensionalDataStructure = "DimensionalDataStructure"
)

// Structural component class names.
const (
	ClassIdentifierComponent = "IdentifierComponent"
	ClassDimensionComponent  = "DimensionComponent"
	ClassMeasureComponent    = "MeasureComponent"
	ClassQualifiedMeasure    = "QualifiedMeasure"
	ClassAttributeComponent  = "AttributeComponent"

	// Key-value only components.
	ClassContextualComponent         = "ContextualComponent"
	ClassSyntheticIDComponent        = "SyntheticIdComponent"
	ClassVariableValueComponent      = "VariableValueComponent"
	ClassVariableDescriptorComponent = "VariableDescriptorComponent"

	ClassComponentPosition   = "ComponentPosition"
	ClassPrimaryKey          = "PrimaryKey"
	ClassPrimaryKeyComponent = "PrimaryKeyComponent"
)

// Variable and value-domain class names.
const (
	ClassInstanceVariable           = "InstanceVariable"
	ClassSubstantiveValueDomain     = "SubstantiveValueDomain"
	ClassSentinelValueDomain        = "SentinelValueDomain"
	ClassEnumerationDomain          = "EnumerationDomain"
	ClassValueAndConceptDescription = "ValueAndConceptDescription"
)

// Row-level class names. These scale with rows x columns.
const (
	ClassDataPoint            = "DataPoint"
	ClassDataPointPosition    = "DataPointPosition"
	ClassInstanceValue        = "InstanceValue"
	ClassValueMapping         = "ValueMapping"
	ClassValueMappingPosition = "ValueMappingPosition"
)

// Nested structured-value class names. These appear as @type of embedded
// property values, never as graph nodes of their own.
const (
	ClassControlledVocabularyEntry = "ControlledVocabularyEntry"
	ClassTypedString               = "TypedString"
	ClassObjectName                = "ObjectName"
	ClassLabelForDisplay           = "LabelForDisplay"
	ClassInternationalString       = "InternationalString"
	ClassLanguageString            = "LanguageString"
)

// SKOS class names, partitioned into the @included array of the document.
const (
	ClassConceptScheme = "skos:ConceptScheme"
	ClassConcept       = "skos:Concept"
)

// IsSKOS reports whether a class name belongs to the SKOS vocabulary
// partition rather than the DDI-CDI core vocabulary.
func IsSKOS(class string) bool {
	return strings.HasPrefix(class, "skos:")
}
