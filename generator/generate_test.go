package generator_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/statmeta/cdigen/dataset"
	"github.com/statmeta/cdigen/export"
	"github.com/statmeta/cdigen/generator"
	"github.com/statmeta/cdigen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tabularFixture(t *testing.T) (*dataset.DataFrame, *model.Metadata) {
	t.Helper()
	frame, err := dataset.FromColumns([]string{"id", "age", "income"}, map[string][]dataset.Value{
		"id":     {1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		"age":    {25, 98, 34, 99, 41, 52, 98, 23, 67, 30},
		"income": {1200.5, 900.0, 1500.25, 0.0, 2100.75, 1800.0, 0.0, 990.5, 3100.0, 1250.0},
	})
	require.NoError(t, err)

	meta := &model.Metadata{
		ColumnNames: []string{"id", "age", "income"},
		ColumnLabels: map[string]string{
			"age":    "Age of respondent",
			"income": "Monthly income",
		},
		VariableTypes: map[string]string{
			"id":     "int64",
			"age":    "int64",
			"income": "float64",
		},
		VariableMeasure: map[string]string{
			"id":     "nominal",
			"age":    "scale",
			"income": "scale",
		},
		VariableValueLabels: map[string]map[string]string{
			"age": {
				"25": "Twenty-five",
				"98": "Refused",
				"99": "Don't know",
			},
		},
		MissingRanges: map[string][]model.MissingRange{
			"age": {{Lo: 98, Hi: 99}},
		},
		MissingUserValues: map[string][]string{},
		IdentifierVars:    []string{"id"},
		MeasureVars:       []string{"age", "income"},
		FileFormat:        model.FormatTabular,
		NumberRows:        10,
		Delimiter:         ",",
	}
	return frame, meta
}

func generate(t *testing.T, frame *dataset.DataFrame, meta *model.Metadata, opts generator.Options) *model.Document {
	t.Helper()
	doc, err := generator.Generate(frame, meta, opts)
	require.NoError(t, err)
	return doc
}

func allNodes(doc *model.Document) []*model.Node {
	return append(append([]*model.Node{}, doc.Models...), doc.Included...)
}

func nodesOfType(doc *model.Document, class string) []*model.Node {
	var out []*model.Node
	for _, n := range allNodes(doc) {
		if n.Type == class {
			out = append(out, n)
		}
	}
	return out
}

func nodeByID(t *testing.T, doc *model.Document, id string) *model.Node {
	t.Helper()
	n, ok := doc.Node(id)
	require.True(t, ok, "node %s not found", id)
	return n
}

func stringList(t *testing.T, n *model.Node, key string) []string {
	t.Helper()
	v, ok := n.Get(key)
	require.True(t, ok, "node %s has no %s", n.ID, key)
	list, ok := v.([]string)
	require.True(t, ok, "node %s property %s is %T, not []string", n.ID, key, v)
	return list
}

func TestIdentifierUniqueness(t *testing.T) {
	frame, meta := tabularFixture(t)
	doc := generate(t, frame, meta, generator.Options{ProcessAllRows: true})

	seen := make(map[string]bool)
	for _, n := range allNodes(doc) {
		assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
}

func TestReferentialIntegrity(t *testing.T) {
	frame, meta := tabularFixture(t)
	for _, format := range []model.FileFormat{model.FormatTabular, model.FormatKeyValue, model.FormatDimensional} {
		t.Run(string(format), func(t *testing.T) {
			m := *meta
			m.FileFormat = format
			doc := generate(t, frame, &m, generator.Options{ProcessAllRows: true})

			for _, n := range allNodes(doc) {
				for _, p := range n.Properties() {
					for _, ref := range fragmentRefs(p.Value) {
						_, ok := doc.Node(ref)
						assert.True(t, ok, "node %s property %s references missing %s", n.ID, p.Key, ref)
					}
				}
			}
		})
	}
}

// fragmentRefs extracts the fragment references of a property value.
func fragmentRefs(value any) []string {
	switch v := value.(type) {
	case string:
		if strings.HasPrefix(v, "#") {
			return []string{v}
		}
	case []string:
		var refs []string
		for _, s := range v {
			if strings.HasPrefix(s, "#") {
				refs = append(refs, s)
			}
		}
		return refs
	}
	return nil
}

func TestComponentPositionCountEquality(t *testing.T) {
	frame, meta := tabularFixture(t)
	structureIDs := map[model.FileFormat]string{
		model.FormatTabular:     "#wideDataStructure",
		model.FormatKeyValue:    "#keyValueStructure",
		model.FormatDimensional: "#dimensionalDataStructure",
	}

	for format, structureID := range structureIDs {
		t.Run(string(format), func(t *testing.T) {
			m := *meta
			m.FileFormat = format
			doc := generate(t, frame, &m, generator.Options{})

			structure := nodeByID(t, doc, structureID)
			components := stringList(t, structure, "has_DataStructureComponent")
			positions := stringList(t, structure, "has_ComponentPosition")
			positionNodes := nodesOfType(doc, "ComponentPosition")

			assert.Equal(t, len(components), len(positions))
			assert.Equal(t, len(components), len(positionNodes))

			// Each position indexes one emitted component, in order.
			for i, posNode := range positionNodes {
				idx, _ := posNode.Get("indexes")
				assert.Equal(t, components[i], idx)
				val, _ := posNode.Get("value")
				assert.Equal(t, i, val)
			}
		})
	}
}

func TestFormatBranchingDimensional(t *testing.T) {
	frame, err := dataset.FromColumns([]string{"lat", "lon", "temp"}, map[string][]dataset.Value{
		"lat":  {10.0, 20.0},
		"lon":  {30.0, 40.0},
		"temp": {281.5, 290.1},
	})
	require.NoError(t, err)

	meta := &model.Metadata{
		ColumnNames:     []string{"lat", "lon", "temp"},
		VariableTypes:   map[string]string{"lat": "float64", "lon": "float64", "temp": "float32"},
		VariableMeasure: map[string]string{},
		IdentifierVars:  []string{"lat", "lon"},
		MeasureVars:     []string{"temp"},
		FileFormat:      model.FormatDimensional,
		NumberRows:      2,
	}
	doc := generate(t, frame, meta, generator.Options{ProcessAllRows: true})

	assert.NotNil(t, nodeByID(t, doc, "#dimensionComponent-lat"))
	assert.NotNil(t, nodeByID(t, doc, "#dimensionComponent-lon"))
	assert.NotNil(t, nodeByID(t, doc, "#qualifiedMeasure-temp"))
	assert.Len(t, nodesOfType(doc, "DimensionComponent"), 2)
	assert.Len(t, nodesOfType(doc, "QualifiedMeasure"), 1)
	assert.Empty(t, nodesOfType(doc, "IdentifierComponent"))
	assert.Empty(t, nodesOfType(doc, "MeasureComponent"))

	// The primary key is still generated and its components point at the
	// dimension components, not at identifier-prefixed ids.
	require.Len(t, nodesOfType(doc, "PrimaryKey"), 1)
	for _, pkc := range nodesOfType(doc, "PrimaryKeyComponent") {
		ref, _ := pkc.Get("correspondsTo_DataStructureComponent")
		assert.True(t, strings.HasPrefix(ref.(string), "#dimensionComponent-"), "got %v", ref)
	}
}

func TestFormatBranchingKeyValueHasNoPrimaryKey(t *testing.T) {
	frame, err := dataset.FromColumns([]string{"key-1", "key-2", "value"}, map[string][]dataset.Value{
		"key-1": {"person", "person"},
		"key-2": {"name", "age"},
		"value": {"ada", "36"},
	})
	require.NoError(t, err)

	meta := &model.Metadata{
		ColumnNames:       []string{"key-1", "key-2", "value"},
		VariableTypes:     map[string]string{},
		VariableMeasure:   map[string]string{},
		IdentifierVars:    []string{"key-1", "key-2"},
		VariableValueVars: []string{"value"},
		FileFormat:        model.FormatKeyValue,
		NumberRows:        2,
	}
	doc := generate(t, frame, meta, generator.Options{ProcessAllRows: true})

	assert.Empty(t, nodesOfType(doc, "PrimaryKey"))
	assert.Empty(t, nodesOfType(doc, "PrimaryKeyComponent"))
	assert.Len(t, nodesOfType(doc, "IdentifierComponent"), 2)

	// The variable-value variable carries its paired descriptor component.
	descriptor := nodeByID(t, doc, "#variableDescriptorComponent-value")
	ref, _ := descriptor.Get("refersTo")
	assert.Equal(t, "#variableValueComponent-value", ref)

	structure := nodeByID(t, doc, "#keyValueStructure")
	_, hasPK := structure.Get("has_PrimaryKey")
	assert.False(t, hasPK)

	// Decomposed hierarchical keys mark the layout as "/"-delimited.
	layout := nodeByID(t, doc, "#physicalSegmentLayout")
	delimited, _ := layout.Get("isDelimited")
	assert.Equal(t, true, delimited)
	delimiter, _ := layout.Get("delimiter")
	assert.Equal(t, "/", delimiter)
}

func TestTabularDelimitedLayout(t *testing.T) {
	frame, meta := tabularFixture(t)
	meta.Delimiter = ";"
	doc := generate(t, frame, meta, generator.Options{})

	layout := nodeByID(t, doc, "#physicalSegmentLayout")
	delimited, _ := layout.Get("isDelimited")
	assert.Equal(t, true, delimited)
	delimiter, _ := layout.Get("delimiter")
	assert.Equal(t, ";", delimiter)
}

func TestTruncationPolicy(t *testing.T) {
	frame, meta := tabularFixture(t)
	doc := generate(t, frame, meta, generator.Options{ProcessAllRows: false, MaxRows: 5})

	for _, variable := range meta.ColumnNames {
		count := 0
		for _, n := range nodesOfType(doc, "DataPoint") {
			if strings.HasSuffix(n.ID, "-"+variable) {
				count++
			}
		}
		assert.Equal(t, 5, count, "variable %s", variable)

		mapping := nodeByID(t, doc, "#valueMapping-"+variable)
		assert.Len(t, stringList(t, mapping, "formats"), 5)
	}

	// The data store still reports the full dataset row count.
	store := nodeByID(t, doc, "#dataStore")
	recordCount, _ := store.Get("recordCount")
	assert.Equal(t, 10, recordCount)
}

func TestChunkingEquivalence(t *testing.T) {
	frame, meta := tabularFixture(t)

	small := generate(t, frame, meta, generator.Options{ProcessAllRows: true, ChunkSize: 3})
	large := generate(t, frame, meta, generator.Options{ProcessAllRows: true, ChunkSize: 1000})
	direct := generate(t, frame, meta, generator.Options{ProcessAllRows: true, ChunkSize: 10})

	smallJSON, err := export.Marshal(small, true)
	require.NoError(t, err)
	largeJSON, err := export.Marshal(large, true)
	require.NoError(t, err)
	directJSON, err := export.Marshal(direct, true)
	require.NoError(t, err)

	assert.Equal(t, string(largeJSON), string(smallJSON))
	assert.Equal(t, string(largeJSON), string(directJSON))
}

func TestEmptyDataset(t *testing.T) {
	frame, err := dataset.FromColumns([]string{"a", "b"}, map[string][]dataset.Value{
		"a": {},
		"b": {},
	})
	require.NoError(t, err)

	meta := &model.Metadata{
		ColumnNames:     []string{"a", "b"},
		VariableTypes:   map[string]string{},
		VariableMeasure: map[string]string{},
		MeasureVars:     []string{"a", "b"},
		FileFormat:      model.FormatTabular,
		NumberRows:      0,
	}
	doc := generate(t, frame, meta, generator.Options{ProcessAllRows: true})

	assert.Empty(t, nodesOfType(doc, "DataPoint"))
	assert.Empty(t, nodesOfType(doc, "InstanceValue"))
	mappings := nodesOfType(doc, "ValueMapping")
	require.Len(t, mappings, 2)
	for _, mapping := range mappings {
		assert.Empty(t, stringList(t, mapping, "formats"))
	}
}

func TestSKOSPartitionOmission(t *testing.T) {
	frame, meta := tabularFixture(t)
	meta.VariableValueLabels = map[string]map[string]string{}
	doc := generate(t, frame, meta, generator.Options{})

	assert.Empty(t, doc.Included)
	data, err := export.Marshal(doc, false)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "@included")
}

func TestConceptSchemesSplitBySentinelMatch(t *testing.T) {
	frame, meta := tabularFixture(t)
	doc := generate(t, frame, meta, generator.Options{})

	substantive := nodeByID(t, doc, "#substantiveConceptScheme-age")
	assert.Equal(t, []string{"#age-concept-25"},
		stringList(t, substantive, "skos:hasTopConcept"))

	sentinel := nodeByID(t, doc, "#sentinelConceptScheme-age")
	assert.Equal(t, []string{"#age-concept-98", "#age-concept-99"},
		stringList(t, sentinel, "skos:hasTopConcept"))

	// One concept per labelled value, regardless of the split.
	assert.Len(t, nodesOfType(doc, "skos:Concept"), 3)
}

func TestValueDomains(t *testing.T) {
	frame, meta := tabularFixture(t)
	doc := generate(t, frame, meta, generator.Options{})

	// Every variable gets a substantive domain; only age declared sentinel
	// values.
	assert.Len(t, nodesOfType(doc, "SubstantiveValueDomain"), 3)
	assert.Len(t, nodesOfType(doc, "SentinelValueDomain"), 1)

	iv := nodeByID(t, doc, "#instanceVariable-age")
	sentinelRef, ok := iv.Get("takesSentinelValuesFrom")
	require.True(t, ok)
	assert.Equal(t, "#sentinelValueDomain-age", sentinelRef)

	ivIncome := nodeByID(t, doc, "#instanceVariable-income")
	_, ok = ivIncome.Get("takesSentinelValuesFrom")
	assert.False(t, ok)

	// Sentinel description carries the inclusive declaration as exclusive
	// bounds.
	desc := nodeByID(t, doc, "#sentinelValueAndConceptDescription-age")
	lo, _ := desc.Get("minimumValueExclusive")
	hi, _ := desc.Get("maximumValueExclusive")
	assert.Equal(t, "98", lo)
	assert.Equal(t, "99", hi)
}

func TestInstanceValueClassification(t *testing.T) {
	frame, meta := tabularFixture(t)
	doc := generate(t, frame, meta, generator.Options{ProcessAllRows: true})

	sentinelRows := map[int]bool{1: true, 3: true, 6: true}
	for row := 0; row < 10; row++ {
		iv := nodeByID(t, doc, "#instanceValue-"+strconv.Itoa(row)+"-age")
		domain, _ := iv.Get("hasValueFrom_ValueDomain")
		if sentinelRows[row] {
			assert.Equal(t, "#sentinelValueDomain-age", domain, "row %d", row)
		} else {
			assert.Equal(t, "#substantiveValueDomain-age", domain, "row %d", row)
		}
	}
}

func TestDefaultMeasureRole(t *testing.T) {
	frame, err := dataset.FromColumns([]string{"x"}, map[string][]dataset.Value{
		"x": {1, 2},
	})
	require.NoError(t, err)
	meta := &model.Metadata{
		ColumnNames:     []string{"x"},
		VariableTypes:   map[string]string{},
		VariableMeasure: map[string]string{},
		FileFormat:      model.FormatTabular,
		NumberRows:      2,
	}
	doc := generate(t, frame, meta, generator.Options{})

	// A variable with no assigned role defaults to the measure role.
	assert.NotNil(t, nodeByID(t, doc, "#measureComponent-x"))
	structure := nodeByID(t, doc, "#wideDataStructure")
	assert.Equal(t, []string{"#measureComponent-x"},
		stringList(t, structure, "has_DataStructureComponent"))
	assert.Len(t, nodesOfType(doc, "ComponentPosition"), 1)
}

func TestValidationFailsBeforeGeneration(t *testing.T) {
	frame, meta := tabularFixture(t)
	meta.IdentifierVars = append(meta.IdentifierVars, "ghost")

	_, err := generator.Generate(frame, meta, generator.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestColumnMismatchFails(t *testing.T) {
	frame, err := dataset.FromColumns([]string{"a"}, map[string][]dataset.Value{"a": {1}})
	require.NoError(t, err)
	meta := &model.Metadata{
		ColumnNames: []string{"b"},
		MeasureVars: []string{"b"},
		FileFormat:  model.FormatTabular,
		NumberRows:  1,
	}
	_, err = generator.Generate(frame, meta, generator.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column")
}

func TestNilInputsFail(t *testing.T) {
	frame, meta := tabularFixture(t)
	_, err := generator.Generate(nil, meta, generator.Options{})
	require.Error(t, err)
	_, err = generator.Generate(frame, nil, generator.Options{})
	require.Error(t, err)
}
