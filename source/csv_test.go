package source

import (
	"testing"

	"github.com/statmeta/cdigen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVReadBasic(t *testing.T) {
	content := []byte("id,age,name\n1,25,alice\n2,98.5,bob\n3,,carol\n")

	result, err := NewCSVReader().Read("survey.csv", content)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "age", "name"}, result.Meta.ColumnNames)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 3, result.Meta.NumberRows)
	assert.Equal(t, ",", result.Meta.Delimiter)
	assert.Equal(t, model.FormatTabular, result.Meta.FileFormat)
	assert.Equal(t, []string{"id", "age", "name"}, result.Meta.MeasureVars)

	assert.Equal(t, "int64", result.Meta.VariableTypes["id"])
	assert.Equal(t, "float64", result.Meta.VariableTypes["age"])
	assert.Equal(t, "string", result.Meta.VariableTypes["name"])
	assert.Equal(t, "scale", result.Meta.VariableMeasure["id"])
	assert.Equal(t, "nominal", result.Meta.VariableMeasure["name"])

	assert.Equal(t, int64(1), result.Frame.At(0, "id"))
	assert.Equal(t, 98.5, result.Frame.At(1, "age"))
	assert.Nil(t, result.Frame.At(2, "age"), "empty cells become nil")
	assert.Equal(t, "carol", result.Frame.At(2, "name"))
}

func TestCSVDelimiterDetection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"comma", "a,b\n1,2\n", ","},
		{"semicolon", "a;b\n1;2\n", ";"},
		{"tab", "a\tb\n1\t2\n", "\t"},
		{"pipe", "a|b\n1|2\n", "|"},
		{"empty defaults to comma", "a\n1\n", ","},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewCSVReader().Read("f.csv", []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Meta.Delimiter)
		})
	}
}

func TestCSVEmptyFile(t *testing.T) {
	_, err := NewCSVReader().Read("empty.csv", nil)
	assert.Error(t, err)
}

func TestCSVHeaderOnly(t *testing.T) {
	result, err := NewCSVReader().Read("header.csv", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Rows)
	assert.Equal(t, "string", result.Meta.VariableTypes["a"], "no cells means string")
}

func TestCSVTypePromotion(t *testing.T) {
	// One fractional cell promotes the whole column to float64; one
	// non-numeric cell demotes it to string.
	content := []byte("f,s\n1,1\n2.5,x\n")
	result, err := NewCSVReader().Read("mix.csv", content)
	require.NoError(t, err)
	assert.Equal(t, "float64", result.Meta.VariableTypes["f"])
	assert.Equal(t, "string", result.Meta.VariableTypes["s"])
	assert.Equal(t, 1.0, result.Frame.At(0, "f"))
	assert.Equal(t, "1", result.Frame.At(0, "s"))
}

func TestCSVExtensions(t *testing.T) {
	assert.Equal(t, []string{".csv", ".tsv", ".txt"}, NewCSVReader().Extensions())
}
