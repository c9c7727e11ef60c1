// Package model defines the dataset metadata contract consumed by the
// generator and the graph node / document types it produces.
package model

import (
	"fmt"
	"sort"
	"strconv"
)

// FileFormat selects which DDI-CDI substructure variant is generated.
type FileFormat string

const (
	// FormatTabular is row-per-unit data with an optional primary key
	// (statistical files, delimited text).
	FormatTabular FileFormat = "tabular-with-primary-key"

	// FormatKeyValue is decomposed key/value data (flat or nested JSON).
	FormatKeyValue FileFormat = "key-value"

	// FormatDimensional is array-structured data with coordinate
	// dimensions (NetCDF and similar).
	FormatDimensional FileFormat = "dimensional"
)

// Valid reports whether f is one of the three supported variants.
func (f FileFormat) Valid() bool {
	switch f {
	case FormatTabular, FormatKeyValue, FormatDimensional:
		return true
	}
	return false
}

// MissingRange describes one sentinel value range. Lo and Hi are inclusive
// bounds; they may be numeric or strings. A range whose bounds are both
// numeric matches numerically, one whose bounds are both strings matches by
// exact string form, and a range with mixed bounds matches nothing.
type MissingRange struct {
	Lo any `json:"lo" yaml:"lo"`
	Hi any `json:"hi" yaml:"hi"`
}

// Metadata is the column-level description of a dataset, populated by an
// import adapter and read-only to the generator. All collection fields are
// present; adapters use empty collections rather than absent attributes.
type Metadata struct {
	// ColumnNames is the ordered variable list. Order drives column
	// positions and must be stable for the duration of a conversion.
	ColumnNames []string

	// ColumnLabels maps variable to display label. Missing entries fall
	// back to the variable name.
	ColumnLabels map[string]string

	// VariableTypes maps variable to its native type tag ("numeric",
	// "float64", a NetCDF dtype, ...). Missing entries fall back to
	// "string".
	VariableTypes map[string]string

	// VariableMeasure maps variable to its classification level tag
	// ("scale", "continuous", "nominal", "ordinal").
	VariableMeasure map[string]string

	// VariableValueLabels maps variable to raw value -> display label,
	// present only for enumerated variables.
	VariableValueLabels map[string]map[string]string

	// MissingRanges maps variable to its sentinel value ranges.
	MissingRanges map[string][]MissingRange

	// MissingUserValues maps variable to discrete sentinel values, an
	// alternate form to ranges.
	MissingUserValues map[string][]string

	// Role sets. A variable may hold several roles at once.
	IdentifierVars []string
	MeasureVars    []string
	AttributeVars  []string

	// Key-value only roles.
	ContextualVars    []string
	SyntheticIDVars   []string
	VariableValueVars []string

	// FileFormat selects the generated substructure variant.
	FileFormat FileFormat

	// NumberRows is the row count of the full dataset, not of any
	// truncated preview.
	NumberRows int

	// Delimiter is the field separator of delimited sources, empty
	// otherwise.
	Delimiter string
}

// Label returns the display label for a variable, falling back to the
// variable name.
func (m *Metadata) Label(variable string) string {
	if label, ok := m.ColumnLabels[variable]; ok {
		return label
	}
	return variable
}

// TypeOf returns the native type tag for a variable, falling back to
// "string".
func (m *Metadata) TypeOf(variable string) string {
	if t, ok := m.VariableTypes[variable]; ok && t != "" {
		return t
	}
	return "string"
}

// HasColumn reports whether variable is a known column.
func (m *Metadata) HasColumn(variable string) bool {
	for _, name := range m.ColumnNames {
		if name == variable {
			return true
		}
	}
	return false
}

// HasSentinelValues reports whether the variable declares missing ranges or
// discrete missing values.
func (m *Metadata) HasSentinelValues(variable string) bool {
	return len(m.MissingRanges[variable]) > 0 || len(m.MissingUserValues[variable]) > 0
}

// ValueLabelKeys returns the raw-value keys of a variable's value labels in
// deterministic order: numeric order when every key parses as a number,
// lexicographic otherwise. Returns nil for unlabelled variables.
func (m *Metadata) ValueLabelKeys(variable string) []string {
	labels := m.VariableValueLabels[variable]
	if len(labels) == 0 {
		return nil
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}

	numeric := true
	parsed := make(map[string]float64, len(keys))
	for _, k := range keys {
		f, err := strconv.ParseFloat(k, 64)
		if err != nil {
			numeric = false
			break
		}
		parsed[k] = f
	}

	if numeric {
		sort.Slice(keys, func(i, j int) bool { return parsed[keys[i]] < parsed[keys[j]] })
	} else {
		sort.Strings(keys)
	}
	return keys
}

// Validate checks the metadata contract before any node generation begins.
// Violations surface a descriptive error naming the offending variable; a
// valid Metadata never causes a generator to emit a dangling reference.
func (m *Metadata) Validate() error {
	if !m.FileFormat.Valid() {
		return fmt.Errorf("metadata: unsupported file format %q", m.FileFormat)
	}
	if len(m.ColumnNames) == 0 {
		return fmt.Errorf("metadata: no columns defined")
	}
	if m.NumberRows < 0 {
		return fmt.Errorf("metadata: negative row count %d", m.NumberRows)
	}

	seen := make(map[string]bool, len(m.ColumnNames))
	for _, name := range m.ColumnNames {
		if name == "" {
			return fmt.Errorf("metadata: empty column name")
		}
		if seen[name] {
			return fmt.Errorf("metadata: duplicate column %q", name)
		}
		seen[name] = true
	}

	roleSets := []struct {
		role string
		vars []string
	}{
		{"identifier", m.IdentifierVars},
		{"measure", m.MeasureVars},
		{"attribute", m.AttributeVars},
		{"contextual", m.ContextualVars},
		{"synthetic-id", m.SyntheticIDVars},
		{"variable-value", m.VariableValueVars},
	}
	for _, rs := range roleSets {
		for _, v := range rs.vars {
			if !seen[v] {
				return fmt.Errorf("metadata: %s role references unknown variable %q", rs.role, v)
			}
		}
	}

	if m.FileFormat != FormatKeyValue {
		for _, rs := range roleSets[3:] {
			if len(rs.vars) > 0 {
				return fmt.Errorf("metadata: %s role %q requires key-value format, got %q",
					rs.role, rs.vars[0], m.FileFormat)
			}
		}
	}

	for variable, labels := range m.VariableValueLabels {
		if !seen[variable] {
			return fmt.Errorf("metadata: value labels reference unknown variable %q", variable)
		}
		if len(labels) == 0 {
			return fmt.Errorf("metadata: variable %q has an empty value-label set", variable)
		}
	}
	for variable := range m.MissingRanges {
		if !seen[variable] {
			return fmt.Errorf("metadata: missing ranges reference unknown variable %q", variable)
		}
	}
	for variable := range m.MissingUserValues {
		if !seen[variable] {
			return fmt.Errorf("metadata: missing values reference unknown variable %q", variable)
		}
	}

	return nil
}
