package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/statmeta/cdigen/dataset"
	"github.com/statmeta/cdigen/model"
)

// JSONReader imports JSON files. A top-level array of flat objects becomes
// an ordinary tabular dataset. Anything nested is decomposed into key-value
// form: every leaf becomes one row whose path segments fill key-1..key-n
// columns and whose value fills the value column, with "/" as the conceptual
// path separator.
type JSONReader struct{}

func NewJSONReader() *JSONReader {
	return &JSONReader{}
}

func (r *JSONReader) Extensions() []string {
	return []string{".json"}
}

func (r *JSONReader) Read(filename string, content []byte) (*Result, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("source: parse %s: %w", filename, err)
	}

	if records, ok := flatRecords(root); ok {
		return tabularResult(filename, records)
	}
	return keyValueResult(filename, root)
}

// flatRecords reports whether the document is an array of objects with only
// scalar values, returning the decoded records when it is.
func flatRecords(root any) ([]map[string]any, bool) {
	arr, ok := root.([]any)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	records := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		for _, v := range obj {
			switch v.(type) {
			case map[string]any, []any:
				return nil, false
			}
		}
		records = append(records, obj)
	}
	return records, true
}

func tabularResult(filename string, records []map[string]any) (*Result, error) {
	// Column order: sorted union of keys, stable across runs regardless of
	// per-record key order.
	keySet := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			keySet[k] = true
		}
	}
	columns := make([]string, 0, len(keySet))
	for k := range keySet {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	types := make(map[string]string, len(columns))
	measures := make(map[string]string, len(columns))
	data := make(map[string][]dataset.Value, len(columns))
	for _, name := range columns {
		col := make([]dataset.Value, len(records))
		colType := "string"
		numeric := true
		for i, rec := range records {
			v, ok := rec[name]
			if !ok || v == nil {
				col[i] = nil
				continue
			}
			col[i] = scalarValue(v)
			if _, isNum := v.(json.Number); !isNum {
				numeric = false
			}
		}
		if numeric {
			colType = "float64"
			measures[name] = "scale"
		} else {
			measures[name] = "nominal"
		}
		types[name] = colType
		data[name] = col
	}

	frame, err := dataset.FromColumns(columns, data)
	if err != nil {
		return nil, err
	}

	meta := &model.Metadata{
		ColumnNames:         columns,
		ColumnLabels:        map[string]string{},
		VariableTypes:       types,
		VariableMeasure:     measures,
		VariableValueLabels: map[string]map[string]string{},
		MissingRanges:       map[string][]model.MissingRange{},
		MissingUserValues:   map[string][]string{},
		MeasureVars:         append([]string(nil), columns...),
		FileFormat:          model.FormatTabular,
		NumberRows:          len(records),
	}

	return &Result{Frame: frame, Meta: meta, Filename: filename, Rows: len(records)}, nil
}

// leaf is one scalar of a nested document with its full key path.
type leaf struct {
	path  []string
	value dataset.Value
}

func keyValueResult(filename string, root any) (*Result, error) {
	leaves := flatten(nil, root)
	if len(leaves) == 0 {
		return nil, fmt.Errorf("source: %s has no values", filename)
	}

	depth := 0
	for _, l := range leaves {
		if len(l.path) > depth {
			depth = len(l.path)
		}
	}

	columns := make([]string, 0, depth+1)
	for i := 1; i <= depth; i++ {
		columns = append(columns, "key-"+strconv.Itoa(i))
	}
	columns = append(columns, "value")

	data := make(map[string][]dataset.Value, len(columns))
	for _, name := range columns {
		data[name] = make([]dataset.Value, len(leaves))
	}
	for i, l := range leaves {
		for d := 0; d < depth; d++ {
			if d < len(l.path) {
				data["key-"+strconv.Itoa(d+1)][i] = l.path[d]
			}
		}
		data["value"][i] = l.value
	}

	types := make(map[string]string, len(columns))
	measures := make(map[string]string, len(columns))
	for _, name := range columns {
		types[name] = "string"
		measures[name] = "nominal"
	}

	frame, err := dataset.FromColumns(columns, data)
	if err != nil {
		return nil, err
	}

	meta := &model.Metadata{
		ColumnNames:         columns,
		ColumnLabels:        map[string]string{},
		VariableTypes:       types,
		VariableMeasure:     measures,
		VariableValueLabels: map[string]map[string]string{},
		MissingRanges:       map[string][]model.MissingRange{},
		MissingUserValues:   map[string][]string{},
		IdentifierVars:      columns[:depth],
		VariableValueVars:   []string{"value"},
		FileFormat:          model.FormatKeyValue,
		NumberRows:          len(leaves),
	}

	return &Result{Frame: frame, Meta: meta, Filename: filename, Rows: len(leaves)}, nil
}

// flatten walks the document depth-first, array elements keyed by index.
func flatten(path []string, node any) []leaf {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var leaves []leaf
		for _, k := range keys {
			leaves = append(leaves, flatten(append(path, k), v[k])...)
		}
		return leaves
	case []any:
		var leaves []leaf
		for i, item := range v {
			leaves = append(leaves, flatten(append(path, strconv.Itoa(i)), item)...)
		}
		return leaves
	default:
		return []leaf{{path: append([]string(nil), path...), value: scalarValue(node)}}
	}
}

// scalarValue converts a decoded JSON scalar into a dataset cell, keeping
// integers integral.
func scalarValue(v any) dataset.Value {
	if num, ok := v.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			return i
		}
		if f, err := num.Float64(); err == nil {
			return f
		}
		return num.String()
	}
	return v
}
