package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/statmeta/cdigen/dataset"
	"github.com/statmeta/cdigen/model"
)

// delimiterCandidates are tried in order when sniffing a delimited file.
var delimiterCandidates = []rune{',', ';', '\t', '|', ':'}

// CSVReader imports delimited text files. The first record is the header
// row; column types are inferred from the cell values.
type CSVReader struct{}

func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

func (r *CSVReader) Extensions() []string {
	return []string{".csv", ".tsv", ".txt"}
}

func (r *CSVReader) Read(filename string, content []byte) (*Result, error) {
	delimiter := detectDelimiter(content)

	cr := csv.NewReader(bytes.NewReader(content))
	cr.Comma = delimiter
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("source: parse %s: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("source: %s has no header row", filename)
	}

	columns := records[0]
	rows := records[1:]

	types := make(map[string]string, len(columns))
	measures := make(map[string]string, len(columns))
	data := make(map[string][]dataset.Value, len(columns))
	for i, name := range columns {
		raw := make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				raw[j] = row[i]
			}
		}
		colType := inferType(raw)
		types[name] = colType
		if colType == "string" {
			measures[name] = "nominal"
		} else {
			measures[name] = "scale"
		}
		data[name] = typedColumn(raw, colType)
	}

	frame, err := dataset.FromColumns(columns, data)
	if err != nil {
		return nil, err
	}

	meta := &model.Metadata{
		ColumnNames:         append([]string(nil), columns...),
		ColumnLabels:        map[string]string{},
		VariableTypes:       types,
		VariableMeasure:     measures,
		VariableValueLabels: map[string]map[string]string{},
		MissingRanges:       map[string][]model.MissingRange{},
		MissingUserValues:   map[string][]string{},
		MeasureVars:         append([]string(nil), columns...),
		FileFormat:          model.FormatTabular,
		NumberRows:          len(rows),
		Delimiter:           string(delimiter),
	}

	return &Result{
		Frame:    frame,
		Meta:     meta,
		Filename: filename,
		Rows:     len(rows),
	}, nil
}

// detectDelimiter picks the candidate with the highest count over the first
// lines of the file, defaulting to comma.
func detectDelimiter(content []byte) rune {
	lines := strings.SplitN(string(content), "\n", 6)
	if len(lines) > 5 {
		lines = lines[:5]
	}
	sample := strings.Join(lines, "\n")

	best := ','
	bestCount := 0
	for _, candidate := range delimiterCandidates {
		count := strings.Count(sample, string(candidate))
		if count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}

// inferType reports the narrowest type every non-empty cell fits: int64,
// then float64, then string.
func inferType(raw []string) string {
	isInt := true
	isFloat := true
	seen := false
	for _, cell := range raw {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		seen = true
		if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			isFloat = false
		}
	}
	switch {
	case !seen:
		return "string"
	case isInt:
		return "int64"
	case isFloat:
		return "float64"
	default:
		return "string"
	}
}

// typedColumn parses the raw cells into the inferred type. Empty cells
// become nil.
func typedColumn(raw []string, colType string) []dataset.Value {
	out := make([]dataset.Value, len(raw))
	for i, cell := range raw {
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" {
			out[i] = nil
			continue
		}
		switch colType {
		case "int64":
			v, _ := strconv.ParseInt(trimmed, 10, 64)
			out[i] = v
		case "float64":
			v, _ := strconv.ParseFloat(trimmed, 64)
			out[i] = v
		default:
			out[i] = cell
		}
	}
	return out
}
