// Package dataset holds the in-memory columnar table the generator reads
// from. Frames are read-only inputs to a conversion; slicing shares the
// underlying column storage.
package dataset

import "fmt"

// Value is one dataset cell. Adapters populate cells with nil, string,
// bool, integer, float, or time values; everything else is rendered through
// its default formatting.
type Value = any

// DataFrame is column-ordered tabular data. Every column has the same
// length.
type DataFrame struct {
	columns []string
	data    map[string][]Value
	rows    int
}

// New creates an empty frame with the given column order.
func New(columns []string) *DataFrame {
	data := make(map[string][]Value, len(columns))
	for _, c := range columns {
		data[c] = nil
	}
	return &DataFrame{columns: append([]string(nil), columns...), data: data}
}

// FromColumns builds a frame from pre-materialized column slices. Every
// named column must be present and of equal length.
func FromColumns(columns []string, data map[string][]Value) (*DataFrame, error) {
	frame := &DataFrame{
		columns: append([]string(nil), columns...),
		data:    make(map[string][]Value, len(columns)),
	}
	for i, name := range columns {
		col, ok := data[name]
		if !ok {
			return nil, fmt.Errorf("dataset: column %q has no data", name)
		}
		if i == 0 {
			frame.rows = len(col)
		} else if len(col) != frame.rows {
			return nil, fmt.Errorf("dataset: column %q has %d rows, expected %d",
				name, len(col), frame.rows)
		}
		frame.data[name] = col
	}
	return frame, nil
}

// AppendRow appends one row of values in column order.
func (d *DataFrame) AppendRow(values []Value) error {
	if len(values) != len(d.columns) {
		return fmt.Errorf("dataset: row has %d values, expected %d", len(values), len(d.columns))
	}
	for i, name := range d.columns {
		d.data[name] = append(d.data[name], values[i])
	}
	d.rows++
	return nil
}

// Columns returns the ordered column names.
func (d *DataFrame) Columns() []string {
	return d.columns
}

// HasColumn reports whether the frame carries the named column.
func (d *DataFrame) HasColumn(name string) bool {
	_, ok := d.data[name]
	return ok
}

// Column returns the full value slice of a column, nil when unknown.
func (d *DataFrame) Column(name string) []Value {
	return d.data[name]
}

// At returns the cell at (row, column).
func (d *DataFrame) At(row int, column string) Value {
	col, ok := d.data[column]
	if !ok || row < 0 || row >= len(col) {
		return nil
	}
	return col[row]
}

// Len returns the row count.
func (d *DataFrame) Len() int {
	return d.rows
}

// Slice returns a view over rows [start, end). Bounds are clamped to the
// frame; the view shares column storage with the parent.
func (d *DataFrame) Slice(start, end int) *DataFrame {
	if start < 0 {
		start = 0
	}
	if end > d.rows {
		end = d.rows
	}
	if start > end {
		start = end
	}
	view := &DataFrame{
		columns: d.columns,
		data:    make(map[string][]Value, len(d.columns)),
		rows:    end - start,
	}
	for _, name := range d.columns {
		view.data[name] = d.data[name][start:end]
	}
	return view
}

// Head returns a view over the first n rows.
func (d *DataFrame) Head(n int) *DataFrame {
	return d.Slice(0, n)
}
