package dataset

import (
	"math"
	"testing"
	"time"
)

func TestFromColumnsChecksLengths(t *testing.T) {
	_, err := FromColumns([]string{"a", "b"}, map[string][]Value{
		"a": {1, 2, 3},
		"b": {1, 2},
	})
	if err == nil {
		t.Fatal("expected an error for uneven columns")
	}

	_, err = FromColumns([]string{"a", "b"}, map[string][]Value{"a": {1}})
	if err == nil {
		t.Fatal("expected an error for a missing column")
	}
}

func TestAppendRow(t *testing.T) {
	df := New([]string{"a", "b"})
	if err := df.AppendRow([]Value{1, "x"}); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	if err := df.AppendRow([]Value{2}); err == nil {
		t.Fatal("expected an error for a short row")
	}
	if df.Len() != 1 {
		t.Errorf("Len = %d, want 1", df.Len())
	}
	if got := df.At(0, "b"); got != "x" {
		t.Errorf("At(0,b) = %v", got)
	}
}

func TestSliceIsClampedView(t *testing.T) {
	df, err := FromColumns([]string{"a"}, map[string][]Value{
		"a": {0, 1, 2, 3, 4},
	})
	if err != nil {
		t.Fatal(err)
	}

	view := df.Slice(1, 3)
	if view.Len() != 2 {
		t.Fatalf("view.Len = %d, want 2", view.Len())
	}
	if got := view.At(0, "a"); got != 1 {
		t.Errorf("view.At(0) = %v, want 1", got)
	}

	clamped := df.Slice(3, 99)
	if clamped.Len() != 2 {
		t.Errorf("clamped.Len = %d, want 2", clamped.Len())
	}
	empty := df.Slice(4, 2)
	if empty.Len() != 0 {
		t.Errorf("inverted bounds should yield an empty view, got %d rows", empty.Len())
	}

	if df.Head(2).Len() != 2 {
		t.Errorf("Head(2).Len = %d", df.Head(2).Len())
	}
}

func TestStringRendering(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{nil, ""},
		{"x", "x"},
		{true, "true"},
		{int64(42), "42"},
		{uint8(7), "7"},
		{3.5, "3.5"},
		{float64(2), "2"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Inf"},
		{math.Inf(-1), "-Inf"},
		{time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), "2024-03-01T12:00:00Z"},
	}
	for _, tt := range tests {
		if got := String(tt.value); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFloatParsing(t *testing.T) {
	if f, ok := Float(int32(5)); !ok || f != 5 {
		t.Errorf("Float(int32) = %v, %v", f, ok)
	}
	if f, ok := Float(" 2.5 "); !ok || f != 2.5 {
		t.Errorf("Float(string) = %v, %v", f, ok)
	}
	if _, ok := Float("abc"); ok {
		t.Error("Float(abc) should fail")
	}
	if _, ok := Float(nil); ok {
		t.Error("Float(nil) should fail")
	}
	if _, ok := Float(math.NaN()); ok {
		t.Error("Float(NaN) should fail")
	}
}
