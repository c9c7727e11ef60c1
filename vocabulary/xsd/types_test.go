package xsd

import "testing"

func TestMapTypeExactMatches(t *testing.T) {
	tests := []struct {
		native string
		want   string
	}{
		{"int8", "https://www.w3.org/TR/xmlschema-2/#byte"},
		{"int64", "https://www.w3.org/TR/xmlschema-2/#long"},
		{"integer", "https://www.w3.org/TR/xmlschema-2/#integer"},
		{"uint32", "https://www.w3.org/TR/xmlschema-2/#unsignedInt"},
		{"float32", "https://www.w3.org/TR/xmlschema-2/#float"},
		{"float64", "https://www.w3.org/TR/xmlschema-2/#double"},
		{"numeric", "https://www.w3.org/TR/xmlschema-2/#decimal"},
		{"string", "https://www.w3.org/TR/xmlschema-2/#string"},
		{"datetime", "https://www.w3.org/TR/xmlschema-2/#dateTime"},
		{"date", "https://www.w3.org/TR/xmlschema-2/#date"},
		{"timedelta", "https://www.w3.org/TR/xmlschema-2/#duration"},
		{"bool", "https://www.w3.org/TR/xmlschema-2/#boolean"},
		{"category", "https://www.w3.org/TR/xmlschema-2/#string"},
	}
	for _, tt := range tests {
		if got := MapType(tt.native); got != tt.want {
			t.Errorf("MapType(%q) = %q, want %q", tt.native, got, tt.want)
		}
	}
}

func TestMapTypeIsCaseInsensitive(t *testing.T) {
	if got := MapType("Float64"); got != "https://www.w3.org/TR/xmlschema-2/#double" {
		t.Errorf("MapType(Float64) = %q", got)
	}
	if got := MapType("  STRING  "); got != "https://www.w3.org/TR/xmlschema-2/#string" {
		t.Errorf("MapType with whitespace = %q", got)
	}
}

// Exact lookups win over the substring heuristics: "float64" would also
// match the "float" substring rule, but the table entry decides.
func TestMapTypeExactBeforeSubstring(t *testing.T) {
	if got := MapType("float"); got != "https://www.w3.org/TR/xmlschema-2/#float" {
		t.Errorf("MapType(float) = %q, want the exact float entry", got)
	}
	if got := MapType("float64"); got != "https://www.w3.org/TR/xmlschema-2/#double" {
		t.Errorf("MapType(float64) = %q, want the exact double entry", got)
	}
}

func TestMapTypeSubstringHeuristics(t *testing.T) {
	tests := []struct {
		native string
		want   string
	}{
		{"int128", "https://www.w3.org/TR/xmlschema-2/#integer"},
		{"floating", "https://www.w3.org/TR/xmlschema-2/#double"},
		{"datetime64[ns, UTC]", "https://www.w3.org/TR/xmlschema-2/#dateTime"},
		{"boolean8", "https://www.w3.org/TR/xmlschema-2/#boolean"},
	}
	for _, tt := range tests {
		if got := MapType(tt.native); got != tt.want {
			t.Errorf("MapType(%q) = %q, want %q", tt.native, got, tt.want)
		}
	}
}

func TestMapTypeFallsBackToString(t *testing.T) {
	for _, native := range []string{"", "mystery", "complex128x"} {
		if got := MapType(native); got != "https://www.w3.org/TR/xmlschema-2/#string" {
			t.Errorf("MapType(%q) = %q, want string fallback", native, got)
		}
	}
}
