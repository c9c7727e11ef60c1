// Package xsd maps native dataset type tags to the XSD datatype URIs
// recommended by DDI-CDI value domains.
package xsd

import "strings"

// Namespace is the XML Schema datatypes reference used for recommended
// data types.
const Namespace = "https://www.w3.org/TR/xmlschema-2/"

// Canonical datatype URIs.
const (
	Byte          = Namespace + "#byte"
	Short         = Namespace + "#short"
	Int           = Namespace + "#int"
	Long          = Namespace + "#long"
	Integer       = Namespace + "#integer"
	UnsignedByte  = Namespace + "#unsignedByte"
	UnsignedShort = Namespace + "#unsignedShort"
	UnsignedInt   = Namespace + "#unsignedInt"
	UnsignedLong  = Namespace + "#unsignedLong"
	Float         = Namespace + "#float"
	Double        = Namespace + "#double"
	Decimal       = Namespace + "#decimal"
	String        = Namespace + "#string"
	DateTime      = Namespace + "#dateTime"
	Date          = Namespace + "#date"
	Time          = Namespace + "#time"
	Duration      = Namespace + "#duration"
	Boolean       = Namespace + "#boolean"
)

// typeTable is the exact-match mapping from lowercased native type tags to
// datatype URIs. It covers statistical-package types, pandas dtype strings,
// and NetCDF dtypes.
var typeTable = map[string]string{
	// Numeric types
	"int8":    Byte,
	"int16":   Short,
	"int32":   Int,
	"int64":   Long,
	"int":     Int,
	"integer": Integer,
	"uint8":   UnsignedByte,
	"uint16":  UnsignedShort,
	"uint32":  UnsignedInt,
	"uint64":  UnsignedLong,
	"float":   Float,
	"float32": Float,
	"float64": Double,
	"double":  Double,
	"decimal": Decimal,
	"numeric": Decimal,
	"number":  Decimal,
	"complex": String,

	// String types
	"string":    String,
	"str":       String,
	"object":    String,
	"text":      String,
	"varchar":   String,
	"character": String,
	"char":      String,

	// Date/time types
	"datetime":       DateTime,
	"datetime64":     DateTime,
	"datetime64[ns]": DateTime,
	"timestamp":      DateTime,
	"date":           Date,
	"time":           Time,
	"timedelta":      Duration,
	"duration":       Duration,

	// Boolean
	"bool":    Boolean,
	"boolean": Boolean,

	// Specialized container/categorical types
	"category": String,
	"factor":   String,
	"array":    String,
	"list":     String,

	"unknown": String,
}

// MapType resolves a native type tag to a datatype URI. Lookup is
// case-insensitive: an exact table match wins; otherwise substring
// heuristics apply in priority order (int, float, date, bool); anything
// else maps to string. MapType is total and never fails.
func MapType(nativeType string) string {
	tag := strings.ToLower(strings.TrimSpace(nativeType))

	if uri, ok := typeTable[tag]; ok {
		return uri
	}

	switch {
	case strings.Contains(tag, "int"):
		return Integer
	case strings.Contains(tag, "float"):
		return Double
	case strings.Contains(tag, "date"):
		return DateTime
	case strings.Contains(tag, "bool"):
		return Boolean
	}
	return String
}
