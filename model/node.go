package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Node is one typed node of the generated graph. Properties keep insertion
// order so the marshalled document is byte-stable for identical input.
// Nodes are value objects: built once by a generator, never mutated after
// assembly.
type Node struct {
	ID    string
	Type  string
	props []Property
}

// Property is a single key/value pair of a node.
type Property struct {
	Key   string
	Value any
}

// NewNode creates a node with its fragment id and class name.
func NewNode(id, class string) *Node {
	return &Node{ID: id, Type: class}
}

// Set appends a property, replacing an earlier value under the same key
// in place. It returns the node for chaining in constructors.
func (n *Node) Set(key string, value any) *Node {
	for i := range n.props {
		if n.props[i].Key == key {
			n.props[i].Value = value
			return n
		}
	}
	n.props = append(n.props, Property{Key: key, Value: value})
	return n
}

// Get returns the property value under key.
func (n *Node) Get(key string) (any, bool) {
	for _, p := range n.props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Properties returns the node's properties in insertion order.
func (n *Node) Properties() []Property {
	return n.props
}

// MarshalJSON writes "@id" and "@type" first, then the properties in
// insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	buf.WriteString(`"@id":`)
	if err := writeJSONValue(&buf, n.ID); err != nil {
		return nil, err
	}
	buf.WriteString(`,"@type":`)
	if err := writeJSONValue(&buf, n.Type); err != nil {
		return nil, err
	}

	for _, p := range n.props {
		buf.WriteByte(',')
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, p.Value); err != nil {
			return nil, fmt.Errorf("node %s property %s: %w", n.ID, p.Key, err)
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONValue encodes a property value after converting scalars that
// encoding/json cannot represent: NaN and infinities become null, time
// values become RFC 3339 strings. Any remaining unserializable value is a
// fatal error naming its Go type.
func writeJSONValue(buf *bytes.Buffer, value any) error {
	data, err := json.Marshal(sanitizeScalar(value))
	if err != nil {
		return fmt.Errorf("cannot serialize value of type %T: %w", value, err)
	}
	buf.Write(data)
	return nil
}

func sanitizeScalar(value any) any {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return v
	case float32:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case time.Time:
		return v.Format(time.RFC3339)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = sanitizeScalar(e)
		}
		return out
	default:
		return value
	}
}
