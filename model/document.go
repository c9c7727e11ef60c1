package model

import (
	"bytes"
	"encoding/json"

	"github.com/statmeta/cdigen/vocabulary/cdi"
)

// Document is the JSON-LD envelope of one conversion: the fixed context
// declarations, the DDI-CDI node array, and the optional SKOS partition.
// A document is built fresh per conversion call and never mutated after
// assembly.
type Document struct {
	// Models holds every non-SKOS node.
	Models []*Node

	// Included holds the SKOS concept-scheme partition. When empty the
	// "@included" key is omitted from the serialized document entirely.
	Included []*Node
}

// Context returns the fixed two-element context declaration.
func (d *Document) Context() []any {
	return []any{
		cdi.ContextURL,
		map[string]string{"skos": cdi.SKOSNamespace},
	}
}

// Node returns the node carrying id, searching both partitions.
func (d *Document) Node(id string) (*Node, bool) {
	for _, n := range d.Models {
		if n.ID == id {
			return n, true
		}
	}
	for _, n := range d.Included {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// Len returns the total node count across both partitions.
func (d *Document) Len() int {
	return len(d.Models) + len(d.Included)
}

// MarshalJSON emits the envelope shape consumed downstream:
//
//	{"@context": [...], "DDICDIModels": [...], "@included": [...]}
//
// with "@included" present only when SKOS nodes exist.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"@context":`)

	ctx, err := json.Marshal(d.Context())
	if err != nil {
		return nil, err
	}
	buf.Write(ctx)

	buf.WriteString(`,"DDICDIModels":`)
	models, err := marshalNodes(d.Models)
	if err != nil {
		return nil, err
	}
	buf.Write(models)

	if len(d.Included) > 0 {
		buf.WriteString(`,"@included":`)
		included, err := marshalNodes(d.Included)
		if err != nil {
			return nil, err
		}
		buf.Write(included)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNodes(nodes []*Node) ([]byte, error) {
	if nodes == nil {
		nodes = []*Node{}
	}
	return json.Marshal(nodes)
}
