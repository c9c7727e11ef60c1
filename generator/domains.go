package generator

import (
	"strings"

	"github.com/statmeta/cdigen/dataset"
	"github.com/statmeta/cdigen/missing"
	"github.com/statmeta/cdigen/model"
	"github.com/statmeta/cdigen/vocabulary/cdi"
	"github.com/statmeta/cdigen/vocabulary/xsd"
)

// conceptPartition splits a variable's value-label keys into the substantive
// and sentinel sides using the compiled classifier, preserving key order.
func (b *builder) conceptPartition(variable string) (substantive, sentinel []string) {
	for _, key := range b.meta.ValueLabelKeys(variable) {
		if b.class.Classify(variable, key) == missing.Substantive {
			substantive = append(substantive, key)
		} else {
			sentinel = append(sentinel, key)
		}
	}
	return substantive, sentinel
}

// substantiveValueDomains emits one domain per variable. The enumeration
// reference is set only when at least one substantive labelled value exists,
// matching the condition under which the enumeration domain itself is
// emitted.
func (b *builder) substantiveValueDomains() []*model.Node {
	nodes := make([]*model.Node, 0, len(b.meta.ColumnNames))
	for _, variable := range b.meta.ColumnNames {
		node := model.NewNode(cdi.SubstantiveValueDomainID(variable), cdi.ClassSubstantiveValueDomain).
			Set("recommendedDataType", model.CVE(xsd.MapType(b.meta.TypeOf(variable)))).
			Set("isDescribedBy", cdi.SubstantiveDescriptionID(variable))

		if substantive, _ := b.conceptPartition(variable); len(substantive) > 0 {
			node.Set("takesValuesFrom", cdi.SubstantiveEnumerationDomainID(variable))
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func (b *builder) substantiveEnumerationDomains() []*model.Node {
	var nodes []*model.Node
	for _, variable := range b.meta.ColumnNames {
		substantive, _ := b.conceptPartition(variable)
		if len(substantive) == 0 {
			continue
		}
		nodes = append(nodes, model.NewNode(
			cdi.SubstantiveEnumerationDomainID(variable), cdi.ClassEnumerationDomain).
			Set("sameAs", cdi.SubstantiveConceptSchemeID(variable)))
	}
	return nodes
}

func (b *builder) sentinelValueDomains() []*model.Node {
	var nodes []*model.Node
	for _, variable := range b.meta.ColumnNames {
		if !b.meta.HasSentinelValues(variable) {
			continue
		}
		node := model.NewNode(cdi.SentinelValueDomainID(variable), cdi.ClassSentinelValueDomain).
			Set("recommendedDataType", model.CVE(xsd.MapType(b.meta.TypeOf(variable)))).
			Set("isDescribedBy", cdi.SentinelDescriptionID(variable))

		if _, sentinel := b.conceptPartition(variable); len(sentinel) > 0 {
			node.Set("takesValuesFrom", cdi.SentinelEnumerationDomainID(variable))
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func (b *builder) sentinelEnumerationDomains() []*model.Node {
	var nodes []*model.Node
	for _, variable := range b.meta.ColumnNames {
		if !b.meta.HasSentinelValues(variable) {
			continue
		}
		if _, sentinel := b.conceptPartition(variable); len(sentinel) == 0 {
			continue
		}
		nodes = append(nodes, model.NewNode(
			cdi.SentinelEnumerationDomainID(variable), cdi.ClassEnumerationDomain).
			Set("sameAs", cdi.SentinelConceptSchemeID(variable)))
	}
	return nodes
}

// classificationLevel maps the measure tag of a variable to its DDI-CDI
// classification level. Unknown tags default to nominal.
func classificationLevel(measure string) string {
	switch strings.ToLower(strings.TrimSpace(measure)) {
	case "scale", "continuous":
		return "Continuous"
	case "ordinal":
		return "Ordinal"
	case "interval", "ratio":
		return "Interval"
	default:
		return "Nominal"
	}
}

// valueAndConceptDescriptions emits one substantive description per variable
// and one sentinel description per variable with declared sentinel values.
// The sentinel description summarizes the declaration and carries the
// exclusive bounds across all declared ranges and values.
func (b *builder) valueAndConceptDescriptions() []*model.Node {
	var nodes []*model.Node
	for _, variable := range b.meta.ColumnNames {
		nodes = append(nodes, model.NewNode(
			cdi.SubstantiveDescriptionID(variable), cdi.ClassValueAndConceptDescription).
			Set("classificationLevel", classificationLevel(b.meta.VariableMeasure[variable])))
	}
	for _, variable := range b.meta.ColumnNames {
		if !b.meta.HasSentinelValues(variable) {
			continue
		}
		lo, hi := sentinelBounds(b.meta, variable)
		nodes = append(nodes, model.NewNode(
			cdi.SentinelDescriptionID(variable), cdi.ClassValueAndConceptDescription).
			Set("description", model.Description(sentinelSummary(b.meta, variable))).
			Set("maximumValueExclusive", hi).
			Set("minimumValueExclusive", lo))
	}
	return nodes
}

// sentinelSummary renders the declared missing values of a variable in a
// stable human-readable form: ranges as [lo,hi], discrete values verbatim.
func sentinelSummary(meta *model.Metadata, variable string) string {
	var parts []string
	for _, r := range meta.MissingRanges[variable] {
		parts = append(parts, "["+dataset.String(r.Lo)+","+dataset.String(r.Hi)+"]")
	}
	parts = append(parts, meta.MissingUserValues[variable]...)
	return strings.Join(parts, ", ")
}

// sentinelBounds computes the min and max across every declared range bound
// and discrete value. Bounds compare numerically when every one parses as a
// number, lexicographically otherwise.
func sentinelBounds(meta *model.Metadata, variable string) (lo, hi string) {
	type bound struct {
		raw string
		num float64
		ok  bool
	}
	var bounds []bound
	add := func(v any) {
		raw := dataset.String(v)
		num, ok := dataset.Float(v)
		bounds = append(bounds, bound{raw: raw, num: num, ok: ok})
	}
	for _, r := range meta.MissingRanges[variable] {
		add(r.Lo)
		add(r.Hi)
	}
	for _, v := range meta.MissingUserValues[variable] {
		add(v)
	}
	if len(bounds) == 0 {
		return "", ""
	}

	numeric := true
	for _, b := range bounds {
		if !b.ok {
			numeric = false
			break
		}
	}

	min, max := bounds[0], bounds[0]
	for _, b := range bounds[1:] {
		if numeric {
			if b.num < min.num {
				min = b
			}
			if b.num > max.num {
				max = b
			}
		} else {
			if b.raw < min.raw {
				min = b
			}
			if b.raw > max.raw {
				max = b
			}
		}
	}
	return min.raw, max.raw
}
