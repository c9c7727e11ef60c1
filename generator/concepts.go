package generator

import (
	"github.com/statmeta/cdigen/model"
	"github.com/statmeta/cdigen/vocabulary/cdi"
)

// substantiveConceptSchemes emits one scheme per value-labelled variable
// whose label set retains at least one substantive key after sentinel
// exclusion. Empty schemes are never emitted.
func (b *builder) substantiveConceptSchemes() []*model.Node {
	var nodes []*model.Node
	for _, variable := range b.meta.ColumnNames {
		substantive, _ := b.conceptPartition(variable)
		if len(substantive) == 0 {
			continue
		}
		nodes = append(nodes, model.NewNode(
			cdi.SubstantiveConceptSchemeID(variable), cdi.ClassConceptScheme).
			Set("skos:hasTopConcept", conceptRefs(variable, substantive)))
	}
	return nodes
}

// sentinelConceptSchemes mirrors the substantive schemes for keys matched as
// sentinel by the variable's own missing-value declaration.
func (b *builder) sentinelConceptSchemes() []*model.Node {
	var nodes []*model.Node
	for _, variable := range b.meta.ColumnNames {
		_, sentinel := b.conceptPartition(variable)
		if len(sentinel) == 0 {
			continue
		}
		nodes = append(nodes, model.NewNode(
			cdi.SentinelConceptSchemeID(variable), cdi.ClassConceptScheme).
			Set("skos:hasTopConcept", conceptRefs(variable, sentinel)))
	}
	return nodes
}

// concepts emits one concept per labelled value across all variables,
// regardless of the substantive/sentinel split: both schemes reference
// subsets of this one concept set.
func (b *builder) concepts() []*model.Node {
	var nodes []*model.Node
	for _, variable := range b.meta.ColumnNames {
		labels := b.meta.VariableValueLabels[variable]
		for _, key := range b.meta.ValueLabelKeys(variable) {
			nodes = append(nodes, model.NewNode(
				cdi.ConceptID(variable, key), cdi.ClassConcept).
				Set("skos:notation", model.Typed(key)).
				Set("skos:prefLabel", model.Typed(labels[key])))
		}
	}
	return nodes
}

func conceptRefs(variable string, keys []string) []string {
	refs := make([]string, 0, len(keys))
	for _, key := range keys {
		refs = append(refs, cdi.ConceptID(variable, key))
	}
	return refs
}
