package generator

import (
	"github.com/statmeta/cdigen/model"
	"github.com/statmeta/cdigen/vocabulary/cdi"
)

func (b *builder) dataSet() *model.Node {
	return model.NewNode(b.spec.datasetID, b.spec.datasetClass).
		Set("isStructuredBy", b.spec.structureID)
}

// componentRefs returns the component ids one variable contributes to the
// data structure, in role order. The data structure's component list and the
// component position counter both derive from this single function, which is
// what keeps their counts equal.
func (b *builder) componentRefs(variable string) []string {
	var refs []string
	hasRole := false

	if b.roles.identifier[variable] {
		refs = append(refs, cdi.ComponentID(b.spec.identifierPrefix, variable))
		hasRole = true
	}
	if b.roles.attribute[variable] {
		refs = append(refs, cdi.ComponentID(cdi.PrefixAttributeComponent, variable))
		hasRole = true
	}

	if b.spec.hasMeasure {
		if b.roles.measure[variable] || !hasRole {
			refs = append(refs, cdi.ComponentID(b.spec.measurePrefix, variable))
		}
		return refs
	}

	// Key-value roles. A variable-value variable carries a paired
	// descriptor component referring back to it, a shape requirement of
	// the target vocabulary.
	if b.roles.contextual[variable] {
		refs = append(refs, cdi.ComponentID(cdi.PrefixContextualComponent, variable))
	}
	if b.roles.syntheticID[variable] {
		refs = append(refs, cdi.ComponentID(cdi.PrefixSyntheticID, variable))
	}
	if b.roles.variableValue[variable] {
		refs = append(refs,
			cdi.ComponentID(cdi.PrefixVariableValue, variable),
			cdi.ComponentID(cdi.PrefixVariableDescriptor, variable))
	}
	return refs
}

// dataStructure emits the format-selected structure node carrying every
// component reference and one position reference per component.
func (b *builder) dataStructure() *model.Node {
	var components []string
	for _, variable := range b.meta.ColumnNames {
		components = append(components, b.componentRefs(variable)...)
	}

	positions := make([]string, len(components))
	for i := range components {
		positions[i] = cdi.ComponentPositionID(i)
	}

	node := model.NewNode(b.spec.structureID, b.spec.structureClass)
	if b.spec.hasPrimaryKey && len(b.identifierVars()) > 0 {
		node.Set("has_PrimaryKey", cdi.PrimaryKeyID)
	}
	return node.
		Set("has_DataStructureComponent", emptyIfNil(components)).
		Set("has_ComponentPosition", emptyIfNil(positions))
}

// componentNodes emits the structural component node behind every reference
// of the data structure, variable-major in column order.
func (b *builder) componentNodes() []*model.Node {
	var nodes []*model.Node
	for _, variable := range b.meta.ColumnNames {
		ivRef := cdi.InstanceVariableID(variable)
		hasRole := false

		if b.roles.identifier[variable] {
			nodes = append(nodes, model.NewNode(
				cdi.ComponentID(b.spec.identifierPrefix, variable), b.spec.identifierClass).
				Set("isDefinedBy_InstanceVariable", ivRef))
			hasRole = true
		}
		if b.roles.attribute[variable] {
			nodes = append(nodes, model.NewNode(
				cdi.ComponentID(cdi.PrefixAttributeComponent, variable), cdi.ClassAttributeComponent).
				Set("isDefinedBy_RepresentedVariable", ivRef))
			hasRole = true
		}

		if b.spec.hasMeasure {
			if b.roles.measure[variable] || !hasRole {
				nodes = append(nodes, model.NewNode(
					cdi.ComponentID(b.spec.measurePrefix, variable), b.spec.measureClass).
					Set("isDefinedBy_InstanceVariable", ivRef))
			}
			continue
		}

		if b.roles.contextual[variable] {
			nodes = append(nodes, model.NewNode(
				cdi.ComponentID(cdi.PrefixContextualComponent, variable), cdi.ClassContextualComponent).
				Set("isDefinedBy_RepresentedVariable", ivRef))
		}
		if b.roles.syntheticID[variable] {
			nodes = append(nodes, model.NewNode(
				cdi.ComponentID(cdi.PrefixSyntheticID, variable), cdi.ClassSyntheticIDComponent).
				Set("isDefinedBy_RepresentedVariable", ivRef))
		}
		if b.roles.variableValue[variable] {
			valueRef := cdi.ComponentID(cdi.PrefixVariableValue, variable)
			nodes = append(nodes,
				model.NewNode(valueRef, cdi.ClassVariableValueComponent).
					Set("isDefinedBy_RepresentedVariable", ivRef),
				model.NewNode(
					cdi.ComponentID(cdi.PrefixVariableDescriptor, variable), cdi.ClassVariableDescriptorComponent).
					Set("refersTo", valueRef).
					Set("isDefinedBy_RepresentedVariable", ivRef))
		}
	}
	return nodes
}

// componentPositions emits one position node per component reference, keyed
// by a single running counter spanning all variables in column order.
func (b *builder) componentPositions() []*model.Node {
	var nodes []*model.Node
	position := 0
	for _, variable := range b.meta.ColumnNames {
		for _, ref := range b.componentRefs(variable) {
			nodes = append(nodes, model.NewNode(
				cdi.ComponentPositionID(position), cdi.ClassComponentPosition).
				Set("value", position).
				Set("indexes", ref))
			position++
		}
	}
	return nodes
}

func (b *builder) primaryKey() []*model.Node {
	identifiers := b.identifierVars()
	if !b.spec.hasPrimaryKey || len(identifiers) == 0 {
		return nil
	}

	members := make([]string, 0, len(identifiers))
	for _, variable := range identifiers {
		members = append(members, cdi.PrimaryKeyComponentID(variable))
	}
	nodes := []*model.Node{
		model.NewNode(cdi.PrimaryKeyID, cdi.ClassPrimaryKey).
			Set("isComposedOf", members),
	}

	for _, variable := range identifiers {
		nodes = append(nodes, model.NewNode(
			cdi.PrimaryKeyComponentID(variable), cdi.ClassPrimaryKeyComponent).
			Set("correspondsTo_DataStructureComponent",
				cdi.ComponentID(b.spec.identifierPrefix, variable)))
	}
	return nodes
}

// emptyIfNil keeps empty reference lists serializing as [] rather than null.
func emptyIfNil(refs []string) []string {
	if refs == nil {
		return []string{}
	}
	return refs
}
