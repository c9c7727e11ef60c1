package generator

import (
	"github.com/statmeta/cdigen/model"
	"github.com/statmeta/cdigen/vocabulary/cdi"
)

// instanceVariables emits one InstanceVariable per column, in column order.
// A variable links to its sentinel value domain only when sentinel values
// are declared for it.
func (b *builder) instanceVariables() []*model.Node {
	nodes := make([]*model.Node, 0, len(b.meta.ColumnNames))
	for _, variable := range b.meta.ColumnNames {
		node := model.NewNode(cdi.InstanceVariableID(variable), cdi.ClassInstanceVariable).
			Set("physicalDataType", model.CVE(b.meta.TypeOf(variable))).
			Set("displayLabel", model.Label(b.meta.Label(variable))).
			Set("name", model.Name(variable)).
			Set("has_PhysicalSegmentLayout", cdi.PhysicalSegmentLayoutID).
			Set("has_ValueMapping", cdi.ValueMappingID(variable)).
			Set("takesSubstantiveValuesFrom_SubstantiveValueDomain", cdi.SubstantiveValueDomainID(variable))

		if b.meta.HasSentinelValues(variable) {
			node.Set("takesSentinelValuesFrom", cdi.SentinelValueDomainID(variable))
		}
		nodes = append(nodes, node)
	}
	return nodes
}
