// Package generator turns a dataframe and its metadata into the DDI-CDI
// node graph. Structural generators are pure functions of the metadata;
// row-level generators additionally walk the dataframe, chunked when large.
package generator

import (
	"log/slog"

	"github.com/statmeta/cdigen/dataset"
	"github.com/statmeta/cdigen/missing"
	"github.com/statmeta/cdigen/model"
)

// roleSets holds per-role membership, restricted to variables that actually
// exist as columns. Stray role references are dropped here so no generator
// has to re-check.
type roleSets struct {
	identifier    map[string]bool
	attribute     map[string]bool
	measure       map[string]bool
	contextual    map[string]bool
	syntheticID   map[string]bool
	variableValue map[string]bool
}

func newRoleSets(meta *model.Metadata) roleSets {
	known := func(vars []string) map[string]bool {
		set := make(map[string]bool, len(vars))
		for _, v := range vars {
			if meta.HasColumn(v) {
				set[v] = true
			}
		}
		return set
	}
	return roleSets{
		identifier:    known(meta.IdentifierVars),
		attribute:     known(meta.AttributeVars),
		measure:       known(meta.MeasureVars),
		contextual:    known(meta.ContextualVars),
		syntheticID:   known(meta.SyntheticIDVars),
		variableValue: known(meta.VariableValueVars),
	}
}

// identifierVars returns the identifier variables in declaration order,
// restricted to known columns.
func (b *builder) identifierVars() []string {
	out := make([]string, 0, len(b.meta.IdentifierVars))
	for _, v := range b.meta.IdentifierVars {
		if b.roles.identifier[v] {
			out = append(out, v)
		}
	}
	return out
}

// builder carries the per-conversion state every generator reads: the frame,
// the metadata, the format dispatch entry, compiled roles and sentinel rules,
// and the processed row window. It is built once per Generate call and never
// shared across calls.
type builder struct {
	meta   *model.Metadata
	frame  *dataset.DataFrame
	spec   formatSpec
	roles  roleSets
	class  *missing.Classifier
	opts   Options
	logger *slog.Logger

	// rows is the processed row window: the full frame when all rows are
	// requested, a bounded prefix otherwise.
	rows int
}
