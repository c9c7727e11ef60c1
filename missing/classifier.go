// Package missing classifies dataset cells into the substantive or sentinel
// value domain of their variable, following the declared missing-value ranges
// and discrete missing values of the source file.
package missing

import (
	"log/slog"

	"github.com/statmeta/cdigen/dataset"
	"github.com/statmeta/cdigen/metric"
	"github.com/statmeta/cdigen/model"
)

// Domain is the value-domain side a cell belongs to.
type Domain int

const (
	// Substantive marks a real observed value.
	Substantive Domain = iota

	// Sentinel marks a declared missing-value code.
	Sentinel
)

// String returns the domain name for logging.
func (d Domain) String() string {
	if d == Sentinel {
		return "sentinel"
	}
	return "substantive"
}

// numRange is a compiled numeric range with inclusive bounds.
type numRange struct {
	lo, hi float64
}

// rules holds the compiled sentinel declarations of one variable.
type rules struct {
	ranges []numRange
	codes  map[string]bool
}

func (r *rules) empty() bool {
	return len(r.ranges) == 0 && len(r.codes) == 0
}

// Classifier evaluates cells against compiled per-variable rules. A
// classifier is built once per conversion and is safe for concurrent reads.
type Classifier struct {
	byVariable map[string]*rules
	logger     *slog.Logger
}

// New compiles the missing-value declarations of meta. Ranges with two
// numeric bounds match numerically, ranges with two string bounds match each
// bound's exact string form, and ranges mixing the two match nothing; the
// latter are reported once per variable at Warn level.
func New(meta *model.Metadata, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Classifier{
		byVariable: make(map[string]*rules),
		logger:     logger,
	}

	for variable, spans := range meta.MissingRanges {
		r := c.rulesFor(variable)
		warned := false
		for _, span := range spans {
			lo, loNum := dataset.Float(span.Lo)
			hi, hiNum := dataset.Float(span.Hi)
			switch {
			case loNum && hiNum:
				if lo > hi {
					lo, hi = hi, lo
				}
				r.ranges = append(r.ranges, numRange{lo: lo, hi: hi})
			case !loNum && !hiNum:
				r.codes[dataset.String(span.Lo)] = true
				r.codes[dataset.String(span.Hi)] = true
			default:
				if !warned {
					logger.Warn("missing range mixes numeric and string bounds, ignoring",
						"variable", variable,
						"lo", span.Lo,
						"hi", span.Hi)
					warned = true
				}
			}
		}
	}

	for variable, values := range meta.MissingUserValues {
		r := c.rulesFor(variable)
		for _, v := range values {
			if f, ok := dataset.Float(v); ok {
				r.ranges = append(r.ranges, numRange{lo: f, hi: f})
			} else {
				r.codes[v] = true
			}
		}
	}

	return c
}

func (c *Classifier) rulesFor(variable string) *rules {
	r, ok := c.byVariable[variable]
	if !ok {
		r = &rules{codes: make(map[string]bool)}
		c.byVariable[variable] = r
	}
	return r
}

// HasRules reports whether the variable carries any compiled sentinel rules.
func (c *Classifier) HasRules(variable string) bool {
	r, ok := c.byVariable[variable]
	return ok && !r.empty()
}

// Classify places one cell of a variable. Cells of variables without rules
// are always substantive, as are cells that fail to parse numerically when
// only numeric ranges are declared.
func (c *Classifier) Classify(variable string, value dataset.Value) Domain {
	r, ok := c.byVariable[variable]
	if !ok || r.empty() {
		return Substantive
	}
	return classifyOne(r, value)
}

func classifyOne(r *rules, value dataset.Value) Domain {
	if len(r.codes) > 0 && r.codes[dataset.String(value)] {
		return Sentinel
	}
	if len(r.ranges) > 0 {
		if f, ok := dataset.Float(value); ok {
			for _, span := range r.ranges {
				if f >= span.lo && f <= span.hi {
					return Sentinel
				}
			}
		}
	}
	return Substantive
}

// ClassifyColumn places every cell of a column in one pass. Numeric-only
// rules take a vectorized path over pre-parsed values; columns that defeat
// the fast path fall back to element-wise evaluation.
func (c *Classifier) ClassifyColumn(variable string, column []dataset.Value) []Domain {
	out := make([]Domain, len(column))
	r, ok := c.byVariable[variable]
	if !ok || r.empty() {
		return out
	}

	if len(r.codes) == 0 {
		if parsed, ok := parseAll(column); ok {
			for i, f := range parsed {
				for _, span := range r.ranges {
					if f >= span.lo && f <= span.hi {
						out[i] = Sentinel
						break
					}
				}
			}
			return out
		}
		metric.VectorizedFallbacks.Inc()
		c.logger.Warn("column defeats vectorized classification, using element-wise pass",
			"variable", variable,
			"rows", len(column))
	}

	for i, v := range column {
		out[i] = classifyOne(r, v)
	}
	return out
}

// parseAll parses a full column numerically, reporting false as soon as one
// cell fails.
func parseAll(column []dataset.Value) ([]float64, bool) {
	parsed := make([]float64, len(column))
	for i, v := range column {
		f, ok := dataset.Float(v)
		if !ok {
			return nil, false
		}
		parsed[i] = f
	}
	return parsed, true
}
