// Package pipeline implements the Processing Pipeline described in
// spec.md §4.K: an ordered list of rules, each with a compiled filter,
// preprocessors, generators, callbacks, tags, and the include()/stop()
// pseudo-actions, run once per input mapping in insertion order.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/sssom/sssom-core/errs"
	"github.com/sssom/sssom-core/model"
	"github.com/sssom/sssom-core/sssomlog"
	"github.com/sssom/sssom-core/sssomt/filter"
	"github.com/sssom/sssom-core/warnbus"
)

// Preprocessor transforms a mapping before generators run, or returns
// ok=false to drop the mapping for the rest of this rule's processing
// (spec.md §4.K: "returning null drops the mapping").
type Preprocessor func(m *model.Mapping) (out *model.Mapping, ok bool)

// Generator computes a host-defined product from a mapping. Product is
// emitted to whatever subscribers the host has registered on this rule;
// the pipeline itself is agnostic to what a product is.
type Generator func(m *model.Mapping) any

// Callback is a generator-shaped side effect with no product.
type Callback func(m *model.Mapping)

// Rule is one compiled programme rule.
type Rule struct {
	Tags          []string
	Filter        filter.Func
	Preprocessors []Preprocessor
	Generators    []Generator
	Callbacks     []Callback
	Include       bool // pseudo-action include()
	Stop          bool // pseudo-action stop()
	Invert        bool // pseudo-action invert() — applied as a preprocessor
}

// Pipeline runs an ordered list of [Rule]s over a stream of mappings
// (spec.md §4.K). A Pipeline is not safe for concurrent use by multiple
// goroutines sharing one instance; run one Pipeline per goroutine (spec.md
// §5: "programmes are not shared mutable state").
type Pipeline struct {
	rules      []*Rule
	includeAll bool
	products   []any
	bus        *warnbus.Bus
}

// New returns a Pipeline over rules, run in the given order. bus, if
// non-nil, collects the non-fatal warnings spec.md §7 calls for (an
// un-invertible mapping dropped by invert()); pass its accumulated
// warnings to a logger via [Pipeline.Warnings] once Run completes, or
// nil to skip warning collection entirely.
func New(rules []*Rule, includeAll bool, bus *warnbus.Bus) *Pipeline {
	return &Pipeline{rules: rules, includeAll: includeAll, bus: bus}
}

// Warnings drains the warnings accumulated on this Pipeline's bus since
// the last call, or returns nil if no bus was supplied to [New].
func (p *Pipeline) Warnings() []warnbus.Warning {
	if p.bus == nil {
		return nil
	}

	return p.bus.Drain()
}

// LogWarnings drains [Pipeline.Warnings] and writes them to logger,
// summarising this run's non-fatal conditions per spec.md §7.
func (p *Pipeline) LogWarnings(logger *slog.Logger) {
	sssomlog.LogWarnings(logger, p.Warnings())
}

func (p *Pipeline) warn(kind errs.Kind, format string, args ...any) {
	if p.bus == nil {
		return
	}

	p.bus.Emit(warnbus.Warning{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// SelectTags returns the subset of rules carrying at least one of the
// given tags (spec.md §4.K "rule selection": "rules may be filtered at
// programme-load time by including or excluding tags"). bus, if non-nil,
// receives a warning for each requested tag that matches no rule at all
// (spec.md §7: "unknown tag during rule-selection").
func SelectTags(rules []*Rule, bus *warnbus.Bus, include bool, tags ...string) []*Rule {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}

	if bus != nil {
		known := make(map[string]bool)
		for _, r := range rules {
			for _, t := range r.Tags {
				known[t] = true
			}
		}

		for _, t := range tags {
			if !known[t] {
				bus.Emit(warnbus.Warning{
					Kind:    errs.KindDSL,
					Message: fmt.Sprintf("rule-selection: tag %q matches no rule", t),
				})
			}
		}
	}

	var out []*Rule

	for _, r := range rules {
		matches := false

		for _, t := range r.Tags {
			if want[t] {
				matches = true
				break
			}
		}

		if matches == include {
			out = append(out, r)
		}
	}

	return out
}

// Run executes the pipeline over input in order, returning a new
// [*model.MappingSet] built from the mappings marked for inclusion
// (spec.md §4.K steps 1–2). Run never mutates input itself — preprocessors
// operate on clones — and may be called only once per Pipeline instance
// (spec.md §5: "readers and writers are single-use"; the same discipline
// applies here since product accumulation is stateful).
func (p *Pipeline) Run(input []*model.Mapping) *model.MappingSet {
	out := model.NewMappingSet()

	for _, m := range input {
		p.runOne(m, out)
	}

	return out
}

func (p *Pipeline) runOne(original *model.Mapping, out *model.MappingSet) {
	current := original.Clone()
	included := p.includeAll

	for _, rule := range p.rules {
		if !rule.Filter(current) {
			continue
		}

		if rule.Invert {
			inverted, err := current.Invert("")
			if err != nil {
				p.warn(errs.KindDSL, "invert(): dropping %s %s %s: %v",
					current.SubjectID(), current.PredicateID(), current.ObjectID(), err)

				return
			}

			current = inverted
		}

		dropped := false

		for _, pre := range rule.Preprocessors {
			next, ok := pre(current)
			if !ok {
				dropped = true
				break
			}

			current = next
		}

		if dropped {
			return
		}

		for _, gen := range rule.Generators {
			p.products = append(p.products, gen(current))
		}

		for _, cb := range rule.Callbacks {
			cb(current)
		}

		if rule.Include {
			included = true
		}

		if rule.Stop {
			break
		}
	}

	if included {
		out.AddMapping(current)
	}
}

// Products returns every value produced by a [Generator] across the whole
// run, in generation order.
func (p *Pipeline) Products() []any {
	return p.products
}
