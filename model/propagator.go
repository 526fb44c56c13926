package model

import "github.com/sssom/sssom-core/slot"

// CondensePolicy controls how [Propagator.Condense] resolves a propagatable
// slot that already differs across every mapping in a set (spec.md §4.E).
type CondensePolicy int

const (
	// NeverReplace leaves the set-level slot untouched if it is already
	// populated, even when every mapping agrees on a different value.
	NeverReplace CondensePolicy = iota
	// ReplaceIfConflict overwrites the set-level slot whenever it conflicts
	// with the value every mapping shares, and leaves it alone otherwise.
	ReplaceIfConflict
	// Disabled turns Condense into a no-op.
	Disabled
)

// Propagator implements spec.md §4.E: it moves propagatable slot values
// between a MappingSet and its Mappings in both directions.
//
//   - Propagate expands: for each propagatable slot populated on the set but
//     absent on a mapping, the set's value is copied down onto the mapping.
//   - Condense contracts: for each propagatable slot, if every mapping in
//     the set carries the same non-absent value, that value is lifted onto
//     the set and cleared from every mapping (subject to policy when the
//     set-level slot is already populated with a different value).
//
// Propagate is idempotent (spec.md §8: running it twice yields the same
// mapping-level values as running it once) and Propagate/Condense are
// duals on a set whose mappings already agree (round-tripping is lossless).
type Propagator struct {
	mappingSlots    *slot.Registry
	mappingSetSlots *slot.Registry
}

// NewPropagator builds a Propagator over the given Mapping/MappingSet
// registries, normally [MappingSlots] and [MappingSetSlots].
func NewPropagator(mappingSlots, mappingSetSlots *slot.Registry) *Propagator {
	return &Propagator{mappingSlots: mappingSlots, mappingSetSlots: mappingSetSlots}
}

// Propagate copies every populated propagatable set-level slot down onto
// every mapping that doesn't already have a value for that slot.
func (p *Propagator) Propagate(set *MappingSet) error {
	for _, setDesc := range p.mappingSetSlots.Propagatable() {
		setVal, ok := setDesc.Get(set)
		if !ok {
			continue
		}

		mapDesc, ok := p.mappingSlots.SlotByName(setDesc.Name)
		if !ok {
			continue
		}

		for _, m := range set.Mappings() {
			if _, present := mapDesc.Get(m); present {
				continue
			}

			if err := mapDesc.Set(m, setVal); err != nil {
				return err
			}
		}
	}

	return nil
}

// Condense lifts every propagatable slot value shared by all mappings in
// the set onto the set itself, clearing it from each mapping, per policy.
// A set with no mappings is left untouched.
func (p *Propagator) Condense(set *MappingSet, policy CondensePolicy) error {
	if policy == Disabled || len(set.Mappings()) == 0 {
		return nil
	}

	for _, mapDesc := range p.mappingSlots.Propagatable() {
		shared, ok := commonValue(set.Mappings(), mapDesc)
		if !ok {
			continue
		}

		setDesc, ok := p.mappingSetSlots.SlotByName(mapDesc.Name)
		if !ok {
			continue
		}

		if cur, already := setDesc.Get(set); already && policy == NeverReplace && !valueEqual(cur, shared) {
			continue
		}

		if err := setDesc.Set(set, shared); err != nil {
			return err
		}

		for _, m := range set.Mappings() {
			if err := mapDesc.Set(m, slot.Value{Kind: mapDesc.Type}); err != nil {
				return err
			}
		}
	}

	return nil
}

// commonValue reports the value of desc shared by every mapping in ms, if
// all of them have it populated and equal.
func commonValue(ms []*Mapping, desc *slot.Descriptor) (slot.Value, bool) {
	first, ok := desc.Get(ms[0])
	if !ok {
		return slot.Value{}, false
	}

	for _, m := range ms[1:] {
		v, ok := desc.Get(m)
		if !ok || !valueEqual(first, v) {
			return slot.Value{}, false
		}
	}

	return first, true
}

func valueEqual(a, b slot.Value) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case slot.StringType, slot.EnumType:
		return a.Str == b.Str
	case slot.DoubleType:
		return a.D == b.D
	case slot.DateType:
		return a.Date == b.Date
	case slot.ListType:
		return stringSliceEqual(a.List, b.List)
	default:
		return false
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
