package slot

import "fmt"

// Registry enumerates every [Descriptor] for one entity type (Mapping or
// MappingSet), in declaration order. Per spec.md §4.C's "ordering contract",
// [Registry.Slots] and [Registry.VisitSlots] always iterate in exactly this
// declaration order, which is what the SSSOM/TSV writer uses to choose
// column order.
//
// A Registry is built once at process start (e.g. via sync.OnceValue in
// package model) and is safe for concurrent reads thereafter; it is never
// mutated after construction.
type Registry struct {
	order  []*Descriptor
	byName map[string]*Descriptor
}

// NewRegistry builds a Registry from descs, preserving their order.
// Panics on a duplicate slot name, since that indicates a programming error
// in the caller's descriptor table, not a runtime condition.
func NewRegistry(descs ...*Descriptor) *Registry {
	r := &Registry{
		order:  make([]*Descriptor, 0, len(descs)),
		byName: make(map[string]*Descriptor, len(descs)),
	}

	for _, d := range descs {
		if _, dup := r.byName[d.Name]; dup {
			panic(fmt.Sprintf("slot: duplicate slot name %q", d.Name))
		}

		r.order = append(r.order, d)
		r.byName[d.Name] = d
	}

	return r
}

// SlotByName returns the descriptor named name, or nil, false if no such
// slot is registered.
func (r *Registry) SlotByName(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Slots returns every registered descriptor in declaration order. The
// returned slice is shared; callers must not mutate it.
func (r *Registry) Slots() []*Descriptor {
	return r.order
}

// Propagatable returns the subset of descriptors marked Propagatable, in
// declaration order (spec.md §4.E).
func (r *Registry) Propagatable() []*Descriptor {
	var out []*Descriptor

	for _, d := range r.order {
		if d.Propagatable {
			out = append(out, d)
		}
	}

	return out
}

// Required returns the subset of descriptors marked Required, in
// declaration order (spec.md §3).
func (r *Registry) Required() []*Descriptor {
	var out []*Descriptor

	for _, d := range r.order {
		if d.Required {
			out = append(out, d)
		}
	}

	return out
}

// VisitSlots invokes v for each slot on entity whose value is present, in
// declaration order (spec.md §4.C).
func (r *Registry) VisitSlots(entity any, v Visitor) {
	for _, d := range r.order {
		val, ok := d.Get(entity)
		if !ok {
			continue
		}

		dispatch(d.Name, val, v)
	}
}

// IncludeOnly returns a [View] restricted to the named slots, in the
// registry's declaration order (spec.md §4.C).
func (r *Registry) IncludeOnly(names ...string) *View {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}

	return &View{registry: r, names: set, include: true}
}

// Exclude returns a [View] omitting the named slots.
func (r *Registry) Exclude(names ...string) *View {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}

	return &View{registry: r, names: set, include: false}
}
