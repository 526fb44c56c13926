package slot

// View is a configured subset of a [Registry], produced by
// [Registry.IncludeOnly] or [Registry.Exclude] (spec.md §4.C).
type View struct {
	registry *Registry
	names    map[string]bool
	include  bool
}

// Slots returns the descriptors selected by this view, in the parent
// registry's declaration order.
func (v *View) Slots() []*Descriptor {
	var out []*Descriptor

	for _, d := range v.registry.order {
		if v.selected(d.Name) {
			out = append(out, d)
		}
	}

	return out
}

func (v *View) selected(name string) bool {
	if v.include {
		return v.names[name]
	}

	return !v.names[name]
}

// VisitSlots invokes vis for each selected, populated slot on entity, in
// declaration order.
func (v *View) VisitSlots(entity any, vis Visitor) {
	for _, d := range v.registry.order {
		if !v.selected(d.Name) {
			continue
		}

		val, ok := d.Get(entity)
		if !ok {
			continue
		}

		dispatch(d.Name, val, vis)
	}
}
