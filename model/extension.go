package model

// ExtensionPolicy controls how an [ExtensionSlotManager] treats a property
// IRI encountered in extension values that carries no matching
// [ExtensionDefinition] (spec.md §4.D).
type ExtensionPolicy int

const (
	// PolicyNone ignores extension_definitions entirely: every extension
	// value is accepted, keyed by property IRI, with no name binding.
	PolicyNone ExtensionPolicy = iota
	// PolicyDefined accepts only property IRIs that have a matching
	// ExtensionDefinition; others are reported via Undeclared.
	PolicyDefined
	// PolicyUndefined accepts every property IRI, synthesising an
	// ExtensionDefinition (SlotName derived from the IRI's local name) for
	// any that lack one, so a later read sees every extension value named.
	PolicyUndefined
)

// ExtensionSlotManager implements spec.md §4.D: it reconciles a mapping
// set's declared extension_definitions against the extension values
// actually present on the set and its mappings, and synthesises the
// extension_definitions block a writer must emit.
type ExtensionSlotManager struct {
	policy ExtensionPolicy
}

// NewExtensionSlotManager builds a manager for the given read policy.
func NewExtensionSlotManager(policy ExtensionPolicy) *ExtensionSlotManager {
	return &ExtensionSlotManager{policy: policy}
}

// Reconcile walks set and every mapping it contains, building the name ->
// definition table implied by policy, and returns the property IRIs found
// with no definition and no synthesis under PolicyDefined (spec.md §4.D
// "undeclared extension slot" edge case).
func (m *ExtensionSlotManager) Reconcile(set *MappingSet) (defs []ExtensionDefinition, undeclared []string, err error) {
	declared := make(map[string]ExtensionDefinition, len(set.ExtensionDefinitions()))
	for _, d := range set.ExtensionDefinitions() {
		declared[d.PropertyIRI] = d
	}

	seen := make(map[string]bool)
	var order []string

	visit := func(values map[string]ExtensionValue) {
		for iri := range values {
			if seen[iri] {
				continue
			}

			seen[iri] = true
			order = append(order, iri)
		}
	}

	visit(set.ExtensionValues())
	for _, mm := range set.Mappings() {
		visit(mm.ExtensionValues())
	}

	switch m.policy {
	case PolicyNone:
		return nil, nil, nil
	case PolicyDefined:
		for _, iri := range order {
			if d, ok := declared[iri]; ok {
				defs = append(defs, d)
			} else {
				undeclared = append(undeclared, iri)
			}
		}
	case PolicyUndefined:
		for _, iri := range order {
			if d, ok := declared[iri]; ok {
				defs = append(defs, d)
				continue
			}

			defs = append(defs, ExtensionDefinition{
				SlotName:    synthesizeSlotName(iri),
				PropertyIRI: iri,
			})
		}
	}

	return defs, undeclared, nil
}

// synthesizeSlotName derives a slot name from a property IRI's local name
// (the fragment after the last '#' or '/'), for PolicyUndefined.
func synthesizeSlotName(iri string) string {
	cut := -1

	for i := len(iri) - 1; i >= 0; i-- {
		if iri[i] == '#' || iri[i] == '/' {
			cut = i
			break
		}
	}

	local := iri
	if cut >= 0 {
		local = iri[cut+1:]
	}

	out := make([]rune, 0, len(local))
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}

	if len(out) == 0 || (out[0] >= '0' && out[0] <= '9') {
		out = append([]rune{'_'}, out...)
	}

	return string(out)
}
