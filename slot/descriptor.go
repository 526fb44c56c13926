package slot

// GetFunc reads the named slot's value off entity, returning ok=false if
// the slot is absent/empty. entity is typically a *model.Mapping or
// *model.MappingSet; it is typed any here so slot need not import model.
type GetFunc func(entity any) (Value, bool)

// SetFunc writes v onto the named slot of entity, reading the field of v
// that matches the slot's declared Type; v's Kind is not checked. It
// returns an error if the underlying setter rejects the value (e.g. a
// mandatory ID slot asked to go empty).
type SetFunc func(entity any, v Value) error

// Descriptor is the per-slot metadata record described in spec.md §3
// "Slot<T>" and §4.C: "a value of a common record type — captures name,
// flags, value-type tag, and a pointer to typed accessor/mutator closures."
type Descriptor struct {
	// Name is the slot's lowercase snake_case wire name.
	Name string
	// Type is the slot's declared structural value type.
	Type ValueType
	// Propagatable marks a per-mapping slot eligible for set-level
	// propagation/condensation (spec.md §4.E).
	Propagatable bool
	// EntityRef marks a value expected to be an IRI that may be shortened
	// to a CURIE at serialisation boundaries (spec.md §3 invariants).
	EntityRef bool
	// URIValued marks a value expected to be an absolute IRI that is never
	// shortened (spec.md §3 "URI-typed slots are similar but may not be
	// shortened to CURIEs").
	URIValued bool
	// VersionIntroduced records the schema version that introduced this
	// slot, for schema-evolution bookkeeping (spec.md §3).
	VersionIntroduced string
	// Required marks a slot that must be present on output (spec.md §3:
	// subject_id, predicate_id, object_id, mapping_justification).
	Required bool

	Get GetFunc
	Set SetFunc
}
