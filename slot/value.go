// Package slot implements the process-wide slot metamodel described in
// spec.md §4.C: it enumerates the slots of each entity type (Mapping,
// MappingSet), records each slot's name/type/propagatable/entity-reference/
// URI/version-introduced attributes, and dispatches a closed, reflection-free
// visitor over whichever slots are populated on a given entity.
//
// Per spec.md §9 Design Notes, dynamic dispatch here is a trait/interface
// object registry (a name→[Descriptor] table built once at process start),
// not Go's reflect package: the [Visitor] interface is an exhaustive closed
// pattern match over the slot value kinds, mirroring the way the teacher
// module (magicschema) dispatches over a closed set of YAML AST node kinds.
package slot

// ValueType is the declared structural type of a slot's value, per
// spec.md §3 "Slot<T>: ... value type (string / list-of-string / enum /
// double / date / map / extension-definition-list / extension-value-map)".
type ValueType int

const (
	// StringType is a plain scalar string slot.
	StringType ValueType = iota
	// ListType is a list-of-string slot (multi-valued, unordered
	// semantically, serialised in deterministic order).
	ListType
	// EnumType is a scalar string slot constrained to a fixed vocabulary.
	EnumType
	// DoubleType is a floating-point slot (confidence, similarity score).
	DoubleType
	// DateType is a civil (year-month-day) date slot.
	DateType
	// MapType is a string-keyed string-valued map slot.
	MapType
	// ExtensionDefListType is the mapping set's extension_definitions list.
	ExtensionDefListType
	// ExtensionValueMapType is a property-IRI-keyed extension value map.
	ExtensionValueMapType
)

// String returns a human-readable name for t.
func (t ValueType) String() string {
	switch t {
	case StringType:
		return "string"
	case ListType:
		return "list"
	case EnumType:
		return "enum"
	case DoubleType:
		return "double"
	case DateType:
		return "date"
	case MapType:
		return "map"
	case ExtensionDefListType:
		return "extension_definitions"
	case ExtensionValueMapType:
		return "extension_values"
	default:
		return "unknown"
	}
}

// Value is the tagged value an accessor returns for one populated slot.
// Exactly one field is meaningful, selected by Kind; callers use the
// corresponding Visitor method, not a type switch on Value itself, to
// preserve the closed-dispatch design described in the package doc.
type Value struct {
	Kind ValueType
	Str  string
	List []string
	D    float64
	Date Date
	M    map[string]string
	// Ext carries the payload for ExtensionDefListType/ExtensionValueMapType
	// slots. Its concrete type is owned by package model; slot treats it as
	// opaque so that slot never needs to import model (which imports slot).
	Ext any
}

// StringValue builds a populated string [Value].
func StringValue(s string) Value { return Value{Kind: StringType, Str: s} }

// ListValue builds a populated list [Value].
func ListValue(l []string) Value { return Value{Kind: ListType, List: l} }

// EnumValue builds a populated enum [Value].
func EnumValue(s string) Value { return Value{Kind: EnumType, Str: s} }

// DoubleValue builds a populated double [Value].
func DoubleValue(d float64) Value { return Value{Kind: DoubleType, D: d} }

// DateValue builds a populated date [Value].
func DateValue(d Date) Value { return Value{Kind: DateType, Date: d} }

// MapValue builds a populated map [Value].
func MapValue(m map[string]string) Value { return Value{Kind: MapType, M: m} }

// ExtensionDefListValue builds a populated extension-definition-list
// [Value], where ext is a []model.ExtensionDefinition carried opaquely.
func ExtensionDefListValue(ext any) Value { return Value{Kind: ExtensionDefListType, Ext: ext} }

// ExtensionValueMapValue builds a populated extension-value-map [Value],
// where ext is a map[string]model.ExtensionValue carried opaquely.
func ExtensionValueMapValue(ext any) Value { return Value{Kind: ExtensionValueMapType, Ext: ext} }
