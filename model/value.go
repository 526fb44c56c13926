package model

import (
	"fmt"
	"strconv"

	"github.com/sssom/sssom-core/slot"
)

// ExtensionValueKind is the dynamic type tag of an [ExtensionValue]
// (spec.md §3: "a tagged variant over {boolean, integer, double, string,
// date, datetime, identifier, uri, other}").
type ExtensionValueKind int

const (
	ExtBoolean ExtensionValueKind = iota
	ExtInteger
	ExtDouble
	ExtString
	ExtDate
	ExtDatetime
	ExtIdentifier
	ExtURI
	ExtOther
)

func (k ExtensionValueKind) String() string {
	switch k {
	case ExtBoolean:
		return "boolean"
	case ExtInteger:
		return "integer"
	case ExtDouble:
		return "double"
	case ExtString:
		return "string"
	case ExtDate:
		return "date"
	case ExtDatetime:
		return "datetime"
	case ExtIdentifier:
		return "identifier"
	case ExtURI:
		return "uri"
	default:
		return "other"
	}
}

// ParseExtensionValueKind parses a type_hint_iri's local name or a bare
// keyword into an [ExtensionValueKind], defaulting to ExtOther.
func ParseExtensionValueKind(hint string) ExtensionValueKind {
	switch hint {
	case "boolean":
		return ExtBoolean
	case "integer", "int":
		return ExtInteger
	case "double", "float", "decimal":
		return ExtDouble
	case "string":
		return ExtString
	case "date":
		return ExtDate
	case "datetime", "date_time":
		return ExtDatetime
	case "identifier":
		return ExtIdentifier
	case "uri", "iri":
		return ExtURI
	default:
		return ExtOther
	}
}

// ExtensionValue is the tagged variant carried by a Mapping's or
// MappingSet's extension values map (spec.md §3). It round-trips through
// string form regardless of Kind.
type ExtensionValue struct {
	Kind ExtensionValueKind
	Raw  string // canonical string form, always populated
}

// NewExtensionValue builds an [ExtensionValue] of the given kind from its
// string form, which is retained verbatim as Raw.
func NewExtensionValue(kind ExtensionValueKind, raw string) ExtensionValue {
	return ExtensionValue{Kind: kind, Raw: raw}
}

// String returns the value's canonical string form.
func (v ExtensionValue) String() string {
	return v.Raw
}

// Bool interprets Raw as a boolean; ok is false if Raw doesn't parse.
func (v ExtensionValue) Bool() (b, ok bool) {
	parsed, err := strconv.ParseBool(v.Raw)
	if err != nil {
		return false, false
	}

	return parsed, true
}

// Int interprets Raw as an integer; ok is false if Raw doesn't parse.
func (v ExtensionValue) Int() (n int64, ok bool) {
	parsed, err := strconv.ParseInt(v.Raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return parsed, true
}

// Float interprets Raw as a double; ok is false if Raw doesn't parse.
func (v ExtensionValue) Float() (f float64, ok bool) {
	parsed, err := strconv.ParseFloat(v.Raw, 64)
	if err != nil {
		return 0, false
	}

	return parsed, true
}

// Date interprets Raw as a civil date, truncating any time component
// (spec.md §3 invariants).
func (v ExtensionValue) Date() (slot.Date, error) {
	return slot.ParseDate(v.Raw)
}

// ExtensionDefinition binds a user-declared extension slot name to its
// property IRI and an optional type hint (spec.md §4.D).
type ExtensionDefinition struct {
	SlotName    string
	PropertyIRI string
	TypeHintIRI string
}

// Validate checks the extension slot name against spec.md §3's invariant:
// it must match `[A-Za-z_][A-Za-z0-9_]*` and must not collide with a
// standard slot name (checked against reg, typically MappingSlots()).
func (d ExtensionDefinition) Validate(reg *slot.Registry) error {
	if !isValidExtensionName(d.SlotName) {
		return fmt.Errorf("%w: %q", ErrInvalidExtensionName, d.SlotName)
	}

	if _, standard := reg.SlotByName(d.SlotName); standard {
		return fmt.Errorf("%w: %q collides with a standard slot", ErrInvalidExtensionName, d.SlotName)
	}

	return nil
}

func isValidExtensionName(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
