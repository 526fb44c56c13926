// Package edit implements the two action-facing services described in
// spec.md §4.J: an Editor that mutates a mapping's slots, and a Formatter
// that expands a template string against a mapping.
package edit

import (
	"fmt"
	"strings"

	"github.com/sssom/sssom-core/model"
	"github.com/sssom/sssom-core/slot"
)

// mandatoryIDSlots are the three slots an assign to empty/null must
// reject rather than delete (spec.md §4.J).
var mandatoryIDSlots = map[string]bool{
	"subject_id": true, "predicate_id": true, "object_id": true,
}

// Editor mutates a [*model.Mapping]'s slots by name against reg (normally
// [model.MappingSlots]).
type Editor struct {
	registry *slot.Registry
}

// NewEditor returns an Editor over reg.
func NewEditor(reg *slot.Registry) *Editor {
	return &Editor{registry: reg}
}

// Assign sets slotName on m to literal, parsed per the slot's declared
// type: string, list split on '|', date, double, or enum. An empty
// literal deletes the slot, except for the three mandatory ID slots,
// where it is an error (spec.md §4.J).
func (e *Editor) Assign(m *model.Mapping, slotName, literal string) error {
	desc, ok := e.registry.SlotByName(slotName)
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrUnknownSlot, slotName)
	}

	if literal == "" {
		if mandatoryIDSlots[slotName] {
			return fmt.Errorf("%w: %s", model.ErrRequiredSlotEmpty, slotName)
		}

		switch slotName {
		case "confidence":
			m.ClearConfidence()
			return nil
		case "similarity_score":
			m.ClearSimilarityScore()
			return nil
		}

		return desc.Set(m, slot.Value{Kind: desc.Type})
	}

	val, err := parseLiteral(desc.Type, literal)
	if err != nil {
		return fmt.Errorf("assign %s: %w", slotName, err)
	}

	return desc.Set(m, val)
}

// Edit applies assign to a single "slot=value" pair (spec.md §4.J: "edit
// is assign with a =-separated pair").
func (e *Editor) Edit(m *model.Mapping, pair string) error {
	slotName, value, ok := strings.Cut(pair, "=")
	if !ok {
		return fmt.Errorf("edit: malformed pair %q, expected slot=value", pair)
	}

	return e.Assign(m, slotName, value)
}

// Replace applies a search-replace on slotName's string value, or on each
// element of a list-valued slot; it's an error on any other slot type
// (spec.md §4.J).
func (e *Editor) Replace(m *model.Mapping, slotName string, re Matcher, replacement string) error {
	desc, ok := e.registry.SlotByName(slotName)
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrUnknownSlot, slotName)
	}

	val, present := desc.Get(m)
	if !present {
		return nil
	}

	switch val.Kind {
	case slot.StringType, slot.EnumType:
		return desc.Set(m, slot.Value{Kind: val.Kind, Str: re.ReplaceAllString(val.Str, replacement)})
	case slot.ListType:
		out := make([]string, len(val.List))
		for i, s := range val.List {
			out[i] = re.ReplaceAllString(s, replacement)
		}

		return desc.Set(m, slot.ListValue(out))
	default:
		return fmt.Errorf("%w: replace unsupported on slot %s (%s)", model.ErrTypeMismatch, slotName, val.Kind)
	}
}

// Matcher is the minimal interface [Editor.Replace] needs from a compiled
// regular expression, so callers pass *regexp.Regexp directly.
type Matcher interface {
	ReplaceAllString(src, repl string) string
}

func parseLiteral(t slot.ValueType, literal string) (slot.Value, error) {
	switch t {
	case slot.StringType:
		return slot.StringValue(literal), nil
	case slot.EnumType:
		return slot.EnumValue(literal), nil
	case slot.ListType:
		parts := strings.Split(literal, "|")
		return slot.ListValue(parts), nil
	case slot.DateType:
		d, err := slot.ParseDate(literal)
		if err != nil {
			return slot.Value{}, err
		}

		return slot.DateValue(d), nil
	case slot.DoubleType:
		var f float64
		if _, err := fmt.Sscanf(literal, "%g", &f); err != nil {
			return slot.Value{}, fmt.Errorf("%w: %q is not a number", model.ErrTypeMismatch, literal)
		}

		return slot.DoubleValue(f), nil
	default:
		return slot.Value{}, fmt.Errorf("%w: cannot assign a literal to slot type %s", model.ErrTypeMismatch, t)
	}
}
