package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sssom/sssom-core/slot"
)

// CanonicalForm renders entity (a *Mapping or *MappingSet) as a
// deterministic S-expression over reg's slots, resolving Open Question #2
// (spec.md §9: "should list-valued slots be canonicalised before computing
// equality/ordering keys, and if so, how?"). Two entities that differ only
// in the serialisation order of a list-valued slot, or in extension-value
// map iteration order, produce identical output: list slots are sorted
// lexicographically and extension map keys are sorted by property IRI
// before rendering. Slot order itself follows reg's declaration order,
// never sorted, since that order is the writer's column-order contract
// (spec.md §4.C).
//
// The result is suitable as a stable sort key or content hash; it is not a
// wire format and carries no parser.
func CanonicalForm(entity any, reg *slot.Registry) string {
	var b strings.Builder

	b.WriteByte('(')

	first := true
	for _, d := range reg.Slots() {
		val, ok := d.Get(entity)
		if !ok {
			continue
		}

		if !first {
			b.WriteByte(' ')
		}
		first = false

		fmt.Fprintf(&b, "(%s . %s)", d.Name, canonicalValue(val))
	}

	b.WriteByte(')')

	return b.String()
}

func canonicalValue(val slot.Value) string {
	switch val.Kind {
	case slot.StringType, slot.EnumType:
		return strconv.Quote(val.Str)
	case slot.DoubleType:
		return strconv.FormatFloat(val.D, 'g', -1, 64)
	case slot.DateType:
		return strconv.Quote(val.Date.String())
	case slot.ListType:
		sorted := append([]string(nil), val.List...)
		sort.Strings(sorted)

		parts := make([]string, len(sorted))
		for i, s := range sorted {
			parts[i] = strconv.Quote(s)
		}

		return "(" + strings.Join(parts, " ") + ")"
	case slot.MapType:
		return "(" + strings.Join(canonicalStringMap(val.M), " ") + ")"
	case slot.ExtensionValueMapType:
		ext, _ := val.Ext.(map[string]ExtensionValue)
		return "(" + strings.Join(canonicalExtensionMap(ext), " ") + ")"
	case slot.ExtensionDefListType:
		defs, _ := val.Ext.([]ExtensionDefinition)
		return "(" + strings.Join(canonicalExtensionDefs(defs), " ") + ")"
	default:
		return "nil"
	}
}

func canonicalStringMap(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprintf("(%s . %s)", strconv.Quote(k), strconv.Quote(m[k]))
	}

	return out
}

func canonicalExtensionMap(m map[string]ExtensionValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprintf("(%s . %s:%s)", strconv.Quote(k), m[k].Kind, strconv.Quote(m[k].Raw))
	}

	return out
}

func canonicalExtensionDefs(defs []ExtensionDefinition) []string {
	sorted := append([]ExtensionDefinition(nil), defs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PropertyIRI < sorted[j].PropertyIRI })

	out := make([]string, len(sorted))
	for i, d := range sorted {
		out[i] = fmt.Sprintf("(%s %s %s)", strconv.Quote(d.SlotName), strconv.Quote(d.PropertyIRI), strconv.Quote(d.TypeHintIRI))
	}

	return out
}

// CanonicalizeListSlots sorts every list-valued propagatable or
// non-propagatable slot on m in place so that two Mappings built from the
// same TSV cell with different internal element order compare equal under
// reflect.DeepEqual as well as under [CanonicalForm] (spec.md §9 Open
// Question #2).
func CanonicalizeListSlots(m *Mapping, reg *slot.Registry) {
	for _, d := range reg.Slots() {
		if d.Type != slot.ListType {
			continue
		}

		val, ok := d.Get(m)
		if !ok {
			continue
		}

		sorted := append([]string(nil), val.List...)
		sort.Strings(sorted)
		_ = d.Set(m, slot.ListValue(sorted))
	}
}
