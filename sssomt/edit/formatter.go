package edit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sssom/sssom-core/model"
	"github.com/sssom/sssom-core/prefix"
	"github.com/sssom/sssom-core/slot"
)

// Formatter expands a template string against a mapping, substituting
// `%slot` placeholders and `%{slot|mod1|mod2(args)}` modifier chains
// (spec.md §4.J).
type Formatter struct {
	registry *slot.Registry
	mgr      *prefix.Manager
	// CURIEFormat holds a fmt-style one-verb format (e.g. "<%s>") for
	// CURIEs embedded in literal template text. [Formatter.Expand] does not
	// read it: literal text, CURIEs included, is copied through unchanged.
	CURIEFormat string
}

// NewFormatter returns a Formatter over reg (normally [model.MappingSlots])
// that shortens IRIs via mgr for the `short` modifier.
func NewFormatter(reg *slot.Registry, mgr *prefix.Manager) *Formatter {
	return &Formatter{registry: reg, mgr: mgr}
}

// Expand renders tmpl against m.
func (f *Formatter) Expand(tmpl string, m *model.Mapping) (string, error) {
	var out strings.Builder

	i := 0
	for i < len(tmpl) {
		if tmpl[i] != '%' {
			out.WriteByte(tmpl[i])
			i++

			continue
		}

		if i+1 < len(tmpl) && tmpl[i+1] == '{' {
			end := strings.IndexByte(tmpl[i+2:], '}')
			if end < 0 {
				return "", fmt.Errorf("edit: unterminated %%{...} placeholder in template")
			}

			expr := tmpl[i+2 : i+2+end]

			rendered, err := f.expandBraced(expr, m)
			if err != nil {
				return "", err
			}

			out.WriteString(rendered)
			i += 2 + end + 1

			continue
		}

		j := i + 1
		for j < len(tmpl) && isSlotChar(tmpl[j]) {
			j++
		}

		if j == i+1 {
			out.WriteByte('%')
			i++

			continue
		}

		name := tmpl[i+1 : j]

		rendered, err := f.renderSlot(name, m)
		if err != nil {
			return "", err
		}

		out.WriteString(rendered)
		i = j
	}

	return out.String(), nil
}

func isSlotChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// expandBraced handles `%{slot|mod1|mod2(args)}`, where slot may also be a
// property IRI naming an extension value.
func (f *Formatter) expandBraced(expr string, m *model.Mapping) (string, error) {
	parts := strings.Split(expr, "|")
	name := parts[0]
	mods := parts[1:]

	base, isList, listVals, err := f.rawValue(name, m)
	if err != nil {
		return "", err
	}

	for _, mod := range mods {
		base, isList, listVals, err = applyModifier(mod, base, isList, listVals, f.mgr)
		if err != nil {
			return "", err
		}
	}

	if isList {
		return strings.Join(listVals, ", "), nil
	}

	return base, nil
}

func (f *Formatter) renderSlot(name string, m *model.Mapping) (string, error) {
	s, _, list, err := f.rawValue(name, m)
	if err != nil {
		return "", err
	}

	if list != nil {
		return strings.Join(list, "|"), nil
	}

	return s, nil
}

// rawValue resolves name to either a scalar string or a list-of-string
// value on m, checking standard slots first and falling back to an
// extension value keyed by property IRI.
func (f *Formatter) rawValue(name string, m *model.Mapping) (scalar string, isList bool, list []string, err error) {
	if desc, ok := f.registry.SlotByName(name); ok {
		val, present := desc.Get(m)
		if !present {
			return "", false, nil, nil
		}

		switch val.Kind {
		case slot.StringType, slot.EnumType:
			return val.Str, false, nil, nil
		case slot.ListType:
			return "", true, val.List, nil
		case slot.DoubleType:
			return strconv.FormatFloat(val.D, 'g', -1, 64), false, nil, nil
		case slot.DateType:
			return val.Date.String(), false, nil, nil
		default:
			return "", false, nil, fmt.Errorf("edit: slot %s has no string form", name)
		}
	}

	if ext, ok := m.ExtensionValues()[name]; ok {
		return ext.String(), false, nil, nil
	}

	return "", false, nil, fmt.Errorf("%w: %s", model.ErrUnknownSlot, name)
}

// applyModifier applies one pipe-separated modifier to the current value.
func applyModifier(mod, scalar string, isList bool, list []string, mgr *prefix.Manager) (string, bool, []string, error) {
	name, args := splitModifierArgs(mod)

	switch name {
	case "short":
		if mgr == nil {
			return scalar, isList, list, nil
		}

		if isList {
			out := make([]string, len(list))
			for i, s := range list {
				out[i] = shortenOne(mgr, s)
			}

			return "", true, out, nil
		}

		return shortenOne(mgr, scalar), false, nil, nil
	case "flatten":
		sep, open, closeStr := ", ", "", ""
		if len(args) > 0 {
			sep = args[0]
		}
		if len(args) > 1 {
			open = args[1]
		}
		if len(args) > 2 {
			closeStr = args[2]
		}

		if !isList {
			return scalar, false, nil, nil
		}

		return open + strings.Join(list, sep) + closeStr, false, nil, nil
	case "list_item":
		if len(args) == 0 {
			return scalar, isList, list, fmt.Errorf("edit: list_item requires an index argument")
		}

		n, err := strconv.Atoi(args[0])
		if err != nil {
			return scalar, isList, list, fmt.Errorf("edit: list_item index %q is not a number", args[0])
		}

		if !isList || n < 1 || n > len(list) {
			return "", false, nil, nil
		}

		return list[n-1], false, nil, nil
	default:
		return scalar, isList, list, fmt.Errorf("edit: unknown formatter modifier %q", name)
	}
}

func shortenOne(mgr *prefix.Manager, iri string) string {
	if curie, ok := mgr.Shorten(iri); ok {
		return curie
	}

	return iri
}

// splitModifierArgs parses "name(arg1,arg2)" into ("name", ["arg1","arg2"]),
// or returns (mod, nil) if mod carries no parenthesised argument list.
func splitModifierArgs(mod string) (name string, args []string) {
	open := strings.IndexByte(mod, '(')
	if open < 0 {
		return mod, nil
	}

	name = mod[:open]
	inner := strings.TrimSuffix(mod[open+1:], ")")

	if inner == "" {
		return name, nil
	}

	return name, strings.Split(inner, ",")
}
