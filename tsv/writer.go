package tsv

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/sssom/sssom-core/model"
	"github.com/sssom/sssom-core/prefix"
	"github.com/sssom/sssom-core/slot"
	"github.com/sssom/sssom-core/version"
)

// defaultLicense is substituted for an empty license slot by [ApplyWriterPreconditions]
// (spec.md §4.F writer precondition: "a mapping set with no declared
// license is written with the 'all rights reserved' placeholder license
// rather than an empty cell").
const defaultLicense = "https://w3id.org/sssom/license/all-rights-reserved"

// ApplyWriterPreconditions mutates set in place to satisfy spec.md §4.F's
// writer preconditions before serialisation: a default license, a
// synthesised mapping_set_id if none is set, a mapping_tool identifying
// this library if the set declares none of its own, and set_level
// extension definitions reconciled from whatever extension values are
// actually present (spec.md §4.D). It does not run propagation/condensation;
// callers that want that run [model.Propagator.Condense] themselves first.
func ApplyWriterPreconditions(set *model.MappingSet, extPolicy model.ExtensionPolicy) error {
	if set.License() == "" {
		set.SetLicense(defaultLicense)
	}

	if set.ID() == "" {
		set.SetID("http://sssom.invalid/" + uuid.NewString())
	}

	if set.MappingTool() == "" {
		set.SetMappingTool(version.ToolIdentifier())
	}

	mgr := model.NewExtensionSlotManager(extPolicy)

	defs, _, err := mgr.Reconcile(set)
	if err != nil {
		return err
	}

	set.SetExtensionDefinitions(defs)

	return nil
}

// Write serialises set as an SSSOM/TSV document: a YAML front-matter block
// (set-level slots, prefix map, extension definitions) followed by a
// tab-separated table of mappings, with columns in [model.MappingSlots]
// declaration order restricted to slots populated on at least one mapping
// (spec.md §4.F).
//
// Write does not itself apply writer preconditions; call
// [ApplyWriterPreconditions] first if the caller wants defaults synthesised.
func Write(w io.Writer, set *model.MappingSet) error {
	bw := bufio.NewWriter(w)

	if err := writeFrontMatter(bw, set); err != nil {
		return err
	}

	if err := writeTable(bw, set); err != nil {
		return err
	}

	return bw.Flush()
}

func writeFrontMatter(bw *bufio.Writer, set *model.MappingSet) error {
	meta := make(map[string]any)

	reg := model.MappingSetSlots()
	reg.VisitSlots(set, slot.VisitorFuncs{
		String: func(name, v string) { meta[name] = v },
		List:   func(name string, v []string) { meta[name] = v },
		Enum:   func(name, v string) { meta[name] = v },
		Double: func(name string, v float64) { meta[name] = v },
		DateFn: func(name string, v slot.Date) { meta[name] = v.String() },
	})

	if pm := set.PrefixMap(); len(pm) > 0 {
		meta["curie_map"] = pm
	}

	if defs := set.ExtensionDefinitions(); len(defs) > 0 {
		list := make([]map[string]string, len(defs))
		for i, d := range defs {
			entry := map[string]string{"slot_name": d.SlotName, "property": d.PropertyIRI}
			if d.TypeHintIRI != "" {
				entry["type_hint"] = d.TypeHintIRI
			}
			list[i] = entry
		}

		meta["extension_definitions"] = list
	}

	if len(meta) == 0 {
		return nil
	}

	out, err := yaml.MarshalWithOptions(meta, yaml.UseLiteralStyleIfMultiline(true))
	if err != nil {
		return fmt.Errorf("marshalling front matter: %w", err)
	}

	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if _, err := fmt.Fprintf(bw, "%s%s\n", frontMatterPrefix, line); err != nil {
			return err
		}
	}

	return nil
}

func writeTable(bw *bufio.Writer, set *model.MappingSet) error {
	reg := model.MappingSlots()
	columns := populatedColumns(reg, set.Mappings())

	if len(columns) == 0 {
		return nil
	}

	if _, err := bw.WriteString(strings.Join(columns, "\t") + "\n"); err != nil {
		return err
	}

	descs := make([]*slot.Descriptor, len(columns))
	for i, name := range columns {
		descs[i], _ = reg.SlotByName(name)
	}

	for _, m := range set.Mappings() {
		cells := make([]string, len(columns))

		for i, d := range descs {
			val, ok := d.Get(m)
			if !ok {
				continue
			}

			cells[i] = cellFromValue(val)
		}

		if _, err := bw.WriteString(strings.Join(cells, "\t") + "\n"); err != nil {
			return err
		}
	}

	return nil
}

// populatedColumns returns the subset of reg's slots (in declaration
// order) populated on at least one mapping.
func populatedColumns(reg *slot.Registry, mappings []*model.Mapping) []string {
	present := make(map[string]bool)

	for _, m := range mappings {
		for _, d := range reg.Slots() {
			if present[d.Name] {
				continue
			}

			if _, ok := d.Get(m); ok {
				present[d.Name] = true
			}
		}
	}

	var out []string
	for _, d := range reg.Slots() {
		if present[d.Name] {
			out = append(out, d.Name)
		}
	}

	return out
}

func cellFromValue(v slot.Value) string {
	switch v.Kind {
	case slot.StringType, slot.EnumType:
		return v.Str
	case slot.ListType:
		return JoinList(v.List)
	case slot.DoubleType:
		return strconv.FormatFloat(v.D, 'g', -1, 64)
	case slot.DateType:
		return v.Date.String()
	default:
		return ""
	}
}

// CollectUsedPrefixes expands set's prefix map through mgr and records
// which short names are actually referenced by any entity-reference or
// URI-valued slot across the set and its mappings, per spec.md §4.A
// "used_prefixes" (the subset of declared prefixes that's actually used —
// narrower than the full declared map, which may carry unused entries).
func CollectUsedPrefixes(set *model.MappingSet, mgr *prefix.Manager) []string {
	visit := func(entity any, reg *slot.Registry) {
		for _, d := range reg.Slots() {
			if !d.EntityRef && !d.URIValued {
				continue
			}

			val, ok := d.Get(entity)
			if !ok {
				continue
			}

			switch val.Kind {
			case slot.StringType, slot.EnumType:
				mgr.Shorten(expandIfCURIE(mgr, val.Str))
			case slot.ListType:
				for _, s := range val.List {
					mgr.Shorten(expandIfCURIE(mgr, s))
				}
			}
		}
	}

	setReg, mapReg := model.MappingSetSlots(), model.MappingSlots()
	visit(set, setReg)

	for _, m := range set.Mappings() {
		visit(m, mapReg)
	}

	return mgr.UsedPrefixes()
}

// expandIfCURIE returns s expanded to a full IRI if it looks like a CURIE
// known to mgr, else s unchanged, so [prefix.Manager.Shorten] always sees
// an IRI and can record the short name it resolves back to.
func expandIfCURIE(mgr *prefix.Manager, s string) string {
	if expanded, ok := mgr.Expand(s); ok {
		return expanded
	}

	return s
}
