// Package tsv implements spec.md §4.F: the SSSOM/TSV wire format, a YAML
// front-matter block (each line prefixed "# ") followed by a tab-separated
// table body, plus the spec.md §4.F writer preconditions (default license,
// mapping-set id synthesis, default mapping_tool, extension-definitions
// computation) and used-prefix collection. Propagation condensation is not
// done in this package; it is [model.Propagator.Condense].
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/sssom/sssom-core/errs"
	"github.com/sssom/sssom-core/model"
	"github.com/sssom/sssom-core/slot"
)

const frontMatterPrefix = "# "

// Read parses an SSSOM/TSV document from r into a [model.MappingSet].
// External metadata, if non-nil, is merged into the document's own
// front-matter with the document taking precedence on key collision
// (spec.md §4.F "PATH:METAPATH sidecar metadata" feature).
func Read(r io.Reader, externalMetadata map[string]any) (*model.MappingSet, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	meta, err := readFrontMatter(br)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]any, len(externalMetadata)+len(meta))
	for k, v := range externalMetadata {
		merged[k] = v
	}
	for k, v := range meta {
		merged[k] = v
	}

	set := model.NewMappingSet()
	if err := applySetMetadata(set, merged); err != nil {
		return nil, err
	}

	if err := readTable(br, set); err != nil {
		return nil, err
	}

	return set, nil
}

func readFrontMatter(br *bufio.Reader) (map[string]any, error) {
	var yamlLines []string

	for {
		peek, err := br.Peek(1)
		if err != nil || len(peek) == 0 || peek[0] != '#' {
			break
		}

		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errs.Wrap(errs.KindFormat, err, "reading front matter")
		}

		line = strings.TrimRight(line, "\r\n")
		yamlLines = append(yamlLines, strings.TrimPrefix(line, frontMatterPrefix))

		if err == io.EOF {
			break
		}
	}

	meta := make(map[string]any)
	if len(yamlLines) == 0 {
		return meta, nil
	}

	if err := yaml.Unmarshal([]byte(strings.Join(yamlLines, "\n")), &meta); err != nil {
		return nil, errs.Wrap(errs.KindFormat, err, "parsing YAML front matter")
	}

	return meta, nil
}

// applySetMetadata binds every front-matter key to the matching
// [model.MappingSetSlots] descriptor, falling back to a set-level
// extension value (spec.md §4.D) for keys with no standard slot. The
// "curie_map"/"prefix_map" key and "extension_definitions" key are
// handled specially since they are structural, not slot-valued.
func applySetMetadata(set *model.MappingSet, meta map[string]any) error {
	reg := model.MappingSetSlots()

	for key, raw := range meta {
		switch key {
		case "curie_map", "prefix_map":
			pm, ok := raw.(map[string]any)
			if !ok {
				continue
			}

			for short, iri := range pm {
				if s, ok := iri.(string); ok {
					set.SetPrefix(short, s)
				}
			}

			continue
		case "extension_definitions":
			defs, err := parseExtensionDefinitions(raw)
			if err != nil {
				return err
			}

			set.SetExtensionDefinitions(defs)

			continue
		}

		desc, ok := reg.SlotByName(key)
		if !ok {
			continue
		}

		val, err := decodeValue(desc.Type, raw)
		if err != nil {
			return fmt.Errorf("slot %s: %w", key, err)
		}

		if err := desc.Set(set, val); err != nil {
			return fmt.Errorf("slot %s: %w", key, err)
		}
	}

	return nil
}

func parseExtensionDefinitions(raw any) ([]model.ExtensionDefinition, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, nil
	}

	out := make([]model.ExtensionDefinition, 0, len(items))

	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		d := model.ExtensionDefinition{
			SlotName:    stringField(m, "slot_name"),
			PropertyIRI: stringField(m, "property"),
			TypeHintIRI: stringField(m, "type_hint"),
		}

		out = append(out, d)
	}

	return out, nil
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}

	return ""
}

func decodeValue(t slot.ValueType, raw any) (slot.Value, error) {
	switch t {
	case slot.StringType, slot.EnumType:
		s, ok := raw.(string)
		if !ok {
			return slot.Value{}, fmt.Errorf("%w: expected string", model.ErrTypeMismatch)
		}

		if t == slot.EnumType {
			return slot.EnumValue(s), nil
		}

		return slot.StringValue(s), nil
	case slot.ListType:
		items, ok := raw.([]any)
		if !ok {
			return slot.Value{}, fmt.Errorf("%w: expected list", model.ErrTypeMismatch)
		}

		out := make([]string, 0, len(items))
		for _, it := range items {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}

		return slot.ListValue(out), nil
	case slot.DoubleType:
		switch n := raw.(type) {
		case float64:
			return slot.DoubleValue(n), nil
		case uint64:
			return slot.DoubleValue(float64(n)), nil
		case int:
			return slot.DoubleValue(float64(n)), nil
		default:
			return slot.Value{}, fmt.Errorf("%w: expected number", model.ErrTypeMismatch)
		}
	case slot.DateType:
		s, ok := raw.(string)
		if !ok {
			return slot.Value{}, fmt.Errorf("%w: expected date string", model.ErrTypeMismatch)
		}

		d, err := slot.ParseDate(s)
		if err != nil {
			return slot.Value{}, err
		}

		return slot.DateValue(d), nil
	default:
		return slot.Value{}, fmt.Errorf("%w: unsupported slot type for front matter", model.ErrTypeMismatch)
	}
}

// readTable parses the tab-separated header + rows following the front
// matter, binding each column to a [model.MappingSlots] descriptor by name.
func readTable(br *bufio.Reader, set *model.MappingSet) error {
	reg := model.MappingSlots()

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header []string

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")

		if header == nil {
			header = fields
			continue
		}

		m, err := rowToMapping(reg, header, fields)
		if err != nil {
			return err
		}

		set.AddMapping(m)
	}

	if err := scanner.Err(); err != nil {
		return errs.Wrap(errs.KindFormat, err, "reading TSV body")
	}

	return nil
}

func rowToMapping(reg *slot.Registry, header, fields []string) (*model.Mapping, error) {
	// Required slots are populated from the row's own columns below, so
	// start from a bare zero-value Mapping rather than [model.NewMapping].
	m := &model.Mapping{}

	for i, col := range header {
		if i >= len(fields) || fields[i] == "" {
			continue
		}

		desc, ok := reg.SlotByName(col)
		if !ok {
			continue
		}

		val, err := cellToValue(desc.Type, fields[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}

		if err := desc.Set(m, val); err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}
	}

	return m, nil
}

func cellToValue(t slot.ValueType, cell string) (slot.Value, error) {
	switch t {
	case slot.StringType:
		return slot.StringValue(cell), nil
	case slot.EnumType:
		return slot.EnumValue(cell), nil
	case slot.ListType:
		return slot.ListValue(SplitList(cell)), nil
	case slot.DoubleType:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return slot.Value{}, err
		}

		return slot.DoubleValue(f), nil
	case slot.DateType:
		d, err := slot.ParseDate(cell)
		if err != nil {
			return slot.Value{}, err
		}

		return slot.DateValue(d), nil
	default:
		return slot.Value{}, fmt.Errorf("%w: unsupported column slot type", model.ErrTypeMismatch)
	}
}
