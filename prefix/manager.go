// Package prefix implements spec.md §4.A/§4.B: CURIE shortening/expansion
// against a prefix map, and the Extended Prefix Map (EPM) canonicalisation
// layer used when reconciling two mapping sets' differing prefix choices.
package prefix

import (
	"sort"
	"strings"

	"github.com/sssom/sssom-core/errs"
	"github.com/sssom/sssom-core/warnbus"
)

// builtinPrefixes are always available regardless of what a mapping set
// declares (spec.md §4.A: "a fixed set of builtin prefixes is always
// available: sssom, owl, rdf, rdfs, skos, semapv, linkml").
var builtinPrefixes = map[string]string{
	"sssom":  "https://w3id.org/sssom/",
	"owl":    "http://www.w3.org/2002/07/owl#",
	"rdf":    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":   "http://www.w3.org/2000/01/rdf-schema#",
	"skos":   "http://www.w3.org/2004/02/skos/core#",
	"semapv": "https://w3id.org/semapv/vocab/",
	"linkml": "https://w3id.org/linkml/",
}

// Manager resolves CURIEs (short_name:local_id) against a short-name -> IRI
// prefix map, tracks which prefixes were actually used (spec.md §4.A
// "used_prefixes" — the set actually referenced by a mapping set's slots,
// a subset of what's declared), and reports unshortenable IRIs as warnings
// rather than failing the whole operation (spec.md §7).
//
// A Manager always includes [builtinPrefixes]; entries supplied via
// [NewManager] take precedence over a builtin of the same short name.
// [Manager.Merge] keeps any existing entry, builtin or not, and reports
// the conflicting short name.
type Manager struct {
	prefixes map[string]string
	used     map[string]bool
	warnings *warnbus.Bus
}

// NewManager builds a Manager seeded with the builtin prefixes plus extra,
// reporting unshortenable IRIs and other non-fatal conditions to bus (which
// may be nil, in which case such conditions are silently dropped).
func NewManager(extra map[string]string, bus *warnbus.Bus) *Manager {
	m := &Manager{
		prefixes: make(map[string]string, len(builtinPrefixes)+len(extra)),
		used:     make(map[string]bool),
		warnings: bus,
	}

	for k, v := range builtinPrefixes {
		m.prefixes[k] = v
	}

	for k, v := range extra {
		m.prefixes[k] = v
	}

	return m
}

// PrefixMap returns a copy of the manager's full short-name -> IRI table,
// including builtins.
func (m *Manager) PrefixMap() map[string]string {
	out := make(map[string]string, len(m.prefixes))
	for k, v := range m.prefixes {
		out[k] = v
	}

	return out
}

// Expand resolves a CURIE ("short_name:local_id") to its full IRI. A
// string already containing "://" is assumed to be a full IRI and passes
// through unchanged with ok=true (spec.md §4.A: "strings already
// containing `://` pass through unchanged") — this is the caller's
// success case, distinct from ok=false, which means curie isn't of CURIE
// shape at all (no colon) or names an unregistered short name, either of
// which spec.md §7 treats as a hard "undeclared prefix" error.
func (m *Manager) Expand(curie string) (iri string, ok bool) {
	if strings.Contains(curie, "://") {
		return curie, true
	}

	short, local, found := strings.Cut(curie, ":")
	if !found {
		return curie, false
	}

	base, registered := m.prefixes[short]
	if !registered {
		return curie, false
	}

	m.used[short] = true

	return base + local, true
}

// Shorten resolves a full IRI to its shortest registered CURIE, preferring
// the longest matching prefix IRI (spec.md §4.A: "the longest-matching
// prefix wins when several registered prefixes are a textual prefix of the
// same IRI"). It reports an unshortenable-IRI warning and returns ok=false
// if no registered prefix matches.
func (m *Manager) Shorten(iri string) (curie string, ok bool) {
	bestShort, bestBase := "", ""

	for short, base := range m.prefixes {
		if !strings.HasPrefix(iri, base) {
			continue
		}

		if len(base) > len(bestBase) {
			bestShort, bestBase = short, base
		}
	}

	if bestBase == "" {
		m.emit(errs.KindPrefix, "unshortenable IRI: "+iri)
		return iri, false
	}

	m.used[bestShort] = true

	return bestShort + ":" + strings.TrimPrefix(iri, bestBase), true
}

// Merge adds other's entries into m, with incumbent entries taking
// precedence on a short-name collision unless the IRIs agree (spec.md
// §4.A "merge" operation: "first encountered prefix for a given short name
// wins; conflicting re-declarations of an already-seen short name are
// reported, not silently overwritten").
func (m *Manager) Merge(other map[string]string) []string {
	var conflicts []string

	for short, iri := range other {
		existing, present := m.prefixes[short]
		if !present {
			m.prefixes[short] = iri
			continue
		}

		if existing != iri {
			conflicts = append(conflicts, short)
			m.emit(errs.KindPrefix, "conflicting prefix declaration for "+short)
		}
	}

	return conflicts
}

// UsedPrefixes returns the short names actually resolved via Expand or
// Shorten since the Manager was created, sorted.
func (m *Manager) UsedPrefixes() []string {
	out := make([]string, 0, len(m.used))
	for k := range m.used {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

func (m *Manager) emit(kind errs.Kind, msg string) {
	if m.warnings != nil {
		m.warnings.Emit(warnbus.Warning{Kind: kind, Message: msg})
	}
}
