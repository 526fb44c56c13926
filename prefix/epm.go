package prefix

import (
	"encoding/json"
	"fmt"
)

// Mode selects how [EPM.Canonicalise] treats prefixes during
// canonicalisation (spec.md §4.B).
type Mode int

const (
	// PRE canonicalises prefixes before any other processing step.
	PRE Mode = iota
	// POST canonicalises prefixes after all other processing.
	POST
	// BOTH canonicalises both before and after.
	BOTH
)

// Record is one Extended Prefix Map entry: a canonical short name and IRI
// prefix, plus any number of synonym short names and synonym IRI prefixes
// that should be recognised as referring to the same canonical prefix
// (spec.md §4.B).
type Record struct {
	Name           string   `json:"ns_prefix"`
	Prefix         string   `json:"ns_prefix_base"`
	NameSynonyms   []string `json:"ns_prefix_synonyms,omitempty"`
	PrefixSynonyms []string `json:"ns_prefix_base_synonyms,omitempty"`
}

// EPM is an Extended Prefix Map: a collection of [Record]s indexed for
// O(1) canonical lookup by any of a prefix's synonym short names or
// synonym IRI prefixes (spec.md §4.B).
type EPM struct {
	records    []Record
	byName     map[string]*Record
	byIRIExact map[string]*Record
}

// ParseEPM decodes an EPM from its JSON array-of-records wire form (spec.md
// §6: the EPM is plain JSON, distinct from the YAML+TSV mapping set format).
func ParseEPM(data []byte) (*EPM, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing EPM: %w", err)
	}

	return NewEPM(records), nil
}

// NewEPM builds an EPM from records, indexing every canonical and synonym
// short name and IRI prefix.
func NewEPM(records []Record) *EPM {
	e := &EPM{
		records:    records,
		byName:     make(map[string]*Record),
		byIRIExact: make(map[string]*Record),
	}

	for i := range records {
		r := &records[i]

		e.byName[r.Name] = r
		for _, syn := range r.NameSynonyms {
			e.byName[syn] = r
		}

		e.byIRIExact[r.Prefix] = r
		for _, syn := range r.PrefixSynonyms {
			e.byIRIExact[syn] = r
		}
	}

	return e
}

// CanonicalisePrefix resolves short, a canonical or synonym short name, to
// its canonical short name.
func (e *EPM) CanonicalisePrefix(short string) (canonical string, ok bool) {
	r, found := e.byName[short]
	if !found {
		return short, false
	}

	return r.Name, true
}

// CanonicaliseIRI resolves base, a canonical or synonym IRI prefix, to its
// canonical IRI prefix.
func (e *EPM) CanonicaliseIRI(base string) (canonical string, ok bool) {
	r, found := e.byIRIExact[base]
	if !found {
		return base, false
	}

	return r.Prefix, true
}

// Resolve applies Mode to a short-name -> IRI prefix map, replacing
// synonym short names/IRI prefixes with their canonical forms wherever the
// EPM recognises them. PRE and BOTH canonicalise the map before returning;
// POST is a no-op here since "after processing" has no meaning for a bare
// prefix map (callers applying POST canonicalise the resulting mapping
// set's slot values instead, via [EPM.CanonicaliseIRI]/[EPM.CanonicalisePrefix]
// directly on each resolved IRI).
func (e *EPM) Resolve(prefixMap map[string]string, mode Mode) map[string]string {
	if mode == POST {
		return prefixMap
	}

	out := make(map[string]string, len(prefixMap))

	for short, base := range prefixMap {
		canonShort := short
		if c, ok := e.CanonicalisePrefix(short); ok {
			canonShort = c
		}

		canonBase := base
		if c, ok := e.CanonicaliseIRI(base); ok {
			canonBase = c
		}

		out[canonShort] = canonBase
	}

	return out
}

// Records returns the EPM's records in declaration order.
func (e *EPM) Records() []Record {
	return e.records
}
