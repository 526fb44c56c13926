package model

import "fmt"

// SKOS/OWL predicate IRIs used by the built-in invertible-predicate table
// (spec.md §4.G). These mirror the "builtin" prefixes [prefix.Manager]
// always carries (sssom, owl, rdf, rdfs, skos, semapv, linkml).
const (
	SKOSExactMatch   = "http://www.w3.org/2004/02/skos/core#exactMatch"
	SKOSCloseMatch   = "http://www.w3.org/2004/02/skos/core#closeMatch"
	SKOSBroadMatch   = "http://www.w3.org/2004/02/skos/core#broadMatch"
	SKOSNarrowMatch  = "http://www.w3.org/2004/02/skos/core#narrowMatch"
	SKOSRelatedMatch = "http://www.w3.org/2004/02/skos/core#relatedMatch"
	OWLEquivalentClass    = "http://www.w3.org/2002/07/owl#equivalentClass"
	OWLEquivalentProperty = "http://www.w3.org/2002/07/owl#equivalentProperty"
)

// invertiblePredicates maps a predicate IRI to its inverse. Self-inverse
// predicates map to themselves.
var invertiblePredicates = map[string]string{
	SKOSExactMatch:        SKOSExactMatch,
	SKOSCloseMatch:        SKOSCloseMatch,
	SKOSRelatedMatch:      SKOSRelatedMatch,
	SKOSBroadMatch:        SKOSNarrowMatch,
	SKOSNarrowMatch:       SKOSBroadMatch,
	OWLEquivalentClass:    OWLEquivalentClass,
	OWLEquivalentProperty: OWLEquivalentProperty,
}

// InversePredicate looks up the built-in inverse of predicate, per
// spec.md §4.G.
func InversePredicate(predicateIRI string) (string, bool) {
	inv, ok := invertiblePredicates[predicateIRI]
	return inv, ok
}

// invertCardinality swaps 1:n <-> n:1 and leaves 1:1/n:n unchanged
// (spec.md §4.G).
func invertCardinality(c string) string {
	switch c {
	case Cardinality1toN:
		return CardinalityNto1
	case CardinalityNto1:
		return Cardinality1toN
	default:
		return c
	}
}

// Invert returns a new Mapping with subject and object (and their
// label/category/source/source-version/match-field/preprocessing slots)
// swapped, the predicate replaced by explicitPredicate if non-empty or
// else by the invertible-predicate table's inverse, and cardinality
// inverted (spec.md §4.G). It returns [ErrNotInvertible] if explicitPredicate
// is empty and no inverse is known for m's predicate.
func (m *Mapping) Invert(explicitPredicate string) (*Mapping, error) {
	predicate := explicitPredicate

	if predicate == "" {
		inv, ok := InversePredicate(m.predicateID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotInvertible, m.predicateID)
		}

		predicate = inv
	}

	out := m.Clone()

	out.subjectID, out.objectID = m.objectID, m.subjectID
	out.subjectLabel, out.objectLabel = m.objectLabel, m.subjectLabel
	out.subjectCategory, out.objectCategory = m.objectCategory, m.subjectCategory
	out.subjectSource, out.objectSource = m.objectSource, m.subjectSource
	out.subjectSrcVer, out.objectSrcVer = m.objectSrcVer, m.subjectSrcVer
	out.subjectMatchFld, out.objectMatchFld = cloneSlice(m.objectMatchFld), cloneSlice(m.subjectMatchFld)
	out.subjectPreproc, out.objectPreproc = cloneSlice(m.objectPreproc), cloneSlice(m.subjectPreproc)
	out.subjectType, out.objectType = m.objectType, m.subjectType

	out.predicateID = predicate
	out.cardinality = invertCardinality(m.cardinality)

	return out, nil
}
