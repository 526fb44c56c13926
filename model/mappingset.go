package model

import "github.com/sssom/sssom-core/slot"

// MappingSet is the collection described in spec.md §3: set-level metadata
// slots, an ordered list of [Mapping]s it owns (destroyed when the set is),
// and auxiliary data (a prefix map, extension definitions, and a property
// IRI -> [ExtensionValue] map).
type MappingSet struct {
	mappings []*Mapping

	id          string
	title       string
	description string
	version     string
	license     string
	pubDate     slot.Date
	creatorID   []string
	creatorLbl  []string
	seeAlso     []string
	comment     string

	hasConfidence bool
	confidence    float64

	// Propagatable set-level slots (spec.md §4.E); mirror the identically
	// named per-mapping slots.
	subjectSource   string
	objectSource    string
	subjectMatchFld []string
	objectMatchFld  []string
	subjectPreproc  []string
	objectPreproc   []string
	subjectType     string
	objectType      string
	predicateType   string
	similarityMsr   string
	mappingProvider string
	mappingTool     string
	mappingDate     slot.Date

	// Auxiliary data (spec.md §3).
	prefixMap   map[string]string
	extDefs     []ExtensionDefinition
	extensions  map[string]ExtensionValue
}

// NewMappingSet returns an empty MappingSet.
func NewMappingSet() *MappingSet {
	return &MappingSet{}
}

// Mappings returns the set's mappings in order. The returned slice is
// shared; use [MappingSet.AddMapping]/[MappingSet.RemoveMapping] to mutate
// membership.
func (s *MappingSet) Mappings() []*Mapping {
	return s.mappings
}

// Len returns the number of mappings in the set.
func (s *MappingSet) Len() int {
	return len(s.mappings)
}

// AddMapping appends m to the set, which thereafter owns it.
func (s *MappingSet) AddMapping(m *Mapping) {
	s.mappings = append(s.mappings, m)
}

// SetMappings replaces the set's mapping list wholesale, e.g. after a
// pipeline run produces a filtered output set (spec.md §4.K).
func (s *MappingSet) SetMappings(ms []*Mapping) {
	s.mappings = ms
}

// RemoveMapping removes the mapping at index i.
func (s *MappingSet) RemoveMapping(i int) {
	s.mappings = append(s.mappings[:i], s.mappings[i+1:]...)
}

// --- set-level metadata ---

func (s *MappingSet) ID() string     { return s.id }
func (s *MappingSet) SetID(v string) { s.id = v }
func (s *MappingSet) Title() string     { return s.title }
func (s *MappingSet) SetTitle(v string) { s.title = v }
func (s *MappingSet) Description() string     { return s.description }
func (s *MappingSet) SetDescription(v string) { s.description = v }
func (s *MappingSet) Version() string     { return s.version }
func (s *MappingSet) SetVersion(v string) { s.version = v }
func (s *MappingSet) License() string     { return s.license }
func (s *MappingSet) SetLicense(v string) { s.license = v }
func (s *MappingSet) PublicationDate() slot.Date     { return s.pubDate }
func (s *MappingSet) SetPublicationDate(v slot.Date) { s.pubDate = v }
func (s *MappingSet) CreatorID() []string        { return s.creatorID }
func (s *MappingSet) SetCreatorID(v []string)    { s.creatorID = v }
func (s *MappingSet) CreatorLabel() []string     { return s.creatorLbl }
func (s *MappingSet) SetCreatorLabel(v []string) { s.creatorLbl = v }
func (s *MappingSet) SeeAlso() []string     { return s.seeAlso }
func (s *MappingSet) SetSeeAlso(v []string) { s.seeAlso = v }
func (s *MappingSet) Comment() string     { return s.comment }
func (s *MappingSet) SetComment(v string) { s.comment = v }

func (s *MappingSet) Confidence() (float64, bool) { return s.confidence, s.hasConfidence }

func (s *MappingSet) SetConfidence(v float64) error {
	if v < 0 || v > 1 {
		return ErrOutOfRange
	}

	s.confidence, s.hasConfidence = v, true

	return nil
}

// --- propagatable set-level slots ---

func (s *MappingSet) SubjectSource() string     { return s.subjectSource }
func (s *MappingSet) SetSubjectSource(v string) { s.subjectSource = v }
func (s *MappingSet) ObjectSource() string     { return s.objectSource }
func (s *MappingSet) SetObjectSource(v string) { s.objectSource = v }
func (s *MappingSet) SubjectMatchField() []string     { return s.subjectMatchFld }
func (s *MappingSet) SetSubjectMatchField(v []string) { s.subjectMatchFld = v }
func (s *MappingSet) ObjectMatchField() []string     { return s.objectMatchFld }
func (s *MappingSet) SetObjectMatchField(v []string) { s.objectMatchFld = v }
func (s *MappingSet) SubjectPreprocessing() []string     { return s.subjectPreproc }
func (s *MappingSet) SetSubjectPreprocessing(v []string) { s.subjectPreproc = v }
func (s *MappingSet) ObjectPreprocessing() []string     { return s.objectPreproc }
func (s *MappingSet) SetObjectPreprocessing(v []string) { s.objectPreproc = v }
func (s *MappingSet) SubjectType() string     { return s.subjectType }
func (s *MappingSet) SetSubjectType(v string) { s.subjectType = v }
func (s *MappingSet) ObjectType() string     { return s.objectType }
func (s *MappingSet) SetObjectType(v string) { s.objectType = v }
func (s *MappingSet) PredicateType() string     { return s.predicateType }
func (s *MappingSet) SetPredicateType(v string) { s.predicateType = v }
func (s *MappingSet) SimilarityMeasure() string     { return s.similarityMsr }
func (s *MappingSet) SetSimilarityMeasure(v string) { s.similarityMsr = v }
func (s *MappingSet) MappingProvider() string     { return s.mappingProvider }
func (s *MappingSet) SetMappingProvider(v string) { s.mappingProvider = v }
func (s *MappingSet) MappingTool() string     { return s.mappingTool }
func (s *MappingSet) SetMappingTool(v string) { s.mappingTool = v }
func (s *MappingSet) MappingDate() slot.Date     { return s.mappingDate }
func (s *MappingSet) SetMappingDate(v slot.Date) { s.mappingDate = v }

// --- auxiliary data ---

// PrefixMap returns the set's short-name -> IRI-prefix map. The returned
// map is shared; use [MappingSet.SetPrefix] to mutate it.
func (s *MappingSet) PrefixMap() map[string]string {
	return s.prefixMap
}

// SetPrefix inserts or overwrites one prefix map entry.
func (s *MappingSet) SetPrefix(short, iri string) {
	if s.prefixMap == nil {
		s.prefixMap = make(map[string]string)
	}

	s.prefixMap[short] = iri
}

// ExtensionDefinitions returns the set's declared extension slots.
func (s *MappingSet) ExtensionDefinitions() []ExtensionDefinition {
	return s.extDefs
}

// SetExtensionDefinitions replaces the set's extension slot declarations.
func (s *MappingSet) SetExtensionDefinitions(defs []ExtensionDefinition) {
	s.extDefs = defs
}

// ExtensionValues returns the set-level property-IRI-keyed extension
// values.
func (s *MappingSet) ExtensionValues() map[string]ExtensionValue {
	return s.extensions
}

// SetExtensionValue sets the set-level extension value for propertyIRI.
func (s *MappingSet) SetExtensionValue(propertyIRI string, v ExtensionValue) {
	if s.extensions == nil {
		s.extensions = make(map[string]ExtensionValue)
	}

	s.extensions[propertyIRI] = v
}
