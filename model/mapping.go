package model

import (
	"fmt"

	"github.com/sssom/sssom-core/slot"
)

// NoTermFound is the sentinel subject_id/object_id value marking a
// "missing mapping" (spec.md §3): "For mappings with subject_id =
// sssom:NoTermFound or object_id = sssom:NoTermFound, the mapping is a
// 'missing mapping'; certain operations (notably inversion of identity
// sides) treat it specially." Unlike every other entity-reference slot,
// this sentinel is stored verbatim (as a CURIE, never expanded) since it
// names no real IRI.
const NoTermFound = "sssom:NoTermFound"

// Mapping is the unit of assertion described in spec.md §3/§4.G. Fields are
// private; use the typed Get/Set methods (used directly, and by the
// registry Descriptors returned by [MappingSlots] for the generic
// [slot.Visitor] dispatch the SSSOM/T engine and TSV writer rely on).
type Mapping struct {
	subjectID       string
	subjectLabel    string
	subjectCategory string
	subjectType     string
	subjectSource   string
	subjectSrcVer   string
	subjectMatchFld []string
	subjectPreproc  []string

	predicateID       string
	predicateLabel    string
	predicateType     string
	predicateModifier string

	objectID       string
	objectLabel    string
	objectCategory string
	objectType     string
	objectSource   string
	objectSrcVer   string
	objectMatchFld []string
	objectPreproc  []string

	mappingJustification string

	authorID     []string
	authorLabel  []string
	reviewerID   []string
	reviewerLabel []string
	creatorID    []string
	creatorLabel []string

	mappingDate    slot.Date
	hasConfidence  bool
	confidence     float64
	hasSimilarity  bool
	similarityScr  float64
	similarityMsr  string
	curationRule   string
	curationText   string
	mappingTool    string
	mappingToolVer string
	mappingSource  string
	mappingProvidr string
	cardinality    string
	seeAlso        []string
	comment        string
	issueTracker   string
	other          string

	extensions map[string]ExtensionValue
}

// PredicateModifierNot is the one defined value of predicate_modifier
// (spec.md §4.G glossary of slots: "predicate modifier").
const PredicateModifierNot = "Not"

// Cardinality values (spec.md §4.I "Cardinality slot").
const (
	Cardinality1to1 = "1:1"
	Cardinality1toN = "1:n"
	CardinalityNto1 = "n:1"
	CardinalityNtoN = "n:n"
)

// NewMapping constructs a Mapping with its four required-on-output slots
// (spec.md §3). None may be empty.
func NewMapping(subjectID, predicateID, objectID, justification string) (*Mapping, error) {
	if subjectID == "" || predicateID == "" || objectID == "" || justification == "" {
		return nil, fmt.Errorf("%w: subject_id, predicate_id, object_id, mapping_justification are all required",
			ErrRequiredSlotEmpty)
	}

	return &Mapping{
		subjectID:            subjectID,
		predicateID:          predicateID,
		objectID:             objectID,
		mappingJustification: justification,
	}, nil
}

// IsMissingMapping reports whether m is a "missing mapping" (spec.md §3).
func (m *Mapping) IsMissingMapping() bool {
	return m.subjectID == NoTermFound || m.objectID == NoTermFound
}

// --- required slots ---

func (m *Mapping) SubjectID() string   { return m.subjectID }
func (m *Mapping) PredicateID() string { return m.predicateID }
func (m *Mapping) ObjectID() string    { return m.objectID }
func (m *Mapping) MappingJustification() string { return m.mappingJustification }

func (m *Mapping) SetSubjectID(v string) error {
	if v == "" {
		return fmt.Errorf("%w: subject_id", ErrRequiredSlotEmpty)
	}

	m.subjectID = v

	return nil
}

func (m *Mapping) SetPredicateID(v string) error {
	if v == "" {
		return fmt.Errorf("%w: predicate_id", ErrRequiredSlotEmpty)
	}

	m.predicateID = v

	return nil
}

func (m *Mapping) SetObjectID(v string) error {
	if v == "" {
		return fmt.Errorf("%w: object_id", ErrRequiredSlotEmpty)
	}

	m.objectID = v

	return nil
}

func (m *Mapping) SetMappingJustification(v string) error {
	if v == "" {
		return fmt.Errorf("%w: mapping_justification", ErrRequiredSlotEmpty)
	}

	m.mappingJustification = v

	return nil
}

// --- subject side ---

func (m *Mapping) SubjectLabel() string      { return m.subjectLabel }
func (m *Mapping) SetSubjectLabel(v string)  { m.subjectLabel = v }
func (m *Mapping) SubjectCategory() string     { return m.subjectCategory }
func (m *Mapping) SetSubjectCategory(v string) { m.subjectCategory = v }
func (m *Mapping) SubjectType() string       { return m.subjectType }
func (m *Mapping) SetSubjectType(v string)   { m.subjectType = v }
func (m *Mapping) SubjectSource() string     { return m.subjectSource }
func (m *Mapping) SetSubjectSource(v string) { m.subjectSource = v }
func (m *Mapping) SubjectSourceVersion() string     { return m.subjectSrcVer }
func (m *Mapping) SetSubjectSourceVersion(v string) { m.subjectSrcVer = v }
func (m *Mapping) SubjectMatchField() []string     { return m.subjectMatchFld }
func (m *Mapping) SetSubjectMatchField(v []string) { m.subjectMatchFld = v }
func (m *Mapping) SubjectPreprocessing() []string     { return m.subjectPreproc }
func (m *Mapping) SetSubjectPreprocessing(v []string) { m.subjectPreproc = v }

// --- predicate side ---

func (m *Mapping) PredicateLabel() string     { return m.predicateLabel }
func (m *Mapping) SetPredicateLabel(v string) { m.predicateLabel = v }
func (m *Mapping) PredicateType() string     { return m.predicateType }
func (m *Mapping) SetPredicateType(v string) { m.predicateType = v }
func (m *Mapping) PredicateModifier() string     { return m.predicateModifier }
func (m *Mapping) SetPredicateModifier(v string) { m.predicateModifier = v }

// --- object side ---

func (m *Mapping) ObjectLabel() string      { return m.objectLabel }
func (m *Mapping) SetObjectLabel(v string)  { m.objectLabel = v }
func (m *Mapping) ObjectCategory() string     { return m.objectCategory }
func (m *Mapping) SetObjectCategory(v string) { m.objectCategory = v }
func (m *Mapping) ObjectType() string       { return m.objectType }
func (m *Mapping) SetObjectType(v string)   { m.objectType = v }
func (m *Mapping) ObjectSource() string     { return m.objectSource }
func (m *Mapping) SetObjectSource(v string) { m.objectSource = v }
func (m *Mapping) ObjectSourceVersion() string     { return m.objectSrcVer }
func (m *Mapping) SetObjectSourceVersion(v string) { m.objectSrcVer = v }
func (m *Mapping) ObjectMatchField() []string     { return m.objectMatchFld }
func (m *Mapping) SetObjectMatchField(v []string) { m.objectMatchFld = v }
func (m *Mapping) ObjectPreprocessing() []string     { return m.objectPreproc }
func (m *Mapping) SetObjectPreprocessing(v []string) { m.objectPreproc = v }

// --- provenance ---

func (m *Mapping) AuthorID() []string        { return m.authorID }
func (m *Mapping) SetAuthorID(v []string)    { m.authorID = v }
func (m *Mapping) AuthorLabel() []string     { return m.authorLabel }
func (m *Mapping) SetAuthorLabel(v []string) { m.authorLabel = v }
func (m *Mapping) ReviewerID() []string        { return m.reviewerID }
func (m *Mapping) SetReviewerID(v []string)    { m.reviewerID = v }
func (m *Mapping) ReviewerLabel() []string     { return m.reviewerLabel }
func (m *Mapping) SetReviewerLabel(v []string) { m.reviewerLabel = v }
func (m *Mapping) CreatorID() []string        { return m.creatorID }
func (m *Mapping) SetCreatorID(v []string)    { m.creatorID = v }
func (m *Mapping) CreatorLabel() []string     { return m.creatorLabel }
func (m *Mapping) SetCreatorLabel(v []string) { m.creatorLabel = v }

// --- measurement / metadata ---

func (m *Mapping) MappingDate() slot.Date     { return m.mappingDate }
func (m *Mapping) SetMappingDate(v slot.Date) { m.mappingDate = v }

func (m *Mapping) Confidence() (float64, bool) { return m.confidence, m.hasConfidence }

func (m *Mapping) SetConfidence(v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: confidence %v", ErrOutOfRange, v)
	}

	m.confidence, m.hasConfidence = v, true

	return nil
}

func (m *Mapping) ClearConfidence() { m.hasConfidence, m.confidence = false, 0 }

func (m *Mapping) SimilarityScore() (float64, bool) { return m.similarityScr, m.hasSimilarity }

func (m *Mapping) SetSimilarityScore(v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: similarity_score %v", ErrOutOfRange, v)
	}

	m.similarityScr, m.hasSimilarity = v, true

	return nil
}

func (m *Mapping) ClearSimilarityScore() { m.hasSimilarity, m.similarityScr = false, 0 }

func (m *Mapping) SimilarityMeasure() string     { return m.similarityMsr }
func (m *Mapping) SetSimilarityMeasure(v string) { m.similarityMsr = v }
func (m *Mapping) CurationRule() string     { return m.curationRule }
func (m *Mapping) SetCurationRule(v string) { m.curationRule = v }
func (m *Mapping) CurationRuleText() string     { return m.curationText }
func (m *Mapping) SetCurationRuleText(v string) { m.curationText = v }
func (m *Mapping) MappingTool() string     { return m.mappingTool }
func (m *Mapping) SetMappingTool(v string) { m.mappingTool = v }
func (m *Mapping) MappingToolVersion() string     { return m.mappingToolVer }
func (m *Mapping) SetMappingToolVersion(v string) { m.mappingToolVer = v }
func (m *Mapping) MappingSource() string     { return m.mappingSource }
func (m *Mapping) SetMappingSource(v string) { m.mappingSource = v }
func (m *Mapping) MappingProvider() string     { return m.mappingProvidr }
func (m *Mapping) SetMappingProvider(v string) { m.mappingProvidr = v }

func (m *Mapping) MappingCardinality() string { return m.cardinality }

func (m *Mapping) SetMappingCardinality(v string) error {
	switch v {
	case "", Cardinality1to1, Cardinality1toN, CardinalityNto1, CardinalityNtoN:
		m.cardinality = v
		return nil
	default:
		return fmt.Errorf("%w: mapping_cardinality %q", ErrTypeMismatch, v)
	}
}

func (m *Mapping) SeeAlso() []string     { return m.seeAlso }
func (m *Mapping) SetSeeAlso(v []string) { m.seeAlso = v }
func (m *Mapping) Comment() string     { return m.comment }
func (m *Mapping) SetComment(v string) { m.comment = v }
func (m *Mapping) IssueTrackerItem() string     { return m.issueTracker }
func (m *Mapping) SetIssueTrackerItem(v string) { m.issueTracker = v }
func (m *Mapping) Other() string     { return m.other }
func (m *Mapping) SetOther(v string) { m.other = v }

// --- extension values ---

// ExtensionValues returns the mapping's property-IRI-keyed extension
// values. The returned map is shared; callers must not mutate it directly,
// use [Mapping.SetExtensionValue]/[Mapping.DeleteExtensionValue] instead.
func (m *Mapping) ExtensionValues() map[string]ExtensionValue {
	return m.extensions
}

// SetExtensionValue sets the extension value for the given property IRI.
func (m *Mapping) SetExtensionValue(propertyIRI string, v ExtensionValue) {
	if m.extensions == nil {
		m.extensions = make(map[string]ExtensionValue)
	}

	m.extensions[propertyIRI] = v
}

// DeleteExtensionValue removes the extension value for the given property
// IRI, if any.
func (m *Mapping) DeleteExtensionValue(propertyIRI string) {
	delete(m.extensions, propertyIRI)
}

// Clone returns a deep copy of m.
func (m *Mapping) Clone() *Mapping {
	c := *m
	c.subjectMatchFld = cloneSlice(m.subjectMatchFld)
	c.subjectPreproc = cloneSlice(m.subjectPreproc)
	c.objectMatchFld = cloneSlice(m.objectMatchFld)
	c.objectPreproc = cloneSlice(m.objectPreproc)
	c.authorID = cloneSlice(m.authorID)
	c.authorLabel = cloneSlice(m.authorLabel)
	c.reviewerID = cloneSlice(m.reviewerID)
	c.reviewerLabel = cloneSlice(m.reviewerLabel)
	c.creatorID = cloneSlice(m.creatorID)
	c.creatorLabel = cloneSlice(m.creatorLabel)
	c.seeAlso = cloneSlice(m.seeAlso)

	if m.extensions != nil {
		c.extensions = make(map[string]ExtensionValue, len(m.extensions))
		for k, v := range m.extensions {
			c.extensions[k] = v
		}
	}

	return &c
}

func cloneSlice(s []string) []string {
	if s == nil {
		return nil
	}

	out := make([]string, len(s))
	copy(out, s)

	return out
}
