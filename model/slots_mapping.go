package model

import (
	"sync"

	"github.com/sssom/sssom-core/slot"
)

// MappingSlots returns the process-wide [slot.Registry] for the Mapping
// entity type, built once (spec.md §9 Design Notes: "builtin prefixes" and
// "slot registry" are process-global read-mostly tables; initialise once at
// startup and treat as immutable). The declaration order below is the TSV
// writer's column order (spec.md §4.C ordering contract).
func MappingSlots() *slot.Registry {
	return mappingRegistry()
}

var mappingRegistry = sync.OnceValue(buildMappingRegistry)

func buildMappingRegistry() *slot.Registry {
	m := func(f func(*Mapping) (slot.Value, bool)) slot.GetFunc {
		return func(e any) (slot.Value, bool) { return f(e.(*Mapping)) }
	}
	set := func(f func(*Mapping, slot.Value) error) slot.SetFunc {
		return func(e any, v slot.Value) error { return f(e.(*Mapping), v) }
	}

	str := func(name string, get func(*Mapping) string, setv func(*Mapping, string)) *slot.Descriptor {
		return &slot.Descriptor{
			Name: name,
			Type: slot.StringType,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				v := get(mm)
				if v == "" {
					return slot.Value{}, false
				}

				return slot.StringValue(v), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error {
				setv(mm, v.Str)
				return nil
			}),
		}
	}

	list := func(name string, get func(*Mapping) []string, setv func(*Mapping, []string)) *slot.Descriptor {
		return &slot.Descriptor{
			Name: name,
			Type: slot.ListType,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				v := get(mm)
				if len(v) == 0 {
					return slot.Value{}, false
				}

				return slot.ListValue(v), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error {
				setv(mm, v.List)
				return nil
			}),
		}
	}

	descs := []*slot.Descriptor{
		{
			Name: "subject_id", Type: slot.StringType, Required: true, EntityRef: true,
			Get: m(func(mm *Mapping) (slot.Value, bool) { return slot.StringValue(mm.subjectID), mm.subjectID != "" }),
			Set: set(func(mm *Mapping, v slot.Value) error { return mm.SetSubjectID(v.Str) }),
		},
		str("subject_label", (*Mapping).SubjectLabel, (*Mapping).SetSubjectLabel),
		str("subject_category", (*Mapping).SubjectCategory, (*Mapping).SetSubjectCategory),
		{
			Name: "subject_type", Type: slot.EnumType, Propagatable: true,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if mm.subjectType == "" {
					return slot.Value{}, false
				}
				return slot.EnumValue(mm.subjectType), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { mm.subjectType = v.Str; return nil }),
		},
		{
			Name: "subject_source", Type: slot.StringType, Propagatable: true, EntityRef: true,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if mm.subjectSource == "" {
					return slot.Value{}, false
				}
				return slot.StringValue(mm.subjectSource), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { mm.subjectSource = v.Str; return nil }),
		},
		str("subject_source_version", (*Mapping).SubjectSourceVersion, (*Mapping).SetSubjectSourceVersion),
		func() *slot.Descriptor {
			d := list("subject_match_field", (*Mapping).SubjectMatchField, (*Mapping).SetSubjectMatchField)
			d.Propagatable, d.EntityRef = true, true
			return d
		}(),
		func() *slot.Descriptor {
			d := list("subject_preprocessing", (*Mapping).SubjectPreprocessing, (*Mapping).SetSubjectPreprocessing)
			d.Propagatable = true
			return d
		}(),

		{
			Name: "predicate_id", Type: slot.StringType, Required: true, EntityRef: true,
			Get: m(func(mm *Mapping) (slot.Value, bool) { return slot.StringValue(mm.predicateID), mm.predicateID != "" }),
			Set: set(func(mm *Mapping, v slot.Value) error { return mm.SetPredicateID(v.Str) }),
		},
		str("predicate_label", (*Mapping).PredicateLabel, (*Mapping).SetPredicateLabel),
		{
			Name: "predicate_type", Type: slot.EnumType, Propagatable: true,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if mm.predicateType == "" {
					return slot.Value{}, false
				}
				return slot.EnumValue(mm.predicateType), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { mm.predicateType = v.Str; return nil }),
		},
		{
			Name: "predicate_modifier", Type: slot.EnumType,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if mm.predicateModifier == "" {
					return slot.Value{}, false
				}
				return slot.EnumValue(mm.predicateModifier), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { mm.predicateModifier = v.Str; return nil }),
		},

		{
			Name: "object_id", Type: slot.StringType, Required: true, EntityRef: true,
			Get: m(func(mm *Mapping) (slot.Value, bool) { return slot.StringValue(mm.objectID), mm.objectID != "" }),
			Set: set(func(mm *Mapping, v slot.Value) error { return mm.SetObjectID(v.Str) }),
		},
		str("object_label", (*Mapping).ObjectLabel, (*Mapping).SetObjectLabel),
		str("object_category", (*Mapping).ObjectCategory, (*Mapping).SetObjectCategory),
		{
			Name: "object_type", Type: slot.EnumType, Propagatable: true,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if mm.objectType == "" {
					return slot.Value{}, false
				}
				return slot.EnumValue(mm.objectType), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { mm.objectType = v.Str; return nil }),
		},
		{
			Name: "object_source", Type: slot.StringType, Propagatable: true, EntityRef: true,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if mm.objectSource == "" {
					return slot.Value{}, false
				}
				return slot.StringValue(mm.objectSource), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { mm.objectSource = v.Str; return nil }),
		},
		str("object_source_version", (*Mapping).ObjectSourceVersion, (*Mapping).SetObjectSourceVersion),
		func() *slot.Descriptor {
			d := list("object_match_field", (*Mapping).ObjectMatchField, (*Mapping).SetObjectMatchField)
			d.Propagatable, d.EntityRef = true, true
			return d
		}(),
		func() *slot.Descriptor {
			d := list("object_preprocessing", (*Mapping).ObjectPreprocessing, (*Mapping).SetObjectPreprocessing)
			d.Propagatable = true
			return d
		}(),

		{
			Name: "mapping_justification", Type: slot.StringType, Required: true, EntityRef: true,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				return slot.StringValue(mm.mappingJustification), mm.mappingJustification != ""
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { return mm.SetMappingJustification(v.Str) }),
		},

		func() *slot.Descriptor {
			d := list("author_id", (*Mapping).AuthorID, (*Mapping).SetAuthorID)
			d.EntityRef = true
			return d
		}(),
		list("author_label", (*Mapping).AuthorLabel, (*Mapping).SetAuthorLabel),
		func() *slot.Descriptor {
			d := list("reviewer_id", (*Mapping).ReviewerID, (*Mapping).SetReviewerID)
			d.EntityRef = true
			return d
		}(),
		list("reviewer_label", (*Mapping).ReviewerLabel, (*Mapping).SetReviewerLabel),
		func() *slot.Descriptor {
			d := list("creator_id", (*Mapping).CreatorID, (*Mapping).SetCreatorID)
			d.EntityRef = true
			return d
		}(),
		list("creator_label", (*Mapping).CreatorLabel, (*Mapping).SetCreatorLabel),

		{
			Name: "mapping_date", Type: slot.DateType, Propagatable: true,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if mm.mappingDate.IsZero() {
					return slot.Value{}, false
				}
				return slot.DateValue(mm.mappingDate), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { mm.mappingDate = v.Date; return nil }),
		},
		{
			Name: "confidence", Type: slot.DoubleType,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if !mm.hasConfidence {
					return slot.Value{}, false
				}
				return slot.DoubleValue(mm.confidence), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { return mm.SetConfidence(v.D) }),
		},
		{
			Name: "similarity_score", Type: slot.DoubleType,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if !mm.hasSimilarity {
					return slot.Value{}, false
				}
				return slot.DoubleValue(mm.similarityScr), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { return mm.SetSimilarityScore(v.D) }),
		},
		func() *slot.Descriptor {
			d := str("similarity_measure", (*Mapping).SimilarityMeasure, (*Mapping).SetSimilarityMeasure)
			d.Propagatable = true
			return d
		}(),
		str("curation_rule", (*Mapping).CurationRule, (*Mapping).SetCurationRule),
		str("curation_rule_text", (*Mapping).CurationRuleText, (*Mapping).SetCurationRuleText),
		func() *slot.Descriptor {
			d := str("mapping_tool", (*Mapping).MappingTool, (*Mapping).SetMappingTool)
			d.Propagatable = true
			return d
		}(),
		str("mapping_tool_version", (*Mapping).MappingToolVersion, (*Mapping).SetMappingToolVersion),
		func() *slot.Descriptor {
			d := str("mapping_source", (*Mapping).MappingSource, (*Mapping).SetMappingSource)
			d.URIValued = true
			return d
		}(),
		func() *slot.Descriptor {
			d := str("mapping_provider", (*Mapping).MappingProvider, (*Mapping).SetMappingProvider)
			d.Propagatable, d.URIValued = true, true
			return d
		}(),
		{
			Name: "mapping_cardinality", Type: slot.EnumType,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if mm.cardinality == "" {
					return slot.Value{}, false
				}
				return slot.EnumValue(mm.cardinality), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error { return mm.SetMappingCardinality(v.Str) }),
		},
		func() *slot.Descriptor {
			d := list("see_also", (*Mapping).SeeAlso, (*Mapping).SetSeeAlso)
			d.EntityRef = true
			return d
		}(),
		str("comment", (*Mapping).Comment, (*Mapping).SetComment),
		func() *slot.Descriptor {
			d := str("issue_tracker_item", (*Mapping).IssueTrackerItem, (*Mapping).SetIssueTrackerItem)
			d.URIValued = true
			return d
		}(),
		str("other", (*Mapping).Other, (*Mapping).SetOther),
		{
			Name: "extension_values", Type: slot.ExtensionValueMapType,
			Get: m(func(mm *Mapping) (slot.Value, bool) {
				if len(mm.extensions) == 0 {
					return slot.Value{}, false
				}
				return slot.ExtensionValueMapValue(mm.extensions), true
			}),
			Set: set(func(mm *Mapping, v slot.Value) error {
				if ext, ok := v.Ext.(map[string]ExtensionValue); ok {
					mm.extensions = ext
				}
				return nil
			}),
		},
	}

	return slot.NewRegistry(descs...)
}
