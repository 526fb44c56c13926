package model

import (
	"sync"

	"github.com/sssom/sssom-core/slot"
)

// MappingSetSlots returns the process-wide [slot.Registry] for the
// MappingSet entity type, built once. Declaration order is the YAML
// front-matter's key order (spec.md §4.F).
func MappingSetSlots() *slot.Registry {
	return mappingSetRegistry()
}

var mappingSetRegistry = sync.OnceValue(buildMappingSetRegistry)

func buildMappingSetRegistry() *slot.Registry {
	g := func(f func(*MappingSet) (slot.Value, bool)) slot.GetFunc {
		return func(e any) (slot.Value, bool) { return f(e.(*MappingSet)) }
	}
	set := func(f func(*MappingSet, slot.Value) error) slot.SetFunc {
		return func(e any, v slot.Value) error { return f(e.(*MappingSet), v) }
	}

	str := func(name string, get func(*MappingSet) string, setv func(*MappingSet, string)) *slot.Descriptor {
		return &slot.Descriptor{
			Name: name,
			Type: slot.StringType,
			Get: g(func(s *MappingSet) (slot.Value, bool) {
				v := get(s)
				if v == "" {
					return slot.Value{}, false
				}

				return slot.StringValue(v), true
			}),
			Set: set(func(s *MappingSet, v slot.Value) error {
				setv(s, v.Str)
				return nil
			}),
		}
	}

	list := func(name string, get func(*MappingSet) []string, setv func(*MappingSet, []string)) *slot.Descriptor {
		return &slot.Descriptor{
			Name: name,
			Type: slot.ListType,
			Get: g(func(s *MappingSet) (slot.Value, bool) {
				v := get(s)
				if len(v) == 0 {
					return slot.Value{}, false
				}

				return slot.ListValue(v), true
			}),
			Set: set(func(s *MappingSet, v slot.Value) error {
				setv(s, v.List)
				return nil
			}),
		}
	}

	descs := []*slot.Descriptor{
		{
			Name: "mapping_set_id", Type: slot.StringType, Required: true, EntityRef: true,
			Get: g(func(s *MappingSet) (slot.Value, bool) { return slot.StringValue(s.id), s.id != "" }),
			Set: set(func(s *MappingSet, v slot.Value) error { s.id = v.Str; return nil }),
		},
		str("mapping_set_title", (*MappingSet).Title, (*MappingSet).SetTitle),
		str("mapping_set_description", (*MappingSet).Description, (*MappingSet).SetDescription),
		str("mapping_set_version", (*MappingSet).Version, (*MappingSet).SetVersion),
		func() *slot.Descriptor {
			d := str("license", (*MappingSet).License, (*MappingSet).SetLicense)
			d.URIValued = true
			return d
		}(),
		{
			Name: "publication_date", Type: slot.DateType,
			Get: g(func(s *MappingSet) (slot.Value, bool) {
				if s.pubDate.IsZero() {
					return slot.Value{}, false
				}
				return slot.DateValue(s.pubDate), true
			}),
			Set: set(func(s *MappingSet, v slot.Value) error { s.pubDate = v.Date; return nil }),
		},
		func() *slot.Descriptor {
			d := list("creator_id", (*MappingSet).CreatorID, (*MappingSet).SetCreatorID)
			d.EntityRef = true
			return d
		}(),
		list("creator_label", (*MappingSet).CreatorLabel, (*MappingSet).SetCreatorLabel),
		func() *slot.Descriptor {
			d := list("see_also", (*MappingSet).SeeAlso, (*MappingSet).SetSeeAlso)
			d.EntityRef = true
			return d
		}(),
		str("comment", (*MappingSet).Comment, (*MappingSet).SetComment),
		{
			Name: "confidence", Type: slot.DoubleType,
			Get: g(func(s *MappingSet) (slot.Value, bool) {
				v, ok := s.Confidence()
				if !ok {
					return slot.Value{}, false
				}
				return slot.DoubleValue(v), true
			}),
			Set: set(func(s *MappingSet, v slot.Value) error { return s.SetConfidence(v.D) }),
		},

		func() *slot.Descriptor {
			d := str("subject_source", (*MappingSet).SubjectSource, (*MappingSet).SetSubjectSource)
			d.Propagatable, d.EntityRef = true, true
			return d
		}(),
		func() *slot.Descriptor {
			d := str("object_source", (*MappingSet).ObjectSource, (*MappingSet).SetObjectSource)
			d.Propagatable, d.EntityRef = true, true
			return d
		}(),
		func() *slot.Descriptor {
			d := list("subject_match_field", (*MappingSet).SubjectMatchField, (*MappingSet).SetSubjectMatchField)
			d.Propagatable, d.EntityRef = true, true
			return d
		}(),
		func() *slot.Descriptor {
			d := list("object_match_field", (*MappingSet).ObjectMatchField, (*MappingSet).SetObjectMatchField)
			d.Propagatable, d.EntityRef = true, true
			return d
		}(),
		func() *slot.Descriptor {
			d := list("subject_preprocessing", (*MappingSet).SubjectPreprocessing, (*MappingSet).SetSubjectPreprocessing)
			d.Propagatable = true
			return d
		}(),
		func() *slot.Descriptor {
			d := list("object_preprocessing", (*MappingSet).ObjectPreprocessing, (*MappingSet).SetObjectPreprocessing)
			d.Propagatable = true
			return d
		}(),
		{
			Name: "subject_type", Type: slot.EnumType, Propagatable: true,
			Get: g(func(s *MappingSet) (slot.Value, bool) {
				if s.subjectType == "" {
					return slot.Value{}, false
				}
				return slot.EnumValue(s.subjectType), true
			}),
			Set: set(func(s *MappingSet, v slot.Value) error { s.subjectType = v.Str; return nil }),
		},
		{
			Name: "object_type", Type: slot.EnumType, Propagatable: true,
			Get: g(func(s *MappingSet) (slot.Value, bool) {
				if s.objectType == "" {
					return slot.Value{}, false
				}
				return slot.EnumValue(s.objectType), true
			}),
			Set: set(func(s *MappingSet, v slot.Value) error { s.objectType = v.Str; return nil }),
		},
		{
			Name: "predicate_type", Type: slot.EnumType, Propagatable: true,
			Get: g(func(s *MappingSet) (slot.Value, bool) {
				if s.predicateType == "" {
					return slot.Value{}, false
				}
				return slot.EnumValue(s.predicateType), true
			}),
			Set: set(func(s *MappingSet, v slot.Value) error { s.predicateType = v.Str; return nil }),
		},
		func() *slot.Descriptor {
			d := str("similarity_measure", (*MappingSet).SimilarityMeasure, (*MappingSet).SetSimilarityMeasure)
			d.Propagatable = true
			return d
		}(),
		func() *slot.Descriptor {
			d := str("mapping_provider", (*MappingSet).MappingProvider, (*MappingSet).SetMappingProvider)
			d.Propagatable, d.URIValued = true, true
			return d
		}(),
		func() *slot.Descriptor {
			d := str("mapping_tool", (*MappingSet).MappingTool, (*MappingSet).SetMappingTool)
			d.Propagatable = true
			return d
		}(),
		{
			Name: "mapping_date", Type: slot.DateType, Propagatable: true,
			Get: g(func(s *MappingSet) (slot.Value, bool) {
				if s.mappingDate.IsZero() {
					return slot.Value{}, false
				}
				return slot.DateValue(s.mappingDate), true
			}),
			Set: set(func(s *MappingSet, v slot.Value) error { s.mappingDate = v.Date; return nil }),
		},
	}

	return slot.NewRegistry(descs...)
}
