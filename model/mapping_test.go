package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/model"
	"github.com/sssom/sssom-core/slot"
)

func TestNewMappingRequiresAllFourSlots(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		subject, predicate, object, justification string
		wantErr                                   bool
	}{
		"all present": {"a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration", false},
		"missing subject": {"", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration", true},
		"missing predicate": {"a:1", "", "b:1", "semapv:ManualMappingCuration", true},
		"missing object": {"a:1", "skos:exactMatch", "", "semapv:ManualMappingCuration", true},
		"missing justification": {"a:1", "skos:exactMatch", "b:1", "", true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m, err := model.NewMapping(tc.subject, tc.predicate, tc.object, tc.justification)
			if tc.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, model.ErrRequiredSlotEmpty)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.subject, m.SubjectID())
			assert.Equal(t, tc.predicate, m.PredicateID())
			assert.Equal(t, tc.object, m.ObjectID())
			assert.Equal(t, tc.justification, m.MappingJustification())
		})
	}
}

func TestMappingSetSubjectIDRejectsEmpty(t *testing.T) {
	t.Parallel()

	m, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)

	require.ErrorIs(t, m.SetSubjectID(""), model.ErrRequiredSlotEmpty)
	assert.Equal(t, "a:1", m.SubjectID(), "rejected assignment must not mutate the slot")
}

func TestMappingIsMissingMapping(t *testing.T) {
	t.Parallel()

	m, err := model.NewMapping(model.NoTermFound, "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)
	assert.True(t, m.IsMissingMapping())

	m2, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)
	assert.False(t, m2.IsMissingMapping())
}

func TestMappingConfidenceRange(t *testing.T) {
	t.Parallel()

	m, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)

	require.NoError(t, m.SetConfidence(0.5))
	got, ok := m.Confidence()
	require.True(t, ok)
	assert.InDelta(t, 0.5, got, 1e-9)

	require.ErrorIs(t, m.SetConfidence(1.1), model.ErrOutOfRange)
	require.ErrorIs(t, m.SetConfidence(-0.1), model.ErrOutOfRange)

	m.ClearConfidence()
	_, ok = m.Confidence()
	assert.False(t, ok)
}

func TestMappingCardinalityValidation(t *testing.T) {
	t.Parallel()

	m, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)

	require.NoError(t, m.SetMappingCardinality(model.Cardinality1toN))
	assert.Equal(t, model.Cardinality1toN, m.MappingCardinality())

	require.ErrorIs(t, m.SetMappingCardinality("bogus"), model.ErrTypeMismatch)
}

func TestMappingCloneIsDeep(t *testing.T) {
	t.Parallel()

	m, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)

	m.SetAuthorID([]string{"orcid:0000"})
	m.SetExtensionValue("https://example.org/note", model.NewExtensionValue(model.ExtString, "hi"))

	c := m.Clone()
	c.AuthorID()[0] = "orcid:MUTATED"
	c.SetExtensionValue("https://example.org/note", model.NewExtensionValue(model.ExtString, "bye"))

	assert.Equal(t, "orcid:0000", m.AuthorID()[0], "clone must not share the author_id backing array")
	assert.Equal(t, "hi", m.ExtensionValues()["https://example.org/note"].Raw, "clone must not share the extensions map")
}

func TestMappingExtensionValueRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)

	m.SetExtensionValue("https://example.org/score", model.NewExtensionValue(model.ExtDouble, "0.25"))

	v, ok := m.ExtensionValues()["https://example.org/score"]
	require.True(t, ok)

	f, ok := v.Float()
	require.True(t, ok)
	assert.InDelta(t, 0.25, f, 1e-9)

	m.DeleteExtensionValue("https://example.org/score")
	_, ok = m.ExtensionValues()["https://example.org/score"]
	assert.False(t, ok)
}

func TestMappingSlotsRegistryRoundTrip(t *testing.T) {
	t.Parallel()

	reg := model.MappingSlots()

	m, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)
	m.SetSubjectLabel("widget")
	m.SetSubjectMatchField([]string{"oio:hasDbXref"})

	desc, ok := reg.SlotByName("subject_label")
	require.True(t, ok)

	val, present := desc.Get(m)
	require.True(t, present)
	assert.Equal(t, "widget", val.Str)

	require.NoError(t, desc.Set(m, slot.StringValue("gadget")))
	assert.Equal(t, "gadget", m.SubjectLabel())

	listDesc, ok := reg.SlotByName("subject_match_field")
	require.True(t, ok)
	assert.True(t, listDesc.Propagatable)

	subjectIDDesc, ok := reg.SlotByName("subject_id")
	require.True(t, ok)
	assert.True(t, subjectIDDesc.Required)
	assert.True(t, subjectIDDesc.EntityRef)
}
