package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/model"
)

func TestCanonicalFormIgnoresListElementOrder(t *testing.T) {
	t.Parallel()

	reg := model.MappingSlots()

	m1, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)
	m1.SetSubjectMatchField([]string{"oio:hasDbXref", "oio:hasExactSynonym"})

	m2, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)
	m2.SetSubjectMatchField([]string{"oio:hasExactSynonym", "oio:hasDbXref"})

	assert.Equal(t, model.CanonicalForm(m1, reg), model.CanonicalForm(m2, reg))
}

func TestCanonicalFormDiffersOnSubstance(t *testing.T) {
	t.Parallel()

	reg := model.MappingSlots()

	m1, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)

	m2, err := model.NewMapping("a:2", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)

	assert.NotEqual(t, model.CanonicalForm(m1, reg), model.CanonicalForm(m2, reg))
}

func TestCanonicalizeListSlotsSortsInPlace(t *testing.T) {
	t.Parallel()

	reg := model.MappingSlots()

	m, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)
	m.SetSeeAlso([]string{"https://z.example/", "https://a.example/"})

	model.CanonicalizeListSlots(m, reg)
	assert.Equal(t, []string{"https://a.example/", "https://z.example/"}, m.SeeAlso())
}

func TestCanonicalFormExtensionMapKeyOrderIsStable(t *testing.T) {
	t.Parallel()

	reg := model.MappingSlots()

	m1, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)
	m1.SetExtensionValue("https://example.org/b", model.NewExtensionValue(model.ExtString, "1"))
	m1.SetExtensionValue("https://example.org/a", model.NewExtensionValue(model.ExtString, "2"))

	m2, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)
	m2.SetExtensionValue("https://example.org/a", model.NewExtensionValue(model.ExtString, "2"))
	m2.SetExtensionValue("https://example.org/b", model.NewExtensionValue(model.ExtString, "1"))

	assert.Equal(t, model.CanonicalForm(m1, reg), model.CanonicalForm(m2, reg))
}
