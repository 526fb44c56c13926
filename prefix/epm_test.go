package prefix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/prefix"
)

func sampleEPM() *prefix.EPM {
	return prefix.NewEPM([]prefix.Record{
		{
			Name:           "MONDO",
			Prefix:         "http://purl.obolibrary.org/obo/MONDO_",
			NameSynonyms:   []string{"mondo"},
			PrefixSynonyms: []string{"https://identifiers.org/mondo/"},
		},
	})
}

func TestEPMCanonicalisePrefix(t *testing.T) {
	t.Parallel()

	e := sampleEPM()

	canon, ok := e.CanonicalisePrefix("mondo")
	require.True(t, ok)
	assert.Equal(t, "MONDO", canon)

	_, ok = e.CanonicalisePrefix("unknown")
	assert.False(t, ok)
}

func TestEPMCanonicaliseIRI(t *testing.T) {
	t.Parallel()

	e := sampleEPM()

	canon, ok := e.CanonicaliseIRI("https://identifiers.org/mondo/")
	require.True(t, ok)
	assert.Equal(t, "http://purl.obolibrary.org/obo/MONDO_", canon)
}

func TestEPMResolvePreCanonicalisesMap(t *testing.T) {
	t.Parallel()

	e := sampleEPM()

	resolved := e.Resolve(map[string]string{"mondo": "https://identifiers.org/mondo/"}, prefix.PRE)
	assert.Equal(t, map[string]string{"MONDO": "http://purl.obolibrary.org/obo/MONDO_"}, resolved)
}

func TestEPMResolvePostIsNoOp(t *testing.T) {
	t.Parallel()

	e := sampleEPM()

	in := map[string]string{"mondo": "https://identifiers.org/mondo/"}
	resolved := e.Resolve(in, prefix.POST)
	assert.Equal(t, in, resolved)
}

func TestParseEPMFromJSON(t *testing.T) {
	t.Parallel()

	data := []byte(`[{"ns_prefix":"MONDO","ns_prefix_base":"http://purl.obolibrary.org/obo/MONDO_"}]`)

	e, err := prefix.ParseEPM(data)
	require.NoError(t, err)
	require.Len(t, e.Records(), 1)
	assert.Equal(t, "MONDO", e.Records()[0].Name)
}

func TestParseEPMRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := prefix.ParseEPM([]byte("not json"))
	require.Error(t, err)
}
