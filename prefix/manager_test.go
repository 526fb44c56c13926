package prefix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/errs"
	"github.com/sssom/sssom-core/prefix"
	"github.com/sssom/sssom-core/warnbus"
)

func TestManagerIncludesBuiltinPrefixes(t *testing.T) {
	t.Parallel()

	mgr := prefix.NewManager(nil, nil)

	iri, ok := mgr.Expand("skos:exactMatch")
	require.True(t, ok)
	assert.Equal(t, "http://www.w3.org/2004/02/skos/core#exactMatch", iri)
}

func TestManagerExpandUnknownPrefixFails(t *testing.T) {
	t.Parallel()

	mgr := prefix.NewManager(nil, nil)

	_, ok := mgr.Expand("nope:local")
	assert.False(t, ok)

	_, ok = mgr.Expand("not-a-curie")
	assert.False(t, ok)
}

func TestManagerExpandPassesThroughAlreadyFullIRIs(t *testing.T) {
	t.Parallel()

	mgr := prefix.NewManager(nil, nil)

	iri, ok := mgr.Expand("http://purl.obolibrary.org/obo/UBERON_0000001")
	require.True(t, ok, "a full IRI must not be mistaken for an undeclared CURIE")
	assert.Equal(t, "http://purl.obolibrary.org/obo/UBERON_0000001", iri)
}

func TestManagerShortenPrefersLongestMatch(t *testing.T) {
	t.Parallel()

	mgr := prefix.NewManager(map[string]string{
		"ex":      "https://example.org/",
		"ex.sub":  "https://example.org/sub/",
	}, nil)

	curie, ok := mgr.Shorten("https://example.org/sub/term1")
	require.True(t, ok)
	assert.Equal(t, "ex.sub:term1", curie)
}

func TestManagerShortenExpandRoundTrip(t *testing.T) {
	t.Parallel()

	mgr := prefix.NewManager(map[string]string{"ex": "https://example.org/"}, nil)

	iri, ok := mgr.Expand("ex:widget")
	require.True(t, ok)

	curie, ok := mgr.Shorten(iri)
	require.True(t, ok)
	assert.Equal(t, "ex:widget", curie)
}

func TestManagerShortenUnknownIRIEmitsWarning(t *testing.T) {
	t.Parallel()

	bus := warnbus.New()
	mgr := prefix.NewManager(nil, bus)

	_, ok := mgr.Shorten("https://totally-unregistered.example/x")
	assert.False(t, ok)

	warnings := bus.Drain()
	require.Len(t, warnings, 1)
	assert.Equal(t, errs.KindPrefix, warnings[0].Kind)
}

func TestManagerUsedPrefixesTracksOnlyResolved(t *testing.T) {
	t.Parallel()

	mgr := prefix.NewManager(map[string]string{"ex": "https://example.org/"}, nil)

	_, _ = mgr.Expand("ex:widget")

	assert.Equal(t, []string{"ex"}, mgr.UsedPrefixes())
}

func TestManagerMergeReportsConflicts(t *testing.T) {
	t.Parallel()

	mgr := prefix.NewManager(map[string]string{"ex": "https://example.org/"}, nil)

	conflicts := mgr.Merge(map[string]string{
		"ex":  "https://different.example/",
		"new": "https://new.example/",
	})

	require.Equal(t, []string{"ex"}, conflicts)

	pm := mgr.PrefixMap()
	assert.Equal(t, "https://example.org/", pm["ex"], "first-seen prefix wins on conflict")
	assert.Equal(t, "https://new.example/", pm["new"])
}

func TestManagerMergeAgreeingIRIIsNotAConflict(t *testing.T) {
	t.Parallel()

	mgr := prefix.NewManager(map[string]string{"ex": "https://example.org/"}, nil)

	conflicts := mgr.Merge(map[string]string{"ex": "https://example.org/"})
	assert.Empty(t, conflicts)
}
