package variable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/model"
	"github.com/sssom/sssom-core/sssomt/edit"
	"github.com/sssom/sssom-core/sssomt/variable"
)

func newMapping(t *testing.T, label string) *model.Mapping {
	t.Helper()

	m, err := model.NewMapping("a:1", "skos:exactMatch", "b:1", "semapv:ManualMappingCuration")
	require.NoError(t, err)
	m.SetSubjectLabel(label)

	return m
}

func TestResolveUndeclaredVariableErrors(t *testing.T) {
	t.Parallel()

	mgr := variable.NewManager(edit.NewFormatter(model.MappingSlots(), nil))

	_, err := mgr.Resolve("v", newMapping(t, "widget"))
	require.Error(t, err)
}

func TestBindToUndeclaredVariableErrors(t *testing.T) {
	t.Parallel()

	mgr := variable.NewManager(edit.NewFormatter(model.MappingSlots(), nil))

	err := mgr.Bind("v", nil, "x")
	require.Error(t, err)
}

func TestResolveWithNoBindingsErrors(t *testing.T) {
	t.Parallel()

	mgr := variable.NewManager(edit.NewFormatter(model.MappingSlots(), nil))
	mgr.Declare("v")

	_, err := mgr.Resolve("v", newMapping(t, "widget"))
	require.Error(t, err)
}

func TestResolveWithNilFilterAlwaysMatches(t *testing.T) {
	t.Parallel()

	mgr := variable.NewManager(edit.NewFormatter(model.MappingSlots(), nil))
	mgr.Declare("v")
	require.NoError(t, mgr.Bind("v", nil, "hello %subject_label"))

	out, err := mgr.Resolve("v", newMapping(t, "widget"))
	require.NoError(t, err)
	assert.Equal(t, "hello widget", out)
}

func TestResolveTakesLastMatchingBinding(t *testing.T) {
	t.Parallel()

	mgr := variable.NewManager(edit.NewFormatter(model.MappingSlots(), nil))
	mgr.Declare("v")

	always := func(m *model.Mapping) bool { return true }

	require.NoError(t, mgr.Bind("v", always, "first"))
	require.NoError(t, mgr.Bind("v", always, "second"))

	out, err := mgr.Resolve("v", newMapping(t, "widget"))
	require.NoError(t, err)
	assert.Equal(t, "second", out)
}

func TestResolveSkipsBindingsWhoseFilterRejects(t *testing.T) {
	t.Parallel()

	mgr := variable.NewManager(edit.NewFormatter(model.MappingSlots(), nil))
	mgr.Declare("v")

	never := func(m *model.Mapping) bool { return false }
	always := func(m *model.Mapping) bool { return true }

	require.NoError(t, mgr.Bind("v", always, "matched"))
	require.NoError(t, mgr.Bind("v", never, "unreachable"))

	out, err := mgr.Resolve("v", newMapping(t, "widget"))
	require.NoError(t, err)
	assert.Equal(t, "matched", out)
}

func TestResolveNoBindingAcceptsMappingErrors(t *testing.T) {
	t.Parallel()

	mgr := variable.NewManager(edit.NewFormatter(model.MappingSlots(), nil))
	mgr.Declare("v")

	never := func(m *model.Mapping) bool { return false }
	require.NoError(t, mgr.Bind("v", never, "x"))

	_, err := mgr.Resolve("v", newMapping(t, "widget"))
	require.Error(t, err)
}

func TestDeclareIsIdempotent(t *testing.T) {
	t.Parallel()

	mgr := variable.NewManager(edit.NewFormatter(model.MappingSlots(), nil))
	mgr.Declare("v")
	require.NoError(t, mgr.Bind("v", nil, "first"))

	mgr.Declare("v")

	out, err := mgr.Resolve("v", newMapping(t, "widget"))
	require.NoError(t, err)
	assert.Equal(t, "first", out, "re-declaring must not clear existing bindings")
}
