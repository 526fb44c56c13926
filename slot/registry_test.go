package slot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/slot"
)

type widget struct {
	name  string
	tags  []string
	score float64
}

func widgetRegistry() *slot.Registry {
	return slot.NewRegistry(
		&slot.Descriptor{
			Name:     "name",
			Type:     slot.StringType,
			Required: true,
			Get: func(e any) (slot.Value, bool) {
				w := e.(*widget)
				return slot.StringValue(w.name), w.name != ""
			},
			Set: func(e any, v slot.Value) error {
				e.(*widget).name = v.Str
				return nil
			},
		},
		&slot.Descriptor{
			Name:         "tags",
			Type:         slot.ListType,
			Propagatable: true,
			Get: func(e any) (slot.Value, bool) {
				w := e.(*widget)
				return slot.ListValue(w.tags), len(w.tags) > 0
			},
			Set: func(e any, v slot.Value) error {
				e.(*widget).tags = v.List
				return nil
			},
		},
		&slot.Descriptor{
			Name: "score",
			Type: slot.DoubleType,
			Get: func(e any) (slot.Value, bool) {
				w := e.(*widget)
				return slot.DoubleValue(w.score), w.score != 0
			},
			Set: func(e any, v slot.Value) error {
				e.(*widget).score = v.D
				return nil
			},
		},
	)
}

func TestRegistrySlotByName(t *testing.T) {
	t.Parallel()

	reg := widgetRegistry()

	desc, ok := reg.SlotByName("tags")
	require.True(t, ok)
	assert.Equal(t, slot.ListType, desc.Type)

	_, ok = reg.SlotByName("nonexistent")
	assert.False(t, ok)
}

func TestRegistryOrderingIsDeclarationOrder(t *testing.T) {
	t.Parallel()

	reg := widgetRegistry()

	var names []string
	for _, d := range reg.Slots() {
		names = append(names, d.Name)
	}

	assert.Equal(t, []string{"name", "tags", "score"}, names)
}

func TestRegistryDuplicateNamePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		slot.NewRegistry(
			&slot.Descriptor{Name: "dup", Type: slot.StringType},
			&slot.Descriptor{Name: "dup", Type: slot.StringType},
		)
	})
}

func TestRegistryPropagatableAndRequired(t *testing.T) {
	t.Parallel()

	reg := widgetRegistry()

	var propNames []string
	for _, d := range reg.Propagatable() {
		propNames = append(propNames, d.Name)
	}
	assert.Equal(t, []string{"tags"}, propNames)

	var reqNames []string
	for _, d := range reg.Required() {
		reqNames = append(reqNames, d.Name)
	}
	assert.Equal(t, []string{"name"}, reqNames)
}

func TestRegistryVisitSlotsSkipsAbsentValues(t *testing.T) {
	t.Parallel()

	reg := widgetRegistry()
	w := &widget{name: "sprocket"}

	var visited []string
	reg.VisitSlots(w, slot.VisitorFuncs{
		String: func(name, v string) { visited = append(visited, name) },
		List:   func(name string, v []string) { visited = append(visited, name) },
		Double: func(name string, v float64) { visited = append(visited, name) },
	})

	assert.Equal(t, []string{"name"}, visited, "tags and score are absent and must be skipped")
}

func TestRegistryIncludeOnlyAndExclude(t *testing.T) {
	t.Parallel()

	reg := widgetRegistry()

	incl := reg.IncludeOnly("name", "score")
	var inclNames []string
	for _, d := range incl.Slots() {
		inclNames = append(inclNames, d.Name)
	}
	assert.Equal(t, []string{"name", "score"}, inclNames)

	excl := reg.Exclude("tags")
	var exclNames []string
	for _, d := range excl.Slots() {
		exclNames = append(exclNames, d.Name)
	}
	assert.Equal(t, []string{"name", "score"}, exclNames)
}

func TestViewVisitSlotsRespectsSelection(t *testing.T) {
	t.Parallel()

	reg := widgetRegistry()
	w := &widget{name: "sprocket", tags: []string{"metal"}, score: 0.5}

	view := reg.IncludeOnly("tags")

	var visited []string
	view.VisitSlots(w, slot.VisitorFuncs{
		String: func(name, v string) { visited = append(visited, name) },
		List:   func(name string, v []string) { visited = append(visited, name) },
		Double: func(name string, v float64) { visited = append(visited, name) },
	})

	assert.Equal(t, []string{"tags"}, visited)
}
