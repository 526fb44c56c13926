// Package variable implements the Variable Manager described in spec.md
// §4.L: named string-valued bindings resolved per mapping by scanning
// registered filters in insertion order and taking the last match.
package variable

import (
	"fmt"

	"github.com/sssom/sssom-core/model"
	"github.com/sssom/sssom-core/sssomt/edit"
	"github.com/sssom/sssom-core/sssomt/filter"
)

// binding is one registered (filter, template) pair for a variable.
type binding struct {
	filter   filter.Func
	template string
}

// Manager resolves variable references against mappings, using its
// [edit.Formatter] to expand each winning binding's template (spec.md §4.L: "the last binding
// whose filter accepts m provides the template, which is expanded with
// the formatter").
//
// Grounded on the same "scan in insertion order, last match wins" shape
// used for slot propagation precedence elsewhere in this module (model's
// condense-policy "accept the value every mapping agrees on" rule is the
// mirror image: a variable's last agreeing binding, instead of every
// mapping's unanimous value).
type Manager struct {
	bindings  map[string][]binding
	formatter *edit.Formatter
}

// NewManager returns a Manager that expands winning templates with fm.
func NewManager(fm *edit.Formatter) *Manager {
	return &Manager{bindings: make(map[string][]binding), formatter: fm}
}

// Declare registers name with no bindings yet, so a later [Manager.Resolve]
// call against an undeclared variable is a clear error rather than
// resolving to an empty binding list silently (spec.md §4.L: "it is an
// error to reference an undeclared variable").
func (m *Manager) Declare(name string) {
	if _, ok := m.bindings[name]; !ok {
		m.bindings[name] = nil
	}
}

// Bind registers a (filt, template) binding for name. filt may be nil,
// meaning the always-true filter.
func (m *Manager) Bind(name string, filt filter.Func, template string) error {
	if _, ok := m.bindings[name]; !ok {
		return fmt.Errorf("variable: undeclared variable %q", name)
	}

	m.bindings[name] = append(m.bindings[name], binding{filter: filt, template: template})

	return nil
}

// Resolve expands the template of the last binding of name whose filter
// accepts mapping, against mapping. It errors if name is undeclared or no
// binding accepts mapping.
func (m *Manager) Resolve(name string, mapping *model.Mapping) (string, error) {
	bindings, declared := m.bindings[name]
	if !declared {
		return "", fmt.Errorf("variable: undefined variable %q", name)
	}

	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		if b.filter != nil && !b.filter(mapping) {
			continue
		}

		return m.formatter.Expand(b.template, mapping)
	}

	return "", fmt.Errorf("variable: no binding of %q accepts this mapping", name)
}
