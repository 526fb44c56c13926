// Package filter compiles an [ast.FilterExpr] into a closure over
// [*model.Mapping], per spec.md §4.I.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sssom/sssom-core/model"
	"github.com/sssom/sssom-core/prefix"
	"github.com/sssom/sssom-core/slot"
	"github.com/sssom/sssom-core/sssomt/ast"
)

// Func is a compiled filter: a predicate over one mapping.
type Func func(m *model.Mapping) bool

// Application is a host-registered application filter (spec.md §4.I
// "dispatched by name to the host; errors if host rejects").
type Application func(m *model.Mapping, args []ast.Arg) (bool, error)

// Compiler turns [ast.FilterExpr] trees into [Func] closures, resolving
// entity-reference CURIEs against mgr and application filters against a
// host-supplied name table.
type Compiler struct {
	registry     *slot.Registry
	mgr          *prefix.Manager
	applications map[string]Application
}

// NewCompiler returns a Compiler over reg (normally [model.MappingSlots])
// that expands CURIEs via mgr and dispatches application filters named in
// apps.
func NewCompiler(reg *slot.Registry, mgr *prefix.Manager, apps map[string]Application) *Compiler {
	return &Compiler{registry: reg, mgr: mgr, applications: apps}
}

// Compile returns the [Func] for expr, or an error if an application
// filter name is unregistered (parse-time name checking already covers
// unknown filters when a [parser.Resolver] is wired; this is the
// compile-time equivalent for callers driving the AST directly).
func (c *Compiler) Compile(expr ast.FilterExpr) (Func, error) {
	switch e := expr.(type) {
	case *ast.Or:
		fns, err := c.compileAll(e.Operands)
		if err != nil {
			return nil, err
		}

		return func(m *model.Mapping) bool {
			for _, f := range fns {
				if f(m) {
					return true
				}
			}

			return false
		}, nil
	case *ast.And:
		fns, err := c.compileAll(e.Operands)
		if err != nil {
			return nil, err
		}

		return func(m *model.Mapping) bool {
			for _, f := range fns {
				if !f(m) {
					return false
				}
			}

			return true
		}, nil
	case *ast.Not:
		inner, err := c.Compile(e.Operand)
		if err != nil {
			return nil, err
		}

		return func(m *model.Mapping) bool { return !inner(m) }, nil
	case *ast.Predicate:
		return c.compilePredicate(e)
	default:
		return nil, fmt.Errorf("filter: unknown expression node %T", expr)
	}
}

func (c *Compiler) compileAll(exprs []ast.FilterExpr) ([]Func, error) {
	out := make([]Func, len(exprs))

	for i, e := range exprs {
		f, err := c.Compile(e)
		if err != nil {
			return nil, err
		}

		out[i] = f
	}

	return out, nil
}

func (c *Compiler) compilePredicate(p *ast.Predicate) (Func, error) {
	if p.IsApplication() {
		app, ok := c.applications[p.Name]
		if !ok {
			return nil, fmt.Errorf("filter: unknown application filter %q", p.Name)
		}

		return func(m *model.Mapping) bool {
			ok, err := app(m, p.Args)
			return err == nil && ok
		}, nil
	}

	desc, ok := c.registry.SlotByName(p.Slot)
	if !ok {
		return nil, fmt.Errorf("filter: unknown slot %q", p.Slot)
	}

	switch p.Value.Kind {
	case ast.EmptyMarkerKind:
		return func(m *model.Mapping) bool {
			_, present := desc.Get(m)
			return !present
		}, nil
	case ast.WildcardKind:
		return c.compileGlob(desc, "*"), nil
	case ast.CURIEKind:
		iri := p.Value.Literal
		if c.mgr != nil {
			if expanded, ok := c.mgr.Expand(p.Value.Literal); ok {
				iri = expanded
			}
		}

		return c.compileCompare(desc, p.Op, iri), nil
	case ast.StringKind:
		if p.Value.Literal == "" {
			return func(m *model.Mapping) bool {
				val, present := desc.Get(m)
				if !present {
					return true
				}

				return isEmptyValue(val)
			}, nil
		}

		if strings.ContainsRune(p.Value.Literal, '*') {
			return c.compileGlob(desc, p.Value.Literal), nil
		}

		return c.compileCompare(desc, p.Op, p.Value.Literal), nil
	default:
		return nil, fmt.Errorf("filter: unhandled value kind for slot %q", p.Slot)
	}
}

func isEmptyValue(v slot.Value) bool {
	switch v.Kind {
	case slot.StringType, slot.EnumType:
		return v.Str == ""
	case slot.ListType:
		return len(v.List) == 0
	default:
		return false
	}
}

// compileGlob matches a string or any-element-of-list slot against a `*`
// glob pattern (spec.md §4.I: "`*` matches any non-empty"; "list slot:
// predicate holds iff any element matches").
func (c *Compiler) compileGlob(desc *slot.Descriptor, pattern string) Func {
	return func(m *model.Mapping) bool {
		val, present := desc.Get(m)
		if !present {
			return false
		}

		switch val.Kind {
		case slot.StringType, slot.EnumType:
			return globMatch(pattern, val.Str)
		case slot.ListType:
			for _, s := range val.List {
				if globMatch(pattern, s) {
					return true
				}
			}

			return false
		default:
			return false
		}
	}
}

// compileCompare handles ==/curie/string-equality plus numeric and
// cardinality comparisons, per spec.md §4.I.
func (c *Compiler) compileCompare(desc *slot.Descriptor, op, literal string) Func {
	if desc.Type == slot.DoubleType {
		want, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return func(*model.Mapping) bool { return false }
		}

		return func(m *model.Mapping) bool {
			val, present := desc.Get(m)
			if !present {
				return false
			}

			return compareFloat(op, val.D, want)
		}
	}

	return func(m *model.Mapping) bool {
		val, present := desc.Get(m)
		if !present {
			return false
		}

		switch val.Kind {
		case slot.StringType, slot.EnumType:
			return val.Str == literal
		case slot.ListType:
			for _, s := range val.List {
				if s == literal {
					return true
				}
			}

			return false
		default:
			return false
		}
	}
}

func compareFloat(op string, got, want float64) bool {
	switch op {
	case "==":
		return got == want
	case ">=":
		return got >= want
	case "<=":
		return got <= want
	case ">":
		return got > want
	case "<":
		return got < want
	default:
		return false
	}
}

// globMatch implements the SSSOM/T `*` wildcard (the only metacharacter;
// no other glob syntax is recognised, per spec.md §4.I). stdlib
// path.Match is not used since it treats '/' specially and doesn't support
// this grammar's `~`/`""` sentinels, which are handled one level up by the
// caller rather than here.
func globMatch(pattern, s string) bool {
	if pattern == "*" {
		return s != ""
	}

	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return s == pattern
	}

	if !strings.HasPrefix(s, parts[0]) {
		return false
	}

	rest := s[len(parts[0]):]

	if !strings.HasSuffix(rest, parts[len(parts)-1]) {
		return false
	}

	rest = rest[:len(rest)-len(parts[len(parts)-1])]

	for _, mid := range parts[1 : len(parts)-1] {
		idx := strings.Index(rest, mid)
		if idx < 0 {
			return false
		}

		rest = rest[idx+len(mid):]
	}

	return true
}
