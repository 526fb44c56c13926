// Package ast defines the syntax tree produced by sssomt/parser for the
// SSSOM/T grammar (spec.md §4.H).
package ast

import "github.com/sssom/sssom-core/sssomt/token"

// Node is implemented by every AST node, for position reporting.
type Node interface {
	Pos() token.Pos
}

// Programme is the parsed result of one or more `parse` calls: a sequence
// of headers and rules, in source order (spec.md §4.H: "rules accumulate
// across multiple parse calls").
type Programme struct {
	Headers []*Header
	Rules   []*Rule
}

// Header is a `name(arglist?)` top-of-file directive, e.g.
// `prefix(FOO, "http://example.org/foo#")`.
type Header struct {
	Name     string
	Args     []Arg
	Position token.Pos
}

func (h *Header) Pos() token.Pos { return h.Position }

// Rule is `tags? filter -> (action | '{' (action ';')* '}')`.
type Rule struct {
	Tags     []string
	Filter   FilterExpr
	Actions  []*ActionCall
	Position token.Pos
}

func (r *Rule) Pos() token.Pos { return r.Position }

// FilterExpr is any node appearing in filter position: Or, And, Not, or a
// Predicate leaf.
type FilterExpr interface {
	Node
	filterExpr()
}

// Or is a disjunction of one or more operands (`||`, lowest precedence).
type Or struct {
	Operands []FilterExpr
	Position token.Pos
}

func (o *Or) Pos() token.Pos { return o.Position }
func (*Or) filterExpr()      {}

// And is a conjunction of one or more operands (explicit `&&` or implicit
// adjacency).
type And struct {
	Operands []FilterExpr
	Position token.Pos
}

func (a *And) Pos() token.Pos { return a.Position }
func (*And) filterExpr()      {}

// Not negates its operand (`!`).
type Not struct {
	Operand  FilterExpr
	Position token.Pos
}

func (n *Not) Pos() token.Pos { return n.Position }
func (*Not) filterExpr()      {}

// Predicate is a leaf filter atom: either a `slot op value` comparison or
// an application filter call `name(arglist?)`.
type Predicate struct {
	// Slot comparison form.
	Slot string
	Op   string // "", "==", ">=", "<=", ">", "<"
	Value Value

	// Application filter form (Slot == "" && Name != "" signals this).
	Name string
	Args []Arg

	Position token.Pos
}

func (p *Predicate) Pos() token.Pos { return p.Position }
func (*Predicate) filterExpr()      {}

// IsApplication reports whether p is an application filter call rather
// than a slot comparison.
func (p *Predicate) IsApplication() bool { return p.Slot == "" && p.Name != "" }

// Value is a filter or argument value: CURIE, string, wildcard (`*`), or
// the empty-or-absent marker (`~`). An explicit empty string literal
// (`""`) is represented as Kind == StringKind with Literal == "".
type Value struct {
	Kind     ValueKind
	Literal  string // CURIE text or string contents
	Position token.Pos
}

func (v Value) Pos() token.Pos { return v.Position }

// ValueKind discriminates [Value]'s forms.
type ValueKind int

const (
	CURIEKind ValueKind = iota
	StringKind
	WildcardKind
	EmptyMarkerKind // ~
)

// ActionCall is `name(arglist?)`, e.g. `assign(subject_label, "foo")`.
type ActionCall struct {
	Name     string
	Args     []Arg
	KWArgs   map[string]Value
	Position token.Pos
}

func (a *ActionCall) Pos() token.Pos { return a.Position }

// Arg is one positional argument to a header, action, or application
// filter call. Most arguments are [Value]s; a bare identifier argument
// (e.g. a slot name passed to `assign`) is carried in Ident, with Value
// left zero. A keyword argument carries the keyword in Ident and its value
// in Value.
type Arg struct {
	Ident string // bare identifier, or the keyword of a keyword argument
	Value Value  // a value argument, or a keyword argument's value
}
