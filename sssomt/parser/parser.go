// Package parser implements a recursive-descent parser for the SSSOM/T
// grammar (spec.md §4.H), producing an [ast.Programme]. Unknown
// identifiers (prefixes, header/action/filter names) are resolved against
// a host-supplied [Resolver]; the parser itself never decides whether a
// name is "known", per spec.md §4.H: "the host registers available names
// through a function table."
package parser

import (
	"fmt"

	"github.com/sssom/sssom-core/errs"
	"github.com/sssom/sssom-core/sssomt/ast"
	"github.com/sssom/sssom-core/sssomt/lexer"
	"github.com/sssom/sssom-core/sssomt/token"
)

// Resolver answers the host-specific questions the parser needs while
// building the tree: whether a short prefix is declared, and whether a
// header/action/filter name is registered. A nil Resolver accepts every
// name (useful for tests that only check tree shape).
type Resolver interface {
	HasPrefix(short string) bool
	HasName(name string) bool
}

// Parser accumulates rules across possibly multiple [Parser.Parse] calls,
// per spec.md §4.H ("rules accumulate across multiple parse calls; errors
// from one call do not discard prior rules").
type Parser struct {
	resolver Resolver
	prog     ast.Programme
	errs     []error
}

// New returns a Parser that resolves names against resolver (which may be
// nil).
func New(resolver Resolver) *Parser {
	return &Parser{resolver: resolver}
}

// Parse tokenises and parses src, appending any new headers/rules to the
// Parser's accumulated [ast.Programme] and any new errors to its error
// list. It never discards rules already accumulated from a previous call,
// even if src itself contains errors.
func (p *Parser) Parse(src string) {
	toks := lexer.Tokens(src)
	ps := &parseState{toks: toks, parser: p}
	ps.run()
}

// Programme returns every header/rule accumulated so far.
func (p *Parser) Programme() *ast.Programme { return &p.prog }

// HasErrors reports whether any parse call has produced an error.
func (p *Parser) HasErrors() bool { return len(p.errs) > 0 }

// Errors returns every accumulated parse error, in the order encountered.
func (p *Parser) Errors() []error { return p.errs }

func (p *Parser) fail(pos token.Pos, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errs = append(p.errs, errs.New(errs.KindDSL, msg).At(errs.Pos{Line: pos.Line, Column: pos.Column}))
}

// parseState holds per-call token-stream position; errors and the
// programme itself live on the parent Parser so they survive across calls.
type parseState struct {
	toks   []token.Token
	pos    int
	parser *Parser
}

func (s *parseState) cur() token.Token  { return s.toks[s.pos] }
func (s *parseState) at(off int) token.Token {
	i := s.pos + off
	if i >= len(s.toks) {
		return s.toks[len(s.toks)-1]
	}

	return s.toks[i]
}

func (s *parseState) advance() token.Token {
	t := s.cur()
	if s.pos < len(s.toks)-1 {
		s.pos++
	}

	return t
}

func (s *parseState) skipSeparators() {
	for s.cur().Type == token.NEWLINE || s.cur().Type == token.SEMICOLON {
		s.advance()
	}
}

func (s *parseState) run() {
	s.skipSeparators()

	for s.cur().Type != token.EOF {
		if s.isHeaderNext() {
			if h := s.parseHeader(); h != nil {
				s.parser.prog.Headers = append(s.parser.prog.Headers, h)
			}
		} else {
			if r := s.parseRule(); r != nil {
				s.parser.prog.Rules = append(s.parser.prog.Rules, r)
			}
		}

		s.skipSeparators()
	}
}

// isHeaderNext decides header vs. rule by scanning forward for a
// top-level ARROW token before the statement ends (NEWLINE/SEMICOLON/EOF
// outside any bracket nesting) and before a leading '[' (tags always
// introduce a rule).
func (s *parseState) isHeaderNext() bool {
	if s.cur().Type == token.LBRACKET {
		return false
	}

	if s.cur().Type != token.IDENT {
		return false
	}

	depth := 0

	for i := s.pos; ; i++ {
		t := s.at(i - s.pos)

		switch t.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
		case token.ARROW:
			if depth <= 0 {
				return false
			}
		case token.NEWLINE, token.SEMICOLON, token.EOF:
			if depth <= 0 {
				return true
			}
		}

		if t.Type == token.EOF {
			return true
		}
	}
}

func (s *parseState) parseHeader() *ast.Header {
	pos := s.cur().Pos
	name := s.expectIdent()

	if name == "" {
		return nil
	}

	if !s.expect(token.LPAREN) {
		return nil
	}

	args := s.parseArgList(token.RPAREN)
	s.expect(token.RPAREN)

	if s.parser.resolver != nil && !s.parser.resolver.HasName(name) {
		s.parser.fail(pos, "unknown header: %s", name)
	}

	return &ast.Header{Name: name, Args: args, Position: pos}
}

func (s *parseState) parseRule() *ast.Rule {
	pos := s.cur().Pos

	var tags []string
	if s.cur().Type == token.LBRACKET {
		s.advance()

		for s.cur().Type != token.RBRACKET && s.cur().Type != token.EOF {
			if id := s.expectIdent(); id != "" {
				tags = append(tags, id)
			}

			if s.cur().Type == token.COMMA {
				s.advance()
			}
		}

		s.expect(token.RBRACKET)
	}

	filter := s.parseOrExpr()

	if !s.expect(token.ARROW) {
		return nil
	}

	var actions []*ast.ActionCall

	if s.cur().Type == token.LBRACE {
		s.advance()

		for s.cur().Type != token.RBRACE && s.cur().Type != token.EOF {
			if a := s.parseActionCall(); a != nil {
				actions = append(actions, a)
			}

			s.expect(token.SEMICOLON)
		}

		s.expect(token.RBRACE)
	} else if a := s.parseActionCall(); a != nil {
		actions = append(actions, a)
	}

	return &ast.Rule{Tags: tags, Filter: filter, Actions: actions, Position: pos}
}

func (s *parseState) parseOrExpr() ast.FilterExpr {
	pos := s.cur().Pos
	first := s.parseAndExpr()
	operands := []ast.FilterExpr{first}

	for s.cur().Type == token.OR {
		s.advance()
		operands = append(operands, s.parseAndExpr())
	}

	if len(operands) == 1 {
		return first
	}

	return &ast.Or{Operands: operands, Position: pos}
}

func (s *parseState) parseAndExpr() ast.FilterExpr {
	pos := s.cur().Pos
	first := s.parseAtom()
	operands := []ast.FilterExpr{first}

	for s.startsAtom() {
		if s.cur().Type == token.AND {
			s.advance()
		}

		operands = append(operands, s.parseAtom())
	}

	if len(operands) == 1 {
		return first
	}

	return &ast.And{Operands: operands, Position: pos}
}

// startsAtom reports whether the current token can begin another atom
// within a conjunction, i.e. this isn't the end of the enclosing filter.
func (s *parseState) startsAtom() bool {
	switch s.cur().Type {
	case token.AND, token.NOT, token.LPAREN, token.IDENT:
		return true
	default:
		return false
	}
}

func (s *parseState) parseAtom() ast.FilterExpr {
	pos := s.cur().Pos

	if s.cur().Type == token.NOT {
		s.advance()
		return &ast.Not{Operand: s.parseAtom(), Position: pos}
	}

	if s.cur().Type == token.LPAREN {
		s.advance()

		inner := s.parseOrExpr()
		s.expect(token.RPAREN)

		return inner
	}

	return s.parsePredicate()
}

func (s *parseState) parsePredicate() *ast.Predicate {
	pos := s.cur().Pos
	name := s.expectIdent()

	if s.cur().Type == token.LPAREN {
		s.advance()

		args := s.parseArgList(token.RPAREN)
		s.expect(token.RPAREN)

		if s.parser.resolver != nil && !s.parser.resolver.HasName(name) {
			s.parser.fail(pos, "unknown filter: %s", name)
		}

		return &ast.Predicate{Name: name, Args: args, Position: pos}
	}

	op := s.parseOp()
	val := s.parseValue()

	return &ast.Predicate{Slot: name, Op: op, Value: val, Position: pos}
}

func (s *parseState) parseOp() string {
	switch s.cur().Type {
	case token.OPEQ, token.OPGE, token.OPLE, token.OPGT, token.OPLT:
		t := s.advance()
		return t.Literal
	default:
		s.parser.fail(s.cur().Pos, "expected comparison operator, got %s", s.cur().Type)
		return ""
	}
}

func (s *parseState) parseValue() ast.Value {
	pos := s.cur().Pos

	switch s.cur().Type {
	case token.CURIE:
		t := s.advance()
		if s.parser.resolver != nil {
			if short, _, ok := cutCURIE(t.Literal); ok && !s.parser.resolver.HasPrefix(short) {
				s.parser.fail(pos, "undeclared prefix: %s", short)
			}
		}

		return ast.Value{Kind: ast.CURIEKind, Literal: t.Literal, Position: pos}
	case token.STRING:
		t := s.advance()
		return ast.Value{Kind: ast.StringKind, Literal: t.Literal, Position: pos}
	case token.WILDCARD:
		s.advance()
		return ast.Value{Kind: ast.WildcardKind, Position: pos}
	case token.TILDE:
		s.advance()
		return ast.Value{Kind: ast.EmptyMarkerKind, Position: pos}
	case token.IDENT:
		t := s.advance()
		return ast.Value{Kind: ast.StringKind, Literal: t.Literal, Position: pos}
	default:
		s.parser.fail(pos, "expected value, got %s", s.cur().Type)
		s.advance()

		return ast.Value{Kind: ast.StringKind, Position: pos}
	}
}

func (s *parseState) parseArgList(end token.Type) []ast.Arg {
	var args []ast.Arg

	for s.cur().Type != end && s.cur().Type != token.EOF {
		if s.cur().Type == token.SLASH {
			s.advance()
			// keyword arguments: kw '=' value (',' kw '=' value)*
			for s.cur().Type != end && s.cur().Type != token.EOF {
				kw := s.expectIdent()
				s.expect(token.EQ)
				val := s.parseValue()
				args = append(args, ast.Arg{Ident: kw, Value: val})

				if s.cur().Type == token.COMMA {
					s.advance()
				}
			}

			break
		}

		if s.cur().Type == token.IDENT && s.at(1).Type != token.LPAREN &&
			s.at(1).Type != token.OPEQ && s.at(1).Type != token.OPGE &&
			s.at(1).Type != token.OPLE && s.at(1).Type != token.OPGT && s.at(1).Type != token.OPLT {
			t := s.advance()
			args = append(args, ast.Arg{Ident: t.Literal})
		} else {
			args = append(args, ast.Arg{Value: s.parseValue()})
		}

		if s.cur().Type == token.COMMA {
			s.advance()
		} else {
			break
		}
	}

	return args
}

func (s *parseState) parseActionCall() *ast.ActionCall {
	pos := s.cur().Pos
	name := s.expectIdent()

	if name == "" {
		return nil
	}

	if !s.expect(token.LPAREN) {
		return nil
	}

	args := s.parseArgList(token.RPAREN)
	s.expect(token.RPAREN)

	if s.parser.resolver != nil && !s.parser.resolver.HasName(name) {
		s.parser.fail(pos, "unknown action: %s", name)
	}

	return &ast.ActionCall{Name: name, Args: args, Position: pos}
}

func (s *parseState) expectIdent() string {
	if s.cur().Type != token.IDENT {
		s.parser.fail(s.cur().Pos, "expected identifier, got %s", s.cur().Type)
		return ""
	}

	return s.advance().Literal
}

func (s *parseState) expect(t token.Type) bool {
	if s.cur().Type != t {
		s.parser.fail(s.cur().Pos, "expected %s, got %s", t, s.cur().Type)
		return false
	}

	s.advance()

	return true
}

func cutCURIE(s string) (short, local string, ok bool) {
	for i, r := range s {
		if r == ':' {
			return s[:i], s[i+1:], true
		}
	}

	return s, "", false
}
