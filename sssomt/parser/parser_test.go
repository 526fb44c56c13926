package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/sssomt/ast"
	"github.com/sssom/sssom-core/sssomt/parser"
)

type stubResolver struct {
	prefixes map[string]bool
	names    map[string]bool
}

func (r stubResolver) HasPrefix(short string) bool { return r.prefixes[short] }
func (r stubResolver) HasName(name string) bool     { return r.names[name] }

func TestParseHeaderWithArgs(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse(`prefix(FOO, "http://example.org/foo#")`)

	require.False(t, p.HasErrors(), p.Errors())

	prog := p.Programme()
	require.Len(t, prog.Headers, 1)
	assert.Equal(t, "prefix", prog.Headers[0].Name)
	require.Len(t, prog.Headers[0].Args, 2)
	assert.Equal(t, "FOO", prog.Headers[0].Args[0].Ident)
	assert.Equal(t, ast.StringKind, prog.Headers[0].Args[1].Value.Kind)
}

func TestParseSimpleRule(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse(`subject_id == "a:1" -> stop()`)

	require.False(t, p.HasErrors(), p.Errors())

	prog := p.Programme()
	require.Len(t, prog.Rules, 1)

	pred, ok := prog.Rules[0].Filter.(*ast.Predicate)
	require.True(t, ok)
	assert.Equal(t, "subject_id", pred.Slot)
	assert.Equal(t, "==", pred.Op)
	assert.Equal(t, "a:1", pred.Value.Literal)

	require.Len(t, prog.Rules[0].Actions, 1)
	assert.Equal(t, "stop", prog.Rules[0].Actions[0].Name)
}

func TestParseRuleWithTags(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse(`[curate, review] subject_id == "a:1" -> stop()`)

	require.False(t, p.HasErrors(), p.Errors())
	require.Len(t, p.Programme().Rules, 1)
	assert.Equal(t, []string{"curate", "review"}, p.Programme().Rules[0].Tags)
}

func TestParseImplicitAndBetweenAtoms(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse(`subject_id == "a:1" object_id == "b:1" -> stop()`)

	require.False(t, p.HasErrors(), p.Errors())

	and, ok := p.Programme().Rules[0].Filter.(*ast.And)
	require.True(t, ok)
	assert.Len(t, and.Operands, 2)
}

func TestParseOrHasLowerPrecedenceThanAnd(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse(`subject_id == "a:1" object_id == "b:1" || predicate_id == "c:1" -> stop()`)

	require.False(t, p.HasErrors(), p.Errors())

	or, ok := p.Programme().Rules[0].Filter.(*ast.Or)
	require.True(t, ok)
	require.Len(t, or.Operands, 2)

	and, ok := or.Operands[0].(*ast.And)
	require.True(t, ok)
	assert.Len(t, and.Operands, 2)

	_, ok = or.Operands[1].(*ast.Predicate)
	require.True(t, ok)
}

func TestParseNegationAndParens(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse(`!(subject_id == "a:1" || object_id == "b:1") -> stop()`)

	require.False(t, p.HasErrors(), p.Errors())

	not, ok := p.Programme().Rules[0].Filter.(*ast.Not)
	require.True(t, ok)

	_, ok = not.Operand.(*ast.Or)
	require.True(t, ok)
}

func TestParseApplicationFilterPredicate(t *testing.T) {
	t.Parallel()

	p := parser.New(stubResolver{names: map[string]bool{"is_obsolete": true, "stop": true}})
	p.Parse(`is_obsolete(subject_id) -> stop()`)

	require.False(t, p.HasErrors(), p.Errors())

	pred, ok := p.Programme().Rules[0].Filter.(*ast.Predicate)
	require.True(t, ok)
	assert.True(t, pred.IsApplication())
	assert.Equal(t, "is_obsolete", pred.Name)
}

func TestParseWildcardAndEmptyMarkerValues(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse("subject_label == * -> stop()\nobject_label == ~ -> stop()")

	require.False(t, p.HasErrors(), p.Errors())
	require.Len(t, p.Programme().Rules, 2)

	v1 := p.Programme().Rules[0].Filter.(*ast.Predicate).Value
	assert.Equal(t, ast.WildcardKind, v1.Kind)

	v2 := p.Programme().Rules[1].Filter.(*ast.Predicate).Value
	assert.Equal(t, ast.EmptyMarkerKind, v2.Kind)
}

func TestParseActionGroup(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse(`subject_id == "a:1" -> { stop(); include(); }`)

	require.False(t, p.HasErrors(), p.Errors())
	require.Len(t, p.Programme().Rules[0].Actions, 2)
	assert.Equal(t, "stop", p.Programme().Rules[0].Actions[0].Name)
	assert.Equal(t, "include", p.Programme().Rules[0].Actions[1].Name)
}

func TestParseKeywordArguments(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse(`subject_id == "a:1" -> replace(subject_label, /pattern="foo",replacement="bar")`)

	require.False(t, p.HasErrors(), p.Errors())

	args := p.Programme().Rules[0].Actions[0].Args
	require.Len(t, args, 3)
	assert.Equal(t, "subject_label", args[0].Ident)
	assert.Equal(t, "pattern", args[1].Ident)
	assert.Equal(t, "foo", args[1].Value.Literal)
	assert.Equal(t, "replacement", args[2].Ident)
	assert.Equal(t, "bar", args[2].Value.Literal)
}

func TestParseUndeclaredPrefixReportsError(t *testing.T) {
	t.Parallel()

	p := parser.New(stubResolver{prefixes: map[string]bool{}})
	p.Parse(`subject_id == unknownprefix:term -> stop()`)

	require.True(t, p.HasErrors())
}

func TestParseUnknownActionReportsError(t *testing.T) {
	t.Parallel()

	p := parser.New(stubResolver{names: map[string]bool{}})
	p.Parse(`subject_id == "a:1" -> bogus_action()`)

	require.True(t, p.HasErrors())
}

func TestParseAccumulatesAcrossMultipleCalls(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse(`subject_id == "a:1" -> stop()`)
	p.Parse(`object_id == "b:1" -> stop()`)

	require.False(t, p.HasErrors(), p.Errors())
	assert.Len(t, p.Programme().Rules, 2)
}

func TestParseErrorsDoNotDiscardPriorRules(t *testing.T) {
	t.Parallel()

	p := parser.New(nil)
	p.Parse(`subject_id == "a:1" -> stop()`)
	p.Parse(`-> bogus syntax (((`)

	assert.Len(t, p.Programme().Rules, 1, "a later malformed Parse call must not discard prior rules")
}
