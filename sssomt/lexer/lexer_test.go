package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/sssomt/lexer"
	"github.com/sssom/sssom-core/sssomt/token"
)

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tk := range toks {
		out[i] = tk.Type
	}

	return out
}

func TestTokensRecognisesOperatorsAndDelimiters(t *testing.T) {
	t.Parallel()

	toks := lexer.Tokens(`subject_id == "x" -> stop() ; [tag] ! ~ * || &&`)

	assert.Equal(t, []token.Type{
		token.IDENT, token.OPEQ, token.STRING, token.ARROW, token.IDENT,
		token.LPAREN, token.RPAREN, token.SEMICOLON, token.LBRACKET, token.IDENT,
		token.RBRACKET, token.NOT, token.TILDE, token.WILDCARD, token.OR, token.AND, token.EOF,
	}, types(toks))
}

func TestTokensRecognisesCURIE(t *testing.T) {
	t.Parallel()

	toks := lexer.Tokens(`skos:exactMatch`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.CURIE, toks[0].Type)
	assert.Equal(t, "skos:exactMatch", toks[0].Literal)
}

func TestTokensRecognisesNumber(t *testing.T) {
	t.Parallel()

	toks := lexer.Tokens(`0.95`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, "0.95", toks[0].Literal)
}

func TestTokensRecognisesQuotedStringWithEscape(t *testing.T) {
	t.Parallel()

	toks := lexer.Tokens(`"a \"quoted\" value"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, `a "quoted" value`, toks[0].Literal)
}

func TestTokensSkipsCommentsAndTracksNewlines(t *testing.T) {
	t.Parallel()

	toks := lexer.Tokens("# a comment\nsubject_id\n")

	require.Len(t, toks, 4)
	assert.Equal(t, token.NEWLINE, toks[0].Type)
	assert.Equal(t, token.IDENT, toks[1].Type)
	assert.Equal(t, 2, toks[1].Pos.Line)
}

func TestTokensIllegalCharacter(t *testing.T) {
	t.Parallel()

	toks := lexer.Tokens(`@`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.ILLEGAL, toks[0].Type)
}
