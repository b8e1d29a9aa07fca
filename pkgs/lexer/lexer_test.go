package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestTokenizeFlatRequirementLine(t *testing.T) {
	tokens, err := New("Bash, Dash\n").Tokenize()
	require.NoError(t, err)
	require.Equal(t, []TokenType{IDENTIFIER, COMMA, IDENTIFIER, NEWLINE, EOF}, tokenTypes(tokens))
}

func TestTokenizeIndentDedent(t *testing.T) {
	src := "region.Anchor:\n  Bash\n  Dash\nother:\n"
	tokens, err := New(src).Tokenize()
	require.NoError(t, err)
	types := tokenTypes(tokens)
	require.Contains(t, types, INDENT)
	require.Contains(t, types, DEDENT)
}

func TestTokenizeIgnoresBlankLinesAndComments(t *testing.T) {
	src := "Bash\n\n# a comment\nDash\n"
	tokens, err := New(src).Tokenize()
	require.NoError(t, err)
	require.Equal(t, []TokenType{IDENTIFIER, NEWLINE, IDENTIFIER, NEWLINE, EOF}, tokenTypes(tokens))
}

func TestTokenizeNegativeNumber(t *testing.T) {
	tokens, err := New("-42\n").Tokenize()
	require.NoError(t, err)
	require.Equal(t, NUMBER, tokens[0].Type)
	require.Equal(t, "-42", tokens[0].Value)
}

func TestTokenizeEqualsAmount(t *testing.T) {
	tokens, err := New("Health=50\n").Tokenize()
	require.NoError(t, err)
	require.Equal(t, []TokenType{IDENTIFIER, EQUALS, NUMBER, NEWLINE, EOF}, tokenTypes(tokens))
}

func TestTokenizeFinalDedentOnEOF(t *testing.T) {
	src := "a:\n  b\n"
	tokens, err := New(src).Tokenize()
	require.NoError(t, err)
	last := tokens[len(tokens)-1]
	require.Equal(t, EOF, last.Type)
	require.Equal(t, DEDENT, tokens[len(tokens)-2].Type)
}
