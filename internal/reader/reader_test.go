package reader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikokozak/froth/internal/ferrors"
)

func tokens(t *testing.T, input string, nameMax int) []Token {
	t.Helper()
	r := New([]byte(input), nameMax)
	var out []Token
	for {
		tok, err := r.NextToken()
		require.NoError(t, err)
		out = append(out, tok)
		if tok.Type == TokenEOF {
			return out
		}
	}
}

func TestNumbersAndIdentifiers(t *testing.T) {
	toks := tokens(t, "1 2 3 foo -7", 32)
	require.Equal(t, []Token{
		{Type: TokenNumber, Number: 1},
		{Type: TokenNumber, Number: 2},
		{Type: TokenNumber, Number: 3},
		{Type: TokenIdentifier, Name: "foo"},
		{Type: TokenNumber, Number: -7},
		{Type: TokenEOF},
	}, toks)
}

func TestBareMinusIsIdentifier(t *testing.T) {
	toks := tokens(t, "-", 32)
	require.Equal(t, TokenIdentifier, toks[0].Type)
	require.Equal(t, "-", toks[0].Name)
}

func TestTrailingLettersMakeIdentifier(t *testing.T) {
	toks := tokens(t, "3foo", 32)
	require.Equal(t, TokenIdentifier, toks[0].Type)
	require.Equal(t, "3foo", toks[0].Name)
}

func TestBrackets(t *testing.T) {
	toks := tokens(t, "[ 1 [ 2 ] ]", 32)
	require.Equal(t, []TokenType{
		TokenOpenBracket, TokenNumber, TokenOpenBracket, TokenNumber,
		TokenCloseBracket, TokenCloseBracket, TokenEOF,
	}, typesOf(toks))
}

func TestTickIdentifier(t *testing.T) {
	toks := tokens(t, "'foo", 32)
	require.Equal(t, TokenTickIdentifier, toks[0].Type)
	require.Equal(t, "foo", toks[0].Name)
}

func TestLineComment(t *testing.T) {
	toks := tokens(t, "1 \\ this is a comment 2", 32)
	require.Equal(t, []Token{
		{Type: TokenNumber, Number: 1},
		{Type: TokenEOF},
	}, toks)
}

func TestTokenTooLong(t *testing.T) {
	r := New([]byte("aaaaaaaaaa"), 4)
	_, err := r.NextToken()
	require.ErrorIs(t, err, ferrors.ErrTokenTooLong)
}

func TestEOFIsIdempotent(t *testing.T) {
	r := New([]byte("1"), 32)
	_, err := r.NextToken()
	require.NoError(t, err)

	first, err := r.NextToken()
	require.NoError(t, err)
	require.Equal(t, TokenEOF, first.Type)

	second, err := r.NextToken()
	require.NoError(t, err)
	require.Equal(t, TokenEOF, second.Type)
}

func typesOf(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}
