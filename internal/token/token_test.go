package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"true", TRUE},
		{"false", FALSE},
		{"null", NULL},
		{"inf", IDENT},
		{"foobar", IDENT},
		{"my_var", IDENT},
		{"r2d2", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := LookupIdent(tt.input)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestIsKey(t *testing.T) {
	require.True(t, IsKey(IDENT))
	require.True(t, IsKey(NULL))
	require.True(t, IsKey(STRING))
	require.False(t, IsKey(NUMBER))
	require.False(t, IsKey(LBRACE))
}

func TestDescribe(t *testing.T) {
	require.Equal(t, "end of input", Describe(Token{Type: EOF}))
	require.Equal(t, "'}'", Describe(Token{Type: RBRACE, Literal: "}"}))
	require.Equal(t, "string", Describe(Token{Type: STRING, Literal: "x"}))
}
