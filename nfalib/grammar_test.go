package nfalib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrammarAccepts(t *testing.T) {
	for _, pattern := range []string{
		"a",
		"ab",
		"a|b",
		"(a|b)?a",
		"a(b|c)*d",
		"a**",
		"(a)(b)",
		"a+b?",
		"((a|b)|c)",
		"x y", // space is an ordinary literal
	} {
		require.NoError(t, checkSyntax(pattern), "pattern %q", pattern)
	}
}

func TestGrammarRejects(t *testing.T) {
	for _, pattern := range []string{
		"",
		"(a",
		"a)",
		"()",
		"|a",
		"a|",
		"a||b",
		"*",
		"*a",
		"(|a)",
	} {
		err := checkSyntax(pattern)
		require.Error(t, err, "pattern %q", pattern)
		require.IsType(t, &MalformedExpressionError{}, err, "pattern %q", pattern)
	}
}

func TestGrammarErrorPosition(t *testing.T) {
	err := checkSyntax("ab)")
	require.Error(t, err)
	mf := err.(*MalformedExpressionError)
	require.Equal(t, 2, mf.Pos)
}
