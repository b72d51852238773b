package nfalib

import (
	"errors"
	"testing"
)

// ------------------------------------------------------------------- InsertConcat

func TestInsertConcat(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"a", "a"},
		{"ab", "a.b"},
		{"abc", "a.b.c"},
		{"a*b", "a*.b"},
		{"a|b", "a|b"},
		{"(a)(b)", "(a).(b)"},
		{"(a|b)?a", "(a|b)?.a"},
		{"a(b|c)*d", "a.(b|c)*.d"},
		{"a+b?", "a+.b?"},
	}
	for _, c := range cases {
		if got := InsertConcat(c.in); got != c.want {
			t.Fatalf("InsertConcat(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// ------------------------------------------------------------------- Shunting-yard

func TestInfixToPostfix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"a", "a"},
		{"a.b", "ab."},
		{"a.b.c", "ab.c."}, // left-associative
		{"a|b", "ab|"},
		{"a|b|c", "ab|c|"},
		{"(a|b)?.a", "ab|?a."},
		{"a.(b|c)*.d", "abc|*.d."},
		{"a**", "a**"},
	}
	for _, c := range cases {
		got, err := InfixToPostfix(c.in)
		if err != nil {
			t.Fatalf("InfixToPostfix(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("InfixToPostfix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// joint check of 4.1+4.2 on the reference pattern
func TestPostfixPipeline(t *testing.T) {
	got, err := InfixToPostfix(InsertConcat("(a|b)?a"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "ab|?a." {
		t.Fatalf("postfix for (a|b)?a = %q, want %q", got, "ab|?a.")
	}
}

func TestInfixToPostfixUnbalanced(t *testing.T) {
	for _, in := range []string{"(a", "a)", "((a)", "a.b)"} {
		_, err := InfixToPostfix(in)
		var mf *MalformedExpressionError
		if !errors.As(err, &mf) {
			t.Fatalf("InfixToPostfix(%q): want MalformedExpressionError, got %v", in, err)
		}
	}
}
