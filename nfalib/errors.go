package nfalib

import "fmt"

// MalformedExpressionError reports unbalanced grouping or a pattern the
// syntax grammar rejects. Pos is a rune offset into the expression.
type MalformedExpressionError struct {
	Pos int
	Msg string
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed expression at %d: %s", e.Pos, e.Msg)
}

// UnexpectedSymbolError reports a postfix token that is neither a literal
// nor a known operator.
type UnexpectedSymbolError struct {
	Symbol rune
	Pos    int
}

func (e *UnexpectedSymbolError) Error() string {
	return fmt.Sprintf("unexpected symbol %q at %d in postfix expression", e.Symbol, e.Pos)
}

// InvalidPostfixError reports a fragment stack that did not hold exactly
// one automaton: an operator popped an empty stack, or operands were left
// over when the stream ended.
type InvalidPostfixError struct {
	Fragments int
}

func (e *InvalidPostfixError) Error() string {
	return fmt.Sprintf("invalid postfix expression: %d fragments on stack, want 1", e.Fragments)
}
