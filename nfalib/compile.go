package nfalib

import "fmt"

// Compile converts a simplified regular expression into a Thompson NFA:
// syntax validation, explicit concatenation, shunting-yard to postfix,
// then fragment-stack evaluation. Errors from any stage are returned
// unchanged; no partial automaton is ever produced.
//
// Identical input yields a structurally identical automaton: absolute
// state IDs depend only on allocation order, which is deterministic.
func Compile(pattern string) (*NFA, error) {
	if err := checkSyntax(pattern); err != nil {
		return nil, err
	}
	postfix, err := InfixToPostfix(InsertConcat(pattern))
	if err != nil {
		return nil, err
	}
	return PostfixToNFA(postfix)
}

// MustCompile is Compile but panics on error.
func MustCompile(pattern string) *NFA {
	n, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("nfalib: Compile(%q): %v", pattern, err))
	}
	return n
}
