package nfalib

// InsertConcat rewrites an infix expression so that implicit concatenation
// becomes the explicit operator '.'. An operator is inserted between c and
// the next rune n exactly when c is not '(' or '|' and n is not ')', '|',
// '*', '+' or '?'.
//
// Literals are single runes; there is no escape mechanism, so the operator
// characters themselves (including '.') cannot appear as literals.
func InsertConcat(expr string) string {
	runes := []rune(expr)
	out := make([]rune, 0, 2*len(runes))

	for i, c := range runes {
		out = append(out, c)
		if i+1 >= len(runes) {
			break
		}
		n := runes[i+1]
		if c != '(' && c != opUnion &&
			n != ')' && n != opUnion && n != opStar && n != opPlus && n != opOption {
			out = append(out, opConcat)
		}
	}
	return string(out)
}
