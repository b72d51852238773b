package nfalib

// Operator runes shared by the converter and the evaluator. '.' is reserved
// for concatenation and is inserted by InsertConcat, never read from user
// input as a literal.
const (
	opStar   = '*'
	opPlus   = '+'
	opOption = '?'
	opConcat = '.'
	opUnion  = '|'
)

// precedence on the operator stack; '(' is a sentinel that only a matching
// ')' removes.
var precedence = map[rune]int{
	opStar:   3,
	opPlus:   3,
	opOption: 3,
	opConcat: 2,
	opUnion:  1,
	'(':      0,
}

// InfixToPostfix converts an infix expression with explicit concatenation
// (see InsertConcat) to postfix via the shunting-yard algorithm. Operators
// of greater or equal precedence are popped before pushing, so chains of
// the same operator associate left.
func InfixToPostfix(expr string) (string, error) {
	runes := []rune(expr)
	output := make([]rune, 0, len(runes))
	stack := make([]rune, 0, len(runes))

	for i, c := range runes {
		switch c {
		case '(':
			stack = append(stack, c)

		case ')':
			for {
				if len(stack) == 0 {
					return "", &MalformedExpressionError{Pos: i, Msg: "unmatched )"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top == '(' {
					break
				}
				output = append(output, top)
			}

		case opStar, opPlus, opOption, opConcat, opUnion:
			for len(stack) > 0 && precedence[stack[len(stack)-1]] >= precedence[c] {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, c)

		default:
			output = append(output, c)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == '(' {
			return "", &MalformedExpressionError{Pos: len(runes), Msg: "unmatched ("}
		}
		output = append(output, top)
	}

	return string(output), nil
}
