package nfalib

// PostfixToNFA evaluates a postfix expression into an automaton using
// Thompson's construction: one fragment per literal, one composition rule
// per operator, joined with a fragment stack. State IDs are fresh per call.
func PostfixToNFA(postfix string) (*NFA, error) {
	alloc := &stateAlloc{}
	var stack []*NFA

	pop := func() *NFA {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f
	}

	for i, c := range []rune(postfix) {
		switch c {
		case opStar:
			if len(stack) < 1 {
				return nil, &InvalidPostfixError{Fragments: len(stack)}
			}
			f := pop()
			start, accept := alloc.newState(), alloc.newState()
			nfa := NewNFA(start, accept)
			nfa.Merge(f)
			nfa.AddTransition(start, Epsilon, f.StartState)
			nfa.AddTransition(f.AcceptState, Epsilon, f.StartState)
			nfa.AddTransition(start, Epsilon, accept)
			nfa.AddTransition(f.AcceptState, Epsilon, accept)
			stack = append(stack, nfa)

		case opPlus:
			if len(stack) < 1 {
				return nil, &InvalidPostfixError{Fragments: len(stack)}
			}
			f := pop()
			start, accept := alloc.newState(), alloc.newState()
			nfa := NewNFA(start, accept)
			nfa.Merge(f)
			// no start→accept shortcut: at least one pass through f
			nfa.AddTransition(start, Epsilon, f.StartState)
			nfa.AddTransition(f.AcceptState, Epsilon, f.StartState)
			nfa.AddTransition(f.AcceptState, Epsilon, accept)
			stack = append(stack, nfa)

		case opOption:
			if len(stack) < 1 {
				return nil, &InvalidPostfixError{Fragments: len(stack)}
			}
			f := pop()
			start, accept := alloc.newState(), alloc.newState()
			nfa := NewNFA(start, accept)
			nfa.Merge(f)
			nfa.AddTransition(start, Epsilon, f.StartState)
			nfa.AddTransition(f.AcceptState, Epsilon, accept)
			nfa.AddTransition(start, Epsilon, accept)
			stack = append(stack, nfa)

		case opConcat:
			if len(stack) < 2 {
				return nil, &InvalidPostfixError{Fragments: len(stack)}
			}
			f2 := pop()
			f1 := pop()
			nfa := NewNFA(f1.StartState, f2.AcceptState)
			nfa.Merge(f1)
			nfa.Merge(f2)
			nfa.AddTransition(f1.AcceptState, Epsilon, f2.StartState)
			stack = append(stack, nfa)

		case opUnion:
			if len(stack) < 2 {
				return nil, &InvalidPostfixError{Fragments: len(stack)}
			}
			f2 := pop()
			f1 := pop()
			start, accept := alloc.newState(), alloc.newState()
			nfa := NewNFA(start, accept)
			nfa.Merge(f1)
			nfa.Merge(f2)
			nfa.AddTransition(start, Epsilon, f1.StartState)
			nfa.AddTransition(start, Epsilon, f2.StartState)
			nfa.AddTransition(f1.AcceptState, Epsilon, accept)
			nfa.AddTransition(f2.AcceptState, Epsilon, accept)
			stack = append(stack, nfa)

		case '(', ')':
			// grouping markers never survive conversion; seeing one here
			// means the input was not a postfix expression
			return nil, &UnexpectedSymbolError{Symbol: c, Pos: i}

		default:
			start, accept := alloc.newState(), alloc.newState()
			nfa := NewNFA(start, accept)
			nfa.AddTransition(start, Literal(c), accept)
			stack = append(stack, nfa)
		}
	}

	if len(stack) != 1 {
		return nil, &InvalidPostfixError{Fragments: len(stack)}
	}
	return stack[0], nil
}
