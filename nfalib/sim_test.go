package nfalib

// Test oracle: an epsilon-closure NFA simulator. Matching is not part of
// the library surface; this exists only to verify language membership.

func epsilonClosure(n *NFA, set StateSet) StateSet {
	stack := make([]State, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for to := range n.Transitions[s][Epsilon] {
			if _, ok := set[to]; !ok {
				set[to] = struct{}{}
				stack = append(stack, to)
			}
		}
	}
	return set
}

func accepts(n *NFA, input string) bool {
	curr := epsilonClosure(n, StateSet{n.StartState: {}})
	for _, r := range input {
		next := StateSet{}
		for s := range curr {
			for to := range n.Transitions[s][Literal(r)] {
				next[to] = struct{}{}
			}
		}
		if len(next) == 0 {
			return false
		}
		curr = epsilonClosure(n, next)
	}
	_, ok := curr[n.AcceptState]
	return ok
}
