package nfalib

// State identifies an automaton state. IDs are allocated 0,1,2,... by a
// per-construction allocator and are never reused within one run.
type State int

// Label is a transition label: either a literal rune or the epsilon marker.
// The zero Ch with Eps set is the only epsilon value; comparable, so it can
// key a map directly.
type Label struct {
	Ch  rune
	Eps bool
}

// Epsilon is the no-input move label.
var Epsilon = Label{Eps: true}

// Literal builds the label for a literal character transition.
func Literal(r rune) Label { return Label{Ch: r} }

func (l Label) String() string {
	if l.Eps {
		return "ε"
	}
	return string(l.Ch)
}

// StateSet is a set of destination states.
type StateSet map[State]struct{}

// NFA is a Thompson automaton (or fragment thereof): exactly one start and
// one accept state, plus a nested transition table
// Transitions[from][label] = set of destinations. The value returned by
// Compile is never mutated afterwards.
type NFA struct {
	StartState  State
	AcceptState State
	Transitions map[State]map[Label]StateSet
}

// NewNFA constructs an empty fragment over two already-allocated states.
func NewNFA(start, accept State) *NFA {
	return &NFA{
		StartState:  start,
		AcceptState: accept,
		Transitions: map[State]map[Label]StateSet{},
	}
}

// AddTransition inserts from --label--> to, creating the nested entries as
// needed.
func (n *NFA) AddTransition(from State, label Label, to State) {
	row, ok := n.Transitions[from]
	if !ok {
		row = map[Label]StateSet{}
		n.Transitions[from] = row
	}
	dests, ok := row[label]
	if !ok {
		dests = StateSet{}
		row[label] = dests
	}
	dests[to] = struct{}{}
}

// Merge copies every transition of other into n. Each edge is re-inserted
// through AddTransition, so the destination sets of the two fragments stay
// independently owned: later additions to one are never visible through the
// other.
func (n *NFA) Merge(other *NFA) {
	for from, row := range other.Transitions {
		for label, dests := range row {
			for to := range dests {
				n.AddTransition(from, label, to)
			}
		}
	}
}

// stateAlloc hands out fresh state IDs for a single construction run. A
// value per call keeps construction reentrant; there is no shared counter.
type stateAlloc struct {
	next State
}

func (a *stateAlloc) newState() State {
	s := a.next
	a.next++
	return s
}
