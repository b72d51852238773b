package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"re2nfa/nfalib"
)

func printNFA(pattern string, nfa *nfalib.NFA) {
	postfix, _ := nfalib.InfixToPostfix(nfalib.InsertConcat(pattern))
	fmt.Println("Regular Expression:", pattern)
	fmt.Println("Postfix:", postfix)
	fmt.Println("Start State:", nfa.StartState)
	fmt.Println("Accept State:", nfa.AcceptState)
	fmt.Println("Transitions:")

	states := make([]nfalib.State, 0, len(nfa.Transitions))
	for s := range nfa.Transitions {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	for _, s := range states {
		for label, dests := range nfa.Transitions[s] {
			to := make([]nfalib.State, 0, len(dests))
			for d := range dests {
				to = append(to, d)
			}
			sort.Slice(to, func(i, j int) bool { return to[i] < to[j] })
			fmt.Printf("  %d --%s--> %v\n", s, label, to)
		}
	}
}

func main() {
	printNFA("(a|b)?a", nfalib.MustCompile("(a|b)?a"))

	// interactive
	rdr := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("pattern> ")
		pat, err := rdr.ReadString('\n')
		if err != nil {
			break
		}
		pat = strings.TrimRight(pat, "\n")
		if pat == "" {
			break
		}
		nfa, err := nfalib.Compile(pat)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		printNFA(pat, nfa)
	}
}
