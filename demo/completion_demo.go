/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: completion_demo.go
Description: Demo walking through name analysis, completion and printing on a few
small combinatorial specifications.
*/

package main

import (
	"fmt"

	"github.com/kleascm/combspec/pkg/grammar"
)

func main() {
	fmt.Println("combspec - Completion Demo")
	fmt.Println("==========================")
	fmt.Println()

	// Binary trees: already closed
	demo("Binary trees", grammar.Grammar{
		{Name: "T", Alternatives: []grammar.Component{
			grammar.Cons{Weight: 1, Factors: []grammar.Factor{grammar.Elem{Name: "T"}, grammar.Elem{Name: "T"}}},
			grammar.Epsilon(),
		}},
	})

	// Plane trees with an undefined label type
	demo("Labelled plane trees", grammar.Grammar{
		{Name: "Tree", Alternatives: []grammar.Component{
			grammar.Cons{Weight: 1, Factors: []grammar.Factor{grammar.Elem{Name: "Label"}, grammar.Seq{Name: "Tree"}}},
		}},
		{Name: "Forest", Alternatives: []grammar.Component{grammar.Call{Name: "Tree"}, grammar.Call{Name: "Empty"}}},
	})

	demo("Empty grammar", grammar.Grammar{})
}

func demo(title string, g grammar.Grammar) {
	fmt.Printf("%s\n", title)
	fmt.Println("--------------------------------")
	fmt.Printf("Input:\n%s\n\n", g)
	fmt.Printf("Undefined symbols: %v\n", g.Leaves().Sorted())

	completed := grammar.Complete(g)
	fmt.Printf("Added %d epsilon rules, closed=%t\n", len(completed)-len(g), completed.Closed())
	fmt.Printf("Completed:\n%s\n\n", completed)
}
