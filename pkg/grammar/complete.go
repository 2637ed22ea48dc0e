/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: complete.go
Description: Grammar completion. Closes a grammar by appending an epsilon rule for every
symbol that is referenced but not defined.
*/

package grammar

// Complete returns g followed by one epsilon rule per leaf of g, in sorted order.
// The input is not modified and the result never shares its backing array.
func Complete(g Grammar) Grammar {
	leaves := g.Leaves().Sorted()

	out := make(Grammar, 0, len(g)+len(leaves))
	out = append(out, g...)
	for _, leaf := range leaves {
		out = append(out, EpsilonRule(leaf))
	}
	return out
}

// Closed reports whether every referenced symbol is defined by some rule.
func (g Grammar) Closed() bool {
	return g.Leaves().Len() == 0
}
