/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar_test.go
Description: Tests for the grammar model, name analysis and completion, including
randomised checks of closure, idempotence and append-only behaviour.
*/

package grammar_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/kleascm/combspec/pkg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binaryTree() grammar.Grammar {
	return grammar.Grammar{
		{Name: "T", Alternatives: []grammar.Component{
			grammar.Cons{Weight: 1, Factors: []grammar.Factor{grammar.Elem{Name: "T"}, grammar.Elem{Name: "T"}}},
			grammar.Epsilon(),
		}},
	}
}

// TestEpsilonRule tests the shape of synthesized epsilon rules
func TestEpsilonRule(t *testing.T) {
	r := grammar.EpsilonRule("X")

	assert.Equal(t, grammar.Symbol("X"), r.Name)
	require.Len(t, r.Alternatives, 1)
	assert.Equal(t, grammar.Cons{}, r.Alternatives[0])
	assert.True(t, r.Alternatives[0].(grammar.Cons).IsEpsilon())
	assert.Zero(t, r.Names().Len(), "epsilon rules must not reference anything")
}

// TestComponentNames tests name extraction from calls and constructors
func TestComponentNames(t *testing.T) {
	assert.Equal(t, grammar.NewNameSet("B"), grammar.Call{Name: "B"}.Names())

	cons := grammar.Cons{Weight: 2, Factors: []grammar.Factor{
		grammar.Elem{Name: "A"}, grammar.Seq{Name: "A"}, grammar.Seq{Name: "C"},
	}}
	assert.Equal(t, grammar.NewNameSet("A", "C"), cons.Names())

	assert.Zero(t, grammar.Epsilon().Names().Len())
}

// TestRuleNames tests that a rule's own name only appears when it self-references
func TestRuleNames(t *testing.T) {
	r := grammar.Rule{Name: "R", Alternatives: []grammar.Component{grammar.Call{Name: "A"}, grammar.Cons{Factors: []grammar.Factor{grammar.Seq{Name: "B"}}}}}
	assert.Equal(t, []grammar.Symbol{"A", "B"}, r.Names().Sorted())

	self := binaryTree()[0]
	assert.Equal(t, []grammar.Symbol{"T"}, self.Names().Sorted())
}

// TestGrammarLeaves tests referenced, defined and undefined name sets
func TestGrammarLeaves(t *testing.T) {
	g := grammar.Grammar{
		{Name: "A", Alternatives: []grammar.Component{grammar.Call{Name: "B"}}},
		{Name: "Unused", Alternatives: []grammar.Component{grammar.Epsilon()}},
		{Name: "S", Alternatives: []grammar.Component{grammar.Cons{Weight: 1, Factors: []grammar.Factor{grammar.Seq{Name: "L"}, grammar.Elem{Name: "A"}}}}},
	}

	assert.Equal(t, []grammar.Symbol{"A", "B", "L"}, g.Names().Sorted())
	assert.Equal(t, []grammar.Symbol{"A", "S", "Unused"}, g.RuleNames().Sorted())
	assert.Equal(t, []grammar.Symbol{"B", "L"}, g.Leaves().Sorted())
	assert.False(t, g.Closed())
}

// TestNameSetOperations tests the set helpers used by name analysis
func TestNameSetOperations(t *testing.T) {
	a := grammar.NewNameSet("x", "y")
	b := grammar.NewNameSet("y", "z")

	assert.Equal(t, []grammar.Symbol{"x", "y", "z"}, a.Union(b).Sorted())
	assert.Equal(t, []grammar.Symbol{"x"}, a.Difference(b).Sorted())
	assert.True(t, a.Contains("x"))
	assert.False(t, a.Contains("z"))

	// Operations return new sets.
	assert.Equal(t, 2, a.Len())
	assert.Empty(t, grammar.NewNameSet().Sorted())
}

// TestCompleteScenarios tests completion against known grammars
func TestCompleteScenarios(t *testing.T) {
	t.Run("call to undefined rule", func(t *testing.T) {
		g := grammar.Grammar{{Name: "A", Alternatives: []grammar.Component{grammar.Call{Name: "B"}}}}
		assert.Equal(t, []grammar.Symbol{"B"}, g.Leaves().Sorted())

		c := grammar.Complete(g)
		assert.Equal(t, grammar.Grammar{g[0], grammar.EpsilonRule("B")}, c)
		assert.Equal(t, "A ::= Call(B)\nB ::= Cons()", c.String())
	})

	t.Run("closed binary tree", func(t *testing.T) {
		g := binaryTree()
		assert.Empty(t, g.Leaves())
		assert.Equal(t, g, grammar.Complete(g))
	})

	t.Run("empty grammar", func(t *testing.T) {
		c := grammar.Complete(grammar.Grammar{})
		assert.Empty(t, c)
		assert.Equal(t, "", c.String())

		assert.Empty(t, grammar.Complete(nil))
	})

	t.Run("sequence of undefined rule", func(t *testing.T) {
		g := grammar.Grammar{{Name: "S", Alternatives: []grammar.Component{grammar.Cons{Weight: 1, Factors: []grammar.Factor{grammar.Seq{Name: "L"}}}}}}
		c := grammar.Complete(g)
		require.Len(t, c, 2)
		assert.Equal(t, "L ::= Cons()", c[1].String())
	})

	t.Run("leaves appended in sorted order", func(t *testing.T) {
		g := grammar.Grammar{{Name: "R", Alternatives: []grammar.Component{
			grammar.Call{Name: "zeta"}, grammar.Call{Name: "Alpha"}, grammar.Cons{Factors: []grammar.Factor{grammar.Elem{Name: "mid"}}},
		}}}
		c := grammar.Complete(g)
		require.Len(t, c, 4)
		assert.Equal(t, grammar.Symbol("Alpha"), c[1].Name)
		assert.Equal(t, grammar.Symbol("mid"), c[2].Name)
		assert.Equal(t, grammar.Symbol("zeta"), c[3].Name)
	})
}

// TestCompleteDoesNotMutate tests that completion leaves its input untouched
func TestCompleteDoesNotMutate(t *testing.T) {
	g := make(grammar.Grammar, 1, 8) // spare capacity would be shared by a naive append
	g[0] = grammar.Rule{Name: "A", Alternatives: []grammar.Component{grammar.Call{Name: "B"}}}

	c := grammar.Complete(g)
	require.Len(t, c, 2)
	assert.Len(t, g, 1)

	c[0].Name = "changed"
	assert.Equal(t, grammar.Symbol("A"), g[0].Name)
	assert.Equal(t, grammar.Rule{}, g[:cap(g)][1], "spare capacity of the input must stay untouched")
}

// randomGrammar builds a grammar over a small alphabet so that undefined references,
// self references and unused rules all occur.
func randomGrammar(rng *rand.Rand) grammar.Grammar {
	symbols := []grammar.Symbol{"A", "B", "C", "D", "E", "F", "G", "H"}
	pick := func() grammar.Symbol { return symbols[rng.Intn(len(symbols))] }

	var g grammar.Grammar
	for i := rng.Intn(5); i > 0; i-- {
		r := grammar.Rule{Name: pick()}
		for j := rng.Intn(4); j > 0; j-- {
			if rng.Intn(3) == 0 {
				r.Alternatives = append(r.Alternatives, grammar.Call{Name: pick()})
				continue
			}
			cons := grammar.Cons{Weight: uint(rng.Intn(3))}
			for k := rng.Intn(4); k > 0; k-- {
				if rng.Intn(2) == 0 {
					cons.Factors = append(cons.Factors, grammar.Elem{Name: pick()})
				} else {
					cons.Factors = append(cons.Factors, grammar.Seq{Name: pick()})
				}
			}
			r.Alternatives = append(r.Alternatives, cons)
		}
		g = append(g, r)
	}
	return g
}

// TestCompleteProperties tests closure, idempotence and append-only on random grammars
func TestCompleteProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		g := randomGrammar(rng)
		name := fmt.Sprintf("grammar %d", i)
		leaves := g.Leaves()

		c := grammar.Complete(g)

		assert.True(t, c.Closed(), name)
		assert.Empty(t, c.Leaves(), name)

		require.Len(t, c, len(g)+leaves.Len(), name)
		for j := range g {
			assert.Equal(t, g[j], c[j], name)
		}
		for _, r := range c[len(g):] {
			assert.True(t, leaves.Contains(r.Name), name)
			assert.Equal(t, grammar.EpsilonRule(r.Name), r, name)
		}
		assert.Equal(t, leaves, c[len(g):].RuleNames(), "no leaf skipped or duplicated: %s", name)

		again := grammar.Complete(c)
		assert.Equal(t, c, again, name)
		assert.Equal(t, c.String(), again.String(), name)
	}
}
