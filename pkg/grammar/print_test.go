/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: print_test.go
Description: Tests for the textual rendering of grammars.
*/

package grammar_test

import (
	"bytes"
	"testing"

	"github.com/kleascm/combspec/pkg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComponentRendering tests every component and factor form
func TestComponentRendering(t *testing.T) {
	tests := []struct {
		name string
		c    grammar.Component
		want string
	}{
		{"call", grammar.Call{Name: "Other"}, "Call(Other)"},
		{"epsilon", grammar.Epsilon(), "Cons()"},
		{"weighted product", grammar.Cons{Weight: 1, Factors: []grammar.Factor{grammar.Elem{Name: "A"}, grammar.Seq{Name: "B"}}}, "Cons(<z^1> * Elem(A) * Seq(B))"},
		{"unweighted product", grammar.Cons{Factors: []grammar.Factor{grammar.Elem{Name: "A"}, grammar.Elem{Name: "B"}}}, "Cons(Elem(A) * Elem(B))"},
		{"weight only", grammar.Cons{Weight: 3}, "Cons(<z^3> * 1)"},
		{"single sequence", grammar.Cons{Factors: []grammar.Factor{grammar.Seq{Name: "L"}}}, "Cons(Seq(L))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.String())
		})
	}
}

// TestRuleRendering tests union notation and the empty union
func TestRuleRendering(t *testing.T) {
	r := grammar.Rule{Name: "Name", Alternatives: []grammar.Component{
		grammar.Call{Name: "Other"},
		grammar.Cons{Weight: 1, Factors: []grammar.Factor{grammar.Elem{Name: "A"}, grammar.Seq{Name: "B"}}},
	}}
	assert.Equal(t, "Name ::= Call(Other) + Cons(<z^1> * Elem(A) * Seq(B))", r.String())

	assert.Equal(t, "Void ::= 0", grammar.Rule{Name: "Void"}.String())
}

// TestGrammarRendering tests rule separation and determinism
func TestGrammarRendering(t *testing.T) {
	assert.Equal(t, "T ::= Cons(<z^1> * Elem(T) * Elem(T)) + Cons()", binaryTree().String())
	assert.Equal(t, "", grammar.Grammar{}.String())

	g := grammar.Complete(grammar.Grammar{
		{Name: "A", Alternatives: []grammar.Component{grammar.Call{Name: "B"}}},
	})
	first := g.String()
	assert.Equal(t, first, g.String())
	assert.Equal(t, "A ::= Call(B)\nB ::= Cons()", first)

	var buf bytes.Buffer
	require.NoError(t, grammar.Fprint(&buf, g))
	assert.Equal(t, first, buf.String())
}
