/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: print.go
Description: Deterministic text rendering of grammars using union/product notation,
e.g. "T ::= Cons(<z^1> * Elem(T) * Elem(T)) + Cons()". Downstream tooling depends on
this exact format.
*/

package grammar

import (
	"fmt"
	"io"
	"strings"
)

const (
	unionSep   = " + "
	productSep = " * "
	ruleSep    = "\n"
)

// String renders the rules in stored order, separated by newlines.
func (g Grammar) String() string {
	lines := make([]string, len(g))
	for i, r := range g {
		lines[i] = r.String()
	}
	return strings.Join(lines, ruleSep)
}

// String renders "name ::= alt1 + alt2 + ...". An empty union renders as 0.
func (r Rule) String() string {
	if len(r.Alternatives) == 0 {
		return fmt.Sprintf("%s ::= 0", r.Name)
	}

	alts := make([]string, len(r.Alternatives))
	for i, alt := range r.Alternatives {
		alts[i] = alt.String()
	}
	return fmt.Sprintf("%s ::= %s", r.Name, strings.Join(alts, unionSep))
}

func (c Call) String() string {
	return fmt.Sprintf("Call(%s)", c.Name)
}

// String renders the product, prefixed by the weight term when the weight is non-zero.
// Epsilon renders as "Cons()".
func (c Cons) String() string {
	if c.Weight == 0 {
		return fmt.Sprintf("Cons(%s)", joinFactors(c.Factors))
	}
	return fmt.Sprintf("Cons(<z^%d>%s%s)", c.Weight, productSep, product(c.Factors))
}

func (e Elem) String() string {
	return fmt.Sprintf("Elem(%s)", e.Name)
}

func (s Seq) String() string {
	return fmt.Sprintf("Seq(%s)", s.Name)
}

// product renders the factors as a product; the empty product is 1.
func product(factors []Factor) string {
	if len(factors) == 0 {
		return "1"
	}
	return joinFactors(factors)
}

func joinFactors(factors []Factor) string {
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = f.String()
	}
	return strings.Join(parts, productSep)
}

// Fprint writes the rendering of g to w.
func Fprint(w io.Writer, g Grammar) error {
	if _, err := io.WriteString(w, g.String()); err != nil {
		return fmt.Errorf("failed to write grammar: %w", err)
	}
	return nil
}
