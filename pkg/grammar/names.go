/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: names.go
Description: Name analysis over grammars. Computes the symbols referenced by components,
rules and whole grammars, the symbols defined as rules, and the undefined leaves between
them.
*/

package grammar

import "sort"

// NameSet is an unordered set of symbols.
type NameSet map[Symbol]struct{}

// NewNameSet creates a set holding the given names.
func NewNameSet(names ...Symbol) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts a name into the set.
func (s NameSet) Add(name Symbol) {
	s[name] = struct{}{}
}

// Contains reports whether name is in the set.
func (s NameSet) Contains(name Symbol) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s NameSet) Len() int {
	return len(s)
}

// Union returns a new set with the names of s and other.
func (s NameSet) Union(other NameSet) NameSet {
	out := make(NameSet, len(s)+len(other))
	for n := range s {
		out[n] = struct{}{}
	}
	for n := range other {
		out[n] = struct{}{}
	}
	return out
}

// Difference returns a new set with the names of s that are not in other.
func (s NameSet) Difference(other NameSet) NameSet {
	out := make(NameSet)
	for n := range s {
		if !other.Contains(n) {
			out[n] = struct{}{}
		}
	}
	return out
}

// Sorted returns the names in ascending byte order.
func (s NameSet) Sorted() []Symbol {
	names := make([]Symbol, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Names returns the singleton set of the called rule.
func (c Call) Names() NameSet {
	return NewNameSet(c.Name)
}

// Names returns the symbols of every factor; Elem and Seq both contribute their name.
func (c Cons) Names() NameSet {
	s := make(NameSet, len(c.Factors))
	for _, f := range c.Factors {
		s.Add(f.Symbol())
	}
	return s
}

// Names returns every symbol referenced by the rule's alternatives. The rule's own
// name is only included when the rule refers to itself.
func (r Rule) Names() NameSet {
	s := make(NameSet)
	for _, alt := range r.Alternatives {
		for n := range alt.Names() {
			s.Add(n)
		}
	}
	return s
}

// Names returns every symbol referenced anywhere in the grammar.
func (g Grammar) Names() NameSet {
	s := make(NameSet)
	for _, r := range g {
		for n := range r.Names() {
			s.Add(n)
		}
	}
	return s
}

// RuleNames returns the set of symbols defined as rules.
func (g Grammar) RuleNames() NameSet {
	s := make(NameSet, len(g))
	for _, r := range g {
		s.Add(r.Name)
	}
	return s
}

// Leaves returns the symbols that are referenced but never defined.
// A rule that is defined but unused is not a leaf.
func (g Grammar) Leaves() NameSet {
	return g.Names().Difference(g.RuleNames())
}
