/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: Core data model for combinatorial specifications. A Grammar is an ordered
list of named rules; each rule is a union of components, and each component is either a
call to another rule or a weighted product of factors.
*/

package grammar

// Symbol names a rule. It is used both to define rules and to reference them.
type Symbol string

// Grammar is an ordered sequence of rules. Order is insertion order.
// Rule names are expected to be unique but nothing here enforces it; see Validate.
type Grammar []Rule

// Rule is a non-terminal together with its ordered union of alternatives.
type Rule struct {
	Name         Symbol
	Alternatives []Component
}

// Component is one alternative of a rule: either a Call or a Cons.
type Component interface {
	// Names returns every symbol this component references.
	Names() NameSet
	String() string
	isComponent()
}

// Call contributes the entire expansion of another rule, adding no weight.
type Call struct {
	Name Symbol
}

// Cons is a weighted product of factors. Weight is the size of the constructor
// itself, independent of the size of its factors.
type Cons struct {
	Weight  uint
	Factors []Factor
}

func (Call) isComponent() {}
func (Cons) isComponent() {}

// Factor is one term of a Cons product: either an Elem or a Seq.
type Factor interface {
	// Symbol returns the rule the factor refers to.
	Symbol() Symbol
	String() string
	isFactor()
}

// Elem is a single occurrence of the named rule.
type Elem struct {
	Name Symbol
}

// Seq is zero or more occurrences of the named rule.
type Seq struct {
	Name Symbol
}

func (e Elem) Symbol() Symbol { return e.Name }
func (s Seq) Symbol() Symbol  { return s.Name }

func (Elem) isFactor() {}
func (Seq) isFactor()  {}

// Epsilon returns the empty, zero-cost constructor.
func Epsilon() Cons {
	return Cons{}
}

// IsEpsilon reports whether c is the epsilon constructor.
func (c Cons) IsEpsilon() bool {
	return c.Weight == 0 && len(c.Factors) == 0
}

// EpsilonRule returns a rule whose only alternative is epsilon.
func EpsilonRule(name Symbol) Rule {
	return Rule{Name: name, Alternatives: []Component{Epsilon()}}
}
