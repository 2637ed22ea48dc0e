/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validate.go
Description: Optional structural validation for grammars. Reports duplicate rule names
and empty symbols, which the data model does not prevent. Completion never calls it.
*/

package grammar

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a validation problem.
type ErrorKind string

const (
	KindDuplicateRule ErrorKind = "duplicate_rule"
	KindEmptySymbol   ErrorKind = "empty_symbol"
)

var (
	ErrDuplicateRule = errors.New("duplicate rule name")
	ErrEmptySymbol   = errors.New("empty symbol")
)

// ValidationError describes a single problem found in a grammar.
type ValidationError struct {
	Kind  ErrorKind
	Rule  int    // index of the offending rule
	Name  Symbol // rule name involved, if any
	Cause string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("rule %d (%q): %s", e.Rule, e.Name, e.Cause)
}

// Is lets errors.Is match a ValidationError against its kind's sentinel.
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case KindDuplicateRule:
		return target == ErrDuplicateRule
	case KindEmptySymbol:
		return target == ErrEmptySymbol
	}
	return false
}

// Validate checks g for duplicate rule names and empty symbols. All problems are
// reported in declaration order, joined into one error. A nil result means g is sound.
func Validate(g Grammar) error {
	var errs []error
	seen := make(map[Symbol]int, len(g))

	for i, r := range g {
		if r.Name == "" {
			errs = append(errs, &ValidationError{Kind: KindEmptySymbol, Rule: i, Cause: "rule has an empty name"})
		} else if first, ok := seen[r.Name]; ok {
			errs = append(errs, &ValidationError{
				Kind:  KindDuplicateRule,
				Rule:  i,
				Name:  r.Name,
				Cause: fmt.Sprintf("already defined by rule %d", first),
			})
		} else {
			seen[r.Name] = i
		}

		if r.Names().Contains("") {
			errs = append(errs, &ValidationError{Kind: KindEmptySymbol, Rule: i, Name: r.Name, Cause: "references an empty symbol"})
		}
	}

	return errors.Join(errs...)
}
