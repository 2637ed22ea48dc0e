/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: Grammar command implementations for combspec: printing, listing undefined
symbols, completion and validation.
*/

package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/kleascm/combspec/pkg/grammar"
	"github.com/spf13/cobra"
)

// ErrNotClosed is returned by complete --check when the input had undefined symbols.
var ErrNotClosed = errors.New("grammar is not closed")

// ErrInvalidGrammar is returned by validate when problems were found.
var ErrInvalidGrammar = errors.New("grammar is invalid")

func (a *app) runPrint(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrammar(cmd, args[0])
	if err != nil {
		return err
	}
	return a.writeGrammar(cmd, g)
}

func (a *app) runLeaves(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrammar(cmd, args[0])
	if err != nil {
		return err
	}

	leaves := g.Leaves().Sorted()
	a.logger.LogLeaves(a.runID, symbolStrings(leaves))

	out := cmd.OutOrStdout()
	for _, leaf := range leaves {
		if _, err := fmt.Fprintln(out, leaf); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) runComplete(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrammar(cmd, args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	completed := grammar.Complete(g)
	a.logger.LogCompletion(a.runID, len(g), len(completed), time.Since(start))

	if a.v.GetBool("check") && len(completed) != len(g) {
		leaves := symbolStrings(g.Leaves().Sorted())
		a.logger.LogLeaves(a.runID, leaves)
		return fmt.Errorf("%w: %d undefined symbols %v", ErrNotClosed, len(leaves), leaves)
	}

	return a.writeGrammar(cmd, completed)
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrammar(cmd, args[0])
	if err != nil {
		return err
	}

	var problems []error
	if err := grammar.Validate(g); err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			problems = joined.Unwrap()
		} else {
			problems = []error{err}
		}
	}
	a.logger.LogValidation(a.runID, problems)

	out := cmd.OutOrStdout()
	for _, p := range problems {
		fmt.Fprintln(out, p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %d problems", ErrInvalidGrammar, len(problems))
	}

	fmt.Fprintln(out, "ok")
	return nil
}
