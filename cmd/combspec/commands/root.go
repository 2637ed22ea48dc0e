/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: root.go
Description: Root command for the combspec CLI. Defines persistent flags, binds them to
viper and wires the grammar subcommands (print, leaves, complete, validate).
*/

package commands

import (
	"github.com/kleascm/combspec/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries per-invocation state shared by the subcommands
type app struct {
	v      *viper.Viper
	logger *logging.Logger
	runID  string
}

// NewRootCommand builds the combspec command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "combspec",
		Short: "combspec - inspect and complete combinatorial specifications",
		Long: `combspec reads combinatorial specifications (grammars of weighted constructors,
calls and sequences) and closes them by adding epsilon rules for every undefined
symbol, so they can be handed to an oracle or a sampler.`,
		Version:           "1.0.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Configuration file path")
	flags.String("log-level", "info", "Logging level (debug, info, warn, error)")
	flags.String("log-format", "custom", "Log format (text, json, custom)")
	flags.String("log-dir", "", "Directory for log files (empty disables file logging)")
	flags.Int("log-max-files", 10, "Maximum number of log files to keep")
	flags.Bool("log-colors", false, "Colour console log output")
	flags.String("input-format", "", "Grammar input format (json, yaml); default from file extension")
	flags.String("output-format", "text", "Grammar output format (text, json, yaml)")

	a.v.BindPFlag("config", flags.Lookup("config"))
	a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	a.v.BindPFlag("log_format", flags.Lookup("log-format"))
	a.v.BindPFlag("log_dir", flags.Lookup("log-dir"))
	a.v.BindPFlag("log_max_files", flags.Lookup("log-max-files"))
	a.v.BindPFlag("log_colors", flags.Lookup("log-colors"))
	a.v.BindPFlag("input_format", flags.Lookup("input-format"))
	a.v.BindPFlag("output_format", flags.Lookup("output-format"))

	rootCmd.AddCommand(&cobra.Command{
		Use:   "print <grammar-file>",
		Short: "Pretty-print a grammar as it is",
		Long: `Render a grammar in union/product notation, one rule per line, without
completing it. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: a.wrap(a.runPrint),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "leaves <grammar-file>",
		Short: "List symbols that are referenced but not defined",
		Args:  cobra.ExactArgs(1),
		RunE:  a.wrap(a.runLeaves),
	})

	completeCmd := &cobra.Command{
		Use:   "complete <grammar-file>",
		Short: "Close a grammar with epsilon rules for undefined symbols",
		Long: `Append one epsilon rule (name ::= Cons()) for every referenced but undefined
symbol, in sorted order, and write the closed grammar in the output format.`,
		Args: cobra.ExactArgs(1),
		RunE: a.wrap(a.runComplete),
	}
	completeCmd.Flags().Bool("check", false, "Exit with an error if the input grammar was not already closed")
	a.v.BindPFlag("check", completeCmd.Flags().Lookup("check"))
	rootCmd.AddCommand(completeCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "validate <grammar-file>",
		Short: "Check a grammar for duplicate rule names and empty symbols",
		Args:  cobra.ExactArgs(1),
		RunE:  a.wrap(a.runValidate),
	})

	return rootCmd
}
