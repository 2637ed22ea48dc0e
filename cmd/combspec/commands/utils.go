/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the combspec commands. Provides configuration loading,
logging setup, and grammar input/output used across all command implementations.
*/

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/kleascm/combspec/pkg/grammar"
	"github.com/kleascm/combspec/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from an optional file and the environment
func LoadConfig(v *viper.Viper) error {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("COMBSPEC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return nil
}

// SetupLogging builds the logger described by the configuration
func SetupLogging(v *viper.Viper, w io.Writer) (*logging.Logger, error) {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(strings.ToLower(v.GetString("log_level"))),
		Format:    logging.LogFormat(strings.ToLower(v.GetString("log_format"))),
		OutputDir: v.GetString("log_dir"),
		MaxFiles:  v.GetInt("log_max_files"),
		Timestamp: true,
		Colors:    v.GetBool("log_colors"),
	}

	logger, err := logging.NewLoggerWithOutput(config, w)
	if err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}
	return logger, nil
}

// setup runs before every subcommand
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(a.v); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging(a.v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.logger = logger
	a.runID = uuid.New().String()
	a.logger.Debug("Command started", map[string]interface{}{
		"run_id":  a.runID,
		"command": cmd.Name(),
	})
	return nil
}

// wrap makes sure the logger is closed however the command ends
func (a *app) wrap(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if a.logger != nil {
			if cerr := a.logger.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		return err
	}
}

// inputFormat resolves the decoding format for path
func (a *app) inputFormat(path string) (grammar.Format, error) {
	if name := a.v.GetString("input_format"); name != "" {
		return grammar.ParseFormat(name)
	}
	return grammar.FormatFromPath(path), nil
}

// loadGrammar reads a grammar from path, or from the command's stdin when path is "-"
func (a *app) loadGrammar(cmd *cobra.Command, path string) (grammar.Grammar, error) {
	format, err := a.inputFormat(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open grammar: %w", err)
		}
		defer f.Close()
		r = f
	}

	g, err := grammar.Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	a.logger.LogLoad(a.runID, path, len(g))
	return g, nil
}

// writeGrammar writes g to the command's stdout in the configured output format
func (a *app) writeGrammar(cmd *cobra.Command, g grammar.Grammar) error {
	format, err := grammar.ParseFormat(a.v.GetString("output_format"))
	if err != nil {
		return err
	}
	return grammar.Encode(cmd.OutOrStdout(), g, format)
}

func symbolStrings(names []grammar.Symbol) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
