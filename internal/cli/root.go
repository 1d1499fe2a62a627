// Package cli implements the cobra-based CLI commands for circleops.
//
// Each subcommand (demo, describe, combine, double, run) is defined in its own
// file within this package. This file defines the root command that serves as
// the parent for all subcommands and handles global flags, configuration and
// logging.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/circleops/internal/config"
	"github.com/shinji-kodama/circleops/internal/logging"
	"github.com/shinji-kodama/circleops/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput forces JSON output regardless of the configured format.
	jsonOutput bool

	// verbose forces debug-level logging to stderr.
	verbose bool

	// configPath is an optional YAML configuration file.
	configPath string
)

// Resolved per-invocation state, set in the root command's PersistentPreRunE.
var (
	// settings is the effective configuration after flags are applied.
	settings *config.Config

	// logger writes diagnostics to stderr.
	logger *log.Logger
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself does not perform any action; it only provides
// help text and global flags. Actual functionality is provided by
// subcommands.
func NewRootCommand() *cobra.Command {
	settings = nil
	logger = nil

	rootCmd := &cobra.Command{
		Use:   "circleops",
		Short: "Measure, move, resize and combine integer circles",
		Long: `circleops works with circles that have an integer origin and an integer
radius. Coordinates are clamped to [-100, 100] and radii to [1, 100]
(zero is kept); out-of-range input is never rejected.

Run "circleops demo" for the reference walkthrough, or describe a scenario
in YAML/JSON and execute it with "circleops run".`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initSettings(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")

	rootCmd.AddCommand(NewDemoCommand())
	rootCmd.AddCommand(NewDescribeCommand())
	rootCmd.AddCommand(NewCombineCommand())
	rootCmd.AddCommand(NewDoubleCommand())
	rootCmd.AddCommand(NewRunCommand())

	return rootCmd
}

// initSettings loads configuration, applies the global flags on top of it
// and builds the logger. Flags take precedence over env vars and the file.
func initSettings(stderr io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigInvalid, "failed to load configuration", err)
	}

	if jsonOutput {
		cfg.Output.Format = "json"
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return model.WrapCLIError(model.ExitConfigInvalid, "invalid configuration", err)
	}

	settings = cfg
	logger = logging.NewWithWriter(logging.Config{
		Level:  cfg.Log.Level,
		Prefix: "circleops",
	}, stderr)

	VerboseLog("Configuration loaded (output=%s, log=%s)", cfg.Output.Format, cfg.Log.Level)
	return nil
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(os.Stderr, cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(os.Stderr, err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the output format.
func printError(w io.Writer, message string, underlying error) {
	if IsJSONOutput() {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog emits a debug-level message. It is shown only when --verbose is
// set or the configured log level is debug.
func VerboseLog(format string, args ...interface{}) {
	if logger == nil {
		return
	}
	logger.Debugf(format, args...)
}

// IsJSONOutput returns whether results should be written as JSON.
func IsJSONOutput() bool {
	if settings != nil {
		return settings.IsJSON()
	}
	return jsonOutput
}

// maxScenarioSteps returns the configured step limit for scenario files.
func maxScenarioSteps() int {
	if settings != nil {
		return settings.Scenario.MaxSteps
	}
	return config.DefaultScenarioMaxSteps
}
