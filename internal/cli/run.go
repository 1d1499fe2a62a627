// Package cli — run.go implements the "circleops run" command.
//
// The run command loads a scenario file (YAML, JSON or JSONC), validates it
// and executes its steps, printing one block per declared circle and one per
// step. With --emit the validated scenario is re-encoded instead of executed,
// which turns a commented JSONC file into plain YAML or JSON.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/circleops/internal/model"
	"github.com/shinji-kodama/circleops/internal/scenario"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	// emit is "yaml" or "json" when the scenario should be re-encoded
	// instead of executed.
	emit string
}

// NewRunCommand creates the "run" cobra command.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run <scenario-file>",
		Short: "Execute a scenario file",
		Long: `Load a scenario of named circles and steps (move, resize, combine,
double, show), validate it and execute the steps in order.

Examples:
  circleops run scenario.yaml
  circleops run scenario.jsonc --json
  circleops run scenario.jsonc --emit yaml`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.Context(), cmd.OutOrStdout(), args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.emit, "emit", "",
		"Print the validated scenario as yaml or json instead of running it")

	return cmd
}

// runScenario loads the scenario and either emits or executes it.
func runScenario(ctx context.Context, w io.Writer, path string, flags *runFlags) error {
	var emitFormat scenario.Format
	switch flags.emit {
	case "":
	case "yaml", "yml":
		emitFormat = scenario.FormatYAML
	case "json":
		emitFormat = scenario.FormatJSON
	default:
		return model.NewCLIError(model.ExitInvalidArgs,
			fmt.Sprintf("invalid --emit value %q: valid values are yaml, json", flags.emit))
	}

	s, err := scenario.Load(path, maxScenarioSteps())
	if err != nil {
		return err // Load already returns CLIError
	}
	VerboseLog("Loaded scenario %q: %d circles, %d steps", s.Name, len(s.Circles), len(s.Steps))

	if emitFormat != "" {
		data, err := scenario.Encode(s, emitFormat)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	reports, err := scenario.Run(ctx, s)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("scenario %s stopped after %d reports", path, len(reports)), err)
	}

	results := make([]circleResult, 0, len(reports))
	for _, r := range reports {
		VerboseLog("Step %d: %s", r.Step, r.Snapshot.Equation)
		results = append(results, circleResult{
			Label:          r.Label,
			Step:           r.Step,
			Circle:         r.Circle,
			CircleSnapshot: r.Snapshot,
		})
	}

	return printResults(w, s.Name, results)
}
