// Package cli — demo.go implements the "circleops demo" command.
//
// The demo builds three circles, one per construction mode, prints them,
// then combines the first with the second and doubles the second:
//
//	Circle 1 = NewAt(3, 4, 5)
//	Circle 2 = NewWithRadius(2)
//	Circle 3 = New()
//
// The demo has no error paths and always exits 0.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/circleops/internal/model"
)

// NewDemoCommand creates the "demo" cobra command.
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the reference circle walkthrough",
		Long: `Build three circles (fully specified, radius-only, default), print their
measurements, then print the result of combining circle 1 with circle 2
and of doubling circle 2.

Examples:
  circleops demo
  circleops demo --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

// runDemo executes the walkthrough and prints every intermediate state.
func runDemo(w io.Writer) error {
	c1 := model.NewAt(3, 4, 5)
	c2 := model.NewWithRadius(2)
	c3 := model.New()

	results := []circleResult{
		newResult("Circle 1", c1),
		newResult("Circle 2", c2),
		newResult("Circle 3", c3),
	}

	VerboseLog("Combining circle 1 %s with circle 2 %s", c1, c2)
	c1.Combine(c2)
	results = append(results, newResult("Combined Circle 1 and Circle 2", c1))

	VerboseLog("Doubling circle 2 %s", c2)
	c2.Double()
	results = append(results, newResult("Doubled Circle 2", c2))

	return printResults(w, "", results)
}
