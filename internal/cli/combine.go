// Package cli — combine.go implements the "combine" and "double" commands.
//
// Both commands build fully specified circles from positional arguments, so
// every input is clamped. Negative values must follow "--" so that cobra does
// not read them as flags:
//
//	circleops combine -- -3 -5 10 0 0 2
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/circleops/internal/model"
)

// NewCombineCommand creates the "combine" cobra command.
func NewCombineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "combine <x1> <y1> <r1> <x2> <y2> <r2>",
		Short: "Combine two circles",
		Long: `Combine the first circle with the second: the radii are added (the sum is
not clamped) and the origin moves to the midpoint of both origins,
truncated toward zero.

Examples:
  circleops combine 3 4 5 0 0 2
  circleops combine --json -- -3 -5 10 0 0 2`,

		Args: cobra.ExactArgs(6),

		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts([]string{"x1", "y1", "r1", "x2", "y2", "r2"}, args)
			if err != nil {
				return err
			}
			return runCombine(cmd.OutOrStdout(), values)
		},
	}
}

// runCombine combines circle 1 with circle 2 and prints all three states.
func runCombine(w io.Writer, v []int) error {
	c1 := model.NewAt(v[0], v[1], v[2])
	c2 := model.NewAt(v[3], v[4], v[5])

	results := []circleResult{
		newResult("Circle 1", c1),
		newResult("Circle 2", c2),
	}

	VerboseLog("Combining %s with %s", c1, c2)
	c1.Combine(c2)
	results = append(results, newResult("Combined Circle 1 and Circle 2", c1))

	return printResults(w, "", results)
}

// NewDoubleCommand creates the "double" cobra command.
func NewDoubleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "double <x> <y> <r>",
		Short: "Double a circle",
		Long: `Double a circle by combining it with itself: the radius doubles (without
clamping) and the origin is unchanged.

Examples:
  circleops double 3 4 60`,

		Args: cobra.ExactArgs(3),

		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts([]string{"x", "y", "r"}, args)
			if err != nil {
				return err
			}
			return runDouble(cmd.OutOrStdout(), values)
		},
	}
}

// runDouble doubles the circle and prints it before and after.
func runDouble(w io.Writer, v []int) error {
	c := model.NewAt(v[0], v[1], v[2])
	results := []circleResult{newResult("Circle", c)}

	VerboseLog("Doubling %s", c)
	c.Double()
	results = append(results, newResult("Doubled Circle", c))

	return printResults(w, "", results)
}
