// Package cli — describe.go implements the "circleops describe" command.
//
// The construction mode follows from which flags were given:
//   - no --x/--y/--radius → default circle (origin, radius 1)
//   - only --radius       → radius-only circle; the radius is NOT clamped
//   - --x or --y          → fully specified circle; every value is clamped
//
// Optional --move and --resize apply the mutators before printing.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/circleops/internal/model"
)

// describeFlags holds the flag values for the describe command.
type describeFlags struct {
	x, y, radius int

	// hasX, hasY and hasRadius record whether the flag was set explicitly,
	// which selects the constructor.
	hasX, hasY, hasRadius bool

	// move is "X,Y" when set.
	move string

	resize    int
	hasResize bool
}

// NewDescribeCommand creates the "describe" cobra command.
func NewDescribeCommand() *cobra.Command {
	flags := &describeFlags{}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Build a circle and print its measurements",
		Long: `Build a single circle and print its equation, area, perimeter, radius
and origin.

Examples:
  circleops describe
  circleops describe --radius -5
  circleops describe --x 3 --y 4 --radius 5
  circleops describe --x 3 --y 4 --radius 5 --move=-7,120 --resize 300`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			flags.hasX = cmd.Flags().Changed("x")
			flags.hasY = cmd.Flags().Changed("y")
			flags.hasRadius = cmd.Flags().Changed("radius")
			flags.hasResize = cmd.Flags().Changed("resize")
			return runDescribe(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().IntVar(&flags.x, "x", 0, "Origin x coordinate (clamped to [-100, 100])")
	cmd.Flags().IntVar(&flags.y, "y", 0, "Origin y coordinate (clamped to [-100, 100])")
	cmd.Flags().IntVar(&flags.radius, "radius", 1, "Radius")
	cmd.Flags().StringVar(&flags.move, "move", "", "Move the circle to X,Y before printing")
	cmd.Flags().IntVar(&flags.resize, "resize", 0, "Resize the circle before printing")

	return cmd
}

// runDescribe builds the circle, applies mutators and prints it.
func runDescribe(w io.Writer, flags *describeFlags) error {
	c := buildCircle(flags)
	VerboseLog("Built circle %s", c)

	if flags.move != "" {
		x, y, err := parsePoint(flags.move)
		if err != nil {
			return err
		}
		c.Move(x, y)
		VerboseLog("Moved circle to %s", c)
	}

	if flags.hasResize {
		c.Resize(flags.resize)
		VerboseLog("Resized circle to %s", c)
	}

	return printResults(w, "", []circleResult{newResult("Circle", c)})
}

// buildCircle picks the constructor implied by the explicitly set flags.
func buildCircle(flags *describeFlags) *model.Circle {
	switch {
	case flags.hasX || flags.hasY:
		return model.NewAt(flags.x, flags.y, flags.radius)
	case flags.hasRadius:
		return model.NewWithRadius(flags.radius)
	default:
		return model.New()
	}
}

// parsePoint parses "X,Y" into two integers.
func parsePoint(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, model.NewCLIError(model.ExitInvalidArgs,
			fmt.Sprintf("invalid point %q: expected X,Y", s))
	}
	x, err := parseInt("x", xs)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseInt("y", ys)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// parseInt parses a single integer argument, naming it in the error.
func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, model.WrapCLIError(model.ExitInvalidArgs,
			fmt.Sprintf("%s must be an integer, got %q", name, s), err)
	}
	return v, nil
}

// parseInts parses positional arguments in order, using names for errors.
func parseInts(names []string, args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := parseInt(names[i], arg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
