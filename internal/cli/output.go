// Package cli — output.go renders circle results as text blocks or JSON.
//
// Every command produces an ordered list of labeled circle snapshots. In text
// mode each snapshot is printed as a five-line block, in the same layout the
// reference demo prints:
//
//	Circle 1: (x-3)^2 + (y-4)^2 = 5^2
//	Area: 78.53981633974483
//	Perimeter: 31.41592653589793
//	Radius: 5
//	Origin: (3, 4)
//
// Blocks are separated by a blank line. In JSON mode the same data is written
// as a single object with a "circles" array.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shinji-kodama/circleops/internal/model"
)

// circleResult is one labeled snapshot in command output.
// The embedded snapshot's fields are flattened into the JSON object.
type circleResult struct {
	Label string `json:"label"`

	// Step and Circle are only set by the run command.
	Step   int    `json:"step,omitempty"`
	Circle string `json:"circle,omitempty"`

	model.CircleSnapshot
}

// newResult captures c under the given label.
func newResult(label string, c *model.Circle) circleResult {
	return circleResult{Label: label, CircleSnapshot: c.Snapshot()}
}

// printResults writes results in text or JSON format, depending on the
// configured output format. name is included in JSON output when non-empty.
func printResults(w io.Writer, name string, results []circleResult) error {
	if IsJSONOutput() {
		return printResultsJSON(w, name, results)
	}
	printResultsText(w, results)
	return nil
}

// printResultsJSON writes {"scenario": name, "circles": [...]}.
func printResultsJSON(w io.Writer, name string, results []circleResult) error {
	type resultJSON struct {
		Scenario string         `json:"scenario,omitempty"`
		Circles  []circleResult `json:"circles"`
	}

	out := resultJSON{
		Scenario: name,
		// Use an empty slice instead of nil so JSON shows [] rather than null.
		Circles: make([]circleResult, 0, len(results)),
	}
	out.Circles = append(out.Circles, results...)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printResultsText writes one block per result, separated by blank lines.
func printResultsText(w io.Writer, results []circleResult) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s: %s\n", r.Label, r.Equation)
		fmt.Fprintf(w, "Area: %s\n", FormatDouble(r.Area))
		fmt.Fprintf(w, "Perimeter: %s\n", FormatDouble(r.Perimeter))
		fmt.Fprintf(w, "Radius: %d\n", r.Radius)
		fmt.Fprintf(w, "Origin: (%d, %d)\n", r.Origin[0], r.Origin[1])
	}
}

// FormatDouble renders f the way the reference driver prints doubles: the
// shortest decimal that round-trips, always with a fractional part, and
// switching to "d.dddEn" notation outside [1e-3, 1e7).
//
// Examples:
//
//	78.53981633974483 → "78.53981633974483"
//	0                 → "0.0"
//	3.1415926535e10   → "3.1415926535E10"
func FormatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// strconv gives "3.1415926535E+10"; the reference form is "3.1415926535E10".
	s := strconv.FormatFloat(f, 'E', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exponent = strings.TrimPrefix(exponent, "+")
	if strings.HasPrefix(exponent, "-") {
		exponent = "-" + strings.TrimLeft(exponent[1:], "0")
	} else {
		exponent = strings.TrimLeft(exponent, "0")
	}
	return mantissa + "E" + exponent
}
