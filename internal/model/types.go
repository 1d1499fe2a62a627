package model

import (
	"fmt"
)

// CircleSnapshot is a read-only copy of a Circle's state together with its
// derived measurements. It is what the CLI and the scenario runner hand to
// output formatters, so that later mutations of the Circle do not leak into
// already-reported results.
type CircleSnapshot struct {
	// Equation is the standard-form equation returned by Circle.String.
	Equation string `json:"equation"`

	// Area is π·r² at the time of the snapshot.
	Area float64 `json:"area"`

	// Perimeter is the circumference at the time of the snapshot.
	Perimeter float64 `json:"perimeter"`

	// Radius is the radius at the time of the snapshot.
	Radius int `json:"radius"`

	// Origin is the {x, y} center at the time of the snapshot.
	Origin [2]int `json:"origin"`
}

// Snapshot captures the current state of c.
func (c *Circle) Snapshot() CircleSnapshot {
	return CircleSnapshot{
		Equation:  c.String(),
		Area:      c.Area(),
		Perimeter: c.Perimeter(),
		Radius:    c.Radius(),
		Origin:    c.Origin(),
	}
}

// ExitCode defines the process exit codes of the CLI.
// Scripts can rely on these values to tell failure classes apart.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidArgs indicates a positional argument or flag could not be
	// parsed as an integer or was otherwise malformed.
	ExitInvalidArgs ExitCode = 2

	// ExitScenarioNotFound indicates the scenario file does not exist.
	ExitScenarioNotFound ExitCode = 3

	// ExitScenarioInvalid indicates the scenario file could not be parsed
	// or failed validation.
	ExitScenarioInvalid ExitCode = 4

	// ExitConfigInvalid indicates the CLI configuration could not be loaded
	// or failed validation.
	ExitConfigInvalid ExitCode = 5
)

// CLIError is an error that carries an exit code.
// The CLI layer translates it into the process exit status.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error returns the message, followed by the underlying error if present.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
