package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCircle_Snapshot verifies that a snapshot captures every derived value
// and is not affected by later mutations of the circle.
func TestCircle_Snapshot(t *testing.T) {
	c := NewAt(3, 4, 5)
	snap := c.Snapshot()

	assert.Equal(t, "(x-3)^2 + (y-4)^2 = 5^2", snap.Equation)
	assert.InDelta(t, 78.5398, snap.Area, 1e-4)
	assert.InDelta(t, 31.4159, snap.Perimeter, 1e-4)
	assert.Equal(t, 5, snap.Radius)
	assert.Equal(t, [2]int{3, 4}, snap.Origin)

	c.Move(-7, 9)
	c.Resize(20)
	assert.Equal(t, [2]int{3, 4}, snap.Origin, "snapshot must not track the circle")
	assert.Equal(t, 5, snap.Radius)
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitInvalidArgs, "radius must be an integer")
		assert.Equal(t, ExitInvalidArgs, err.Code)
		assert.Equal(t, "radius must be an integer", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("file does not exist")
		err := WrapCLIError(ExitScenarioNotFound, "scenario not found", inner)
		assert.Equal(t, ExitScenarioNotFound, err.Code)
		assert.Contains(t, err.Error(), "file does not exist")
		assert.Equal(t, inner, err.Unwrap())
	})

	// Verify errors.Is/As work through the wrapper.
	t.Run("errors chain", func(t *testing.T) {
		inner := errors.New("bad yaml")
		var err error = WrapCLIError(ExitScenarioInvalid, "invalid scenario", inner)
		assert.True(t, errors.Is(err, inner))

		var cliErr *CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, ExitScenarioInvalid, cliErr.Code)
	})
}

// TestExitCodes pins the numeric exit codes, which are part of the CLI contract.
func TestExitCodes(t *testing.T) {
	assert.Equal(t, ExitCode(0), ExitSuccess)
	assert.Equal(t, ExitCode(1), ExitGeneralError)
	assert.Equal(t, ExitCode(2), ExitInvalidArgs)
	assert.Equal(t, ExitCode(3), ExitScenarioNotFound)
	assert.Equal(t, ExitCode(4), ExitScenarioInvalid)
	assert.Equal(t, ExitCode(5), ExitConfigInvalid)
}
