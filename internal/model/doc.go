// Package model defines the circle entity and the value types shared across
// the circleops CLI.
//
// Circle is a mutable value with an integer origin and an integer radius.
// Every operation on it is total: out-of-range input is silently clamped by
// ValidateCoordinate and ValidateRadius instead of being rejected, so no
// method returns an error. Two operations deliberately bypass the radius
// clamp and are kept that way: NewWithRadius stores its argument as given,
// and Combine sums radii without re-validating the result.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) used by the outer layers to report failures with a specific
// process exit status.
package model
