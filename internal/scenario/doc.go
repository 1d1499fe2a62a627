// Package scenario loads, validates and executes circle scenario files.
//
// A scenario declares a set of named circles and an ordered list of steps
// (move, resize, combine, double, show) applied to them. Files may be
// written in YAML or in JSON; JSON files may contain comments and trailing
// commas (JSONC), which are stripped with github.com/tidwall/jsonc before
// decoding.
//
// Each declared circle is built with the constructor implied by the fields
// it sets:
//
//	{}                        → model.New
//	{radius: R}               → model.NewWithRadius (radius NOT clamped)
//	{x: X, y: Y, radius: R}   → model.NewAt (all three clamped)
//
// Setting either coordinate selects model.NewAt; missing coordinates default
// to 0 and a missing radius to 1.
//
// Running a scenario produces one Report per declared circle followed by
// one Report per step, each holding a snapshot of the affected circle.
package scenario
