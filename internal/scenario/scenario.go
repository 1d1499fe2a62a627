package scenario

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shinji-kodama/circleops/internal/model"
)

// Op names a scenario step operation.
type Op string

const (
	// OpMove moves the target to (x, y).
	OpMove Op = "move"

	// OpResize sets the target's radius.
	OpResize Op = "resize"

	// OpCombine combines the target with the circle named by With.
	OpCombine Op = "combine"

	// OpDouble doubles the target.
	OpDouble Op = "double"

	// OpShow reports the target without changing it.
	OpShow Op = "show"
)

// String returns the string representation of Op.
func (o Op) String() string {
	return string(o)
}

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	// Name is an optional display name.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Circles declares the circles available to steps, in build order.
	Circles []CircleSpec `yaml:"circles" json:"circles" validate:"required,min=1,dive"`

	// Steps are applied in order after every circle has been built.
	Steps []Step `yaml:"steps,omitempty" json:"steps,omitempty" validate:"dive"`
}

// CircleSpec declares a named circle. Nil fields were not set in the file;
// which fields are set decides the constructor (see package docs).
type CircleSpec struct {
	Name   string `yaml:"name"             json:"name"             validate:"required,circlename"`
	X      *int   `yaml:"x,omitempty"      json:"x,omitempty"`
	Y      *int   `yaml:"y,omitempty"      json:"y,omitempty"`
	Radius *int   `yaml:"radius,omitempty" json:"radius,omitempty"`
}

// Step is a single operation applied to a named circle.
type Step struct {
	Op     Op     `yaml:"op"               json:"op"               validate:"required,oneof=move resize combine double show"`
	Target string `yaml:"target"           json:"target"           validate:"required"`
	With   string `yaml:"with,omitempty"   json:"with,omitempty"   validate:"required_if=Op combine"`
	X      *int   `yaml:"x,omitempty"      json:"x,omitempty"      validate:"required_if=Op move"`
	Y      *int   `yaml:"y,omitempty"      json:"y,omitempty"      validate:"required_if=Op move"`
	Radius *int   `yaml:"radius,omitempty" json:"radius,omitempty" validate:"required_if=Op resize"`

	// Label overrides the report label for this step.
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// Build constructs the circle described by the spec.
func (s CircleSpec) Build() *model.Circle {
	switch {
	case s.X != nil || s.Y != nil:
		radius := 1
		if s.Radius != nil {
			radius = *s.Radius
		}
		return model.NewAt(deref(s.X), deref(s.Y), radius)
	case s.Radius != nil:
		return model.NewWithRadius(*s.Radius)
	default:
		return model.New()
	}
}

// deref returns *p, or 0 when p is nil.
func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// circleNameRegex matches circle names: alphanumeric + hyphens, starting and
// ending with an alphanumeric character.
var circleNameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

// validate is the package-level validator instance.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("circlename", func(fl validator.FieldLevel) bool {
		return circleNameRegex.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks the scenario's structure and cross references. maxSteps
// limits the number of steps; a value <= 0 disables the limit.
//
// All problems are collected and returned as a single error.
func (s *Scenario) Validate(maxSteps int) error {
	var problems []string

	if err := validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		for _, e := range validationErrs {
			problems = append(problems, formatFieldError(e))
		}
	}

	if maxSteps > 0 && len(s.Steps) > maxSteps {
		problems = append(problems, fmt.Sprintf("scenario has %d steps, limit is %d", len(s.Steps), maxSteps))
	}

	declared := make(map[string]bool, len(s.Circles))
	for i, c := range s.Circles {
		if c.Name == "" {
			continue
		}
		if declared[c.Name] {
			problems = append(problems, fmt.Sprintf("circles[%d]: duplicate circle name %q", i, c.Name))
		}
		declared[c.Name] = true
	}

	for i, st := range s.Steps {
		if st.Target != "" && !declared[st.Target] {
			problems = append(problems, fmt.Sprintf("steps[%d]: unknown target circle %q", i, st.Target))
		}
		if st.Op == OpCombine && st.With != "" && !declared[st.With] {
			problems = append(problems, fmt.Sprintf("steps[%d]: unknown circle %q to combine with", i, st.With))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("scenario validation failed:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Scenario.")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, e.Param(), e.Value())
	case "circlename":
		return fmt.Sprintf("%s %q must contain only alphanumeric characters and hyphens", field, e.Value())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// invalid wraps err as a CLIError with ExitScenarioInvalid.
func invalid(path string, err error) error {
	return model.WrapCLIError(model.ExitScenarioInvalid,
		fmt.Sprintf("invalid scenario %s", path), err)
}
