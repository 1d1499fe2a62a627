package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/circleops/internal/model"
)

// Format identifies the encoding of a scenario file.
type Format string

const (
	// FormatYAML is a YAML scenario file (.yaml, .yml).
	FormatYAML Format = "yaml"

	// FormatJSON is a JSON scenario file (.json, .jsonc). Comments and
	// trailing commas are accepted.
	FormatJSON Format = "json"
)

// FormatFromPath detects the format from the file extension.
// Unknown extensions are treated as YAML, which also accepts plain JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Load reads, decodes and validates the scenario file at path.
//
// Returns a CLIError with ExitScenarioNotFound if the file does not exist and
// ExitScenarioInvalid if it cannot be decoded or fails validation.
func Load(path string, maxSteps int) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.WrapCLIError(
				model.ExitScenarioNotFound,
				fmt.Sprintf("scenario file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, invalid(path, err)
	}

	if err := s.Validate(maxSteps); err != nil {
		return nil, invalid(path, err)
	}

	return s, nil
}

// Parse decodes a scenario without validating it. Unknown fields are
// rejected so that typos such as "radious" do not silently select a
// different constructor.
func Parse(data []byte, format Format) (*Scenario, error) {
	var s Scenario

	switch format {
	case FormatJSON:
		// Strip JSONC comments (// and /* */) and trailing commas first.
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("scenario is empty")
			}
			return nil, fmt.Errorf("failed to parse JSON scenario: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("scenario is empty")
			}
			return nil, fmt.Errorf("failed to parse YAML scenario: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", format)
	}

	return &s, nil
}

// Encode serializes a scenario in the given format. YAML output carries a
// header comment naming the scenario; JSON output is indented with two spaces.
func Encode(s *Scenario, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		if s.Name != "" {
			fmt.Fprintf(&buf, "# circleops scenario: %s\n", s.Name)
		}
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("failed to encode scenario as YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode scenario as YAML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode scenario as JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", format)
	}
}
