package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines one analysis scenario: a named pattern document to
// canonicalize and partition, with the golden snapshot acting as the
// expected output.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Pattern is the path to the CUE pattern document.
	// Relative paths resolve against the scenario file location.
	Pattern string `yaml:"pattern"`
}

// LoadScenario reads and parses a scenario YAML file, resolving the
// pattern path relative to basePath. Returns an error if the file is
// malformed, contains unknown fields (typos), or is missing required
// fields.
func LoadScenario(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "patern:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if !filepath.IsAbs(scenario.Pattern) && basePath != "" {
		scenario.Pattern = filepath.Join(basePath, scenario.Pattern)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Pattern == "" {
		return fmt.Errorf("pattern is required")
	}

	if _, err := os.Stat(s.Pattern); os.IsNotExist(err) {
		return fmt.Errorf("pattern file not found: %s", s.Pattern)
	}

	return nil
}
