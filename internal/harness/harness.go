package harness

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/hal-29/hyperon-miner/internal/compile"
	"github.com/hal-29/hyperon-miner/internal/partition"
	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// Result captures everything a scenario run produces: the compiled
// definition, its canonical form, and the enumerated partitions.
type Result struct {
	Definition *compile.Definition
	Canonical  pattern.Pattern
	Partitions []pattern.Partition
}

// Run executes one scenario: compile the pattern document, derive its
// canonical form, and enumerate its candidate partitions.
func Run(scenario *Scenario) (*Result, error) {
	def, err := LoadPattern(scenario.Pattern)
	if err != nil {
		return nil, err
	}

	canonical := pattern.NewCanonicalizer().ToCanonical(def.Pattern)

	parts, err := partition.NewGenerator().Partitions(def.Pattern)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	// Documents without a name inherit the scenario's, so golden
	// files stay addressable.
	if def.Name == "" {
		def.Name = scenario.Name
	}

	return &Result{
		Definition: def,
		Canonical:  canonical,
		Partitions: parts,
	}, nil
}

// LoadPattern reads a CUE pattern document from disk and compiles the
// top-level "pattern" struct.
func LoadPattern(path string) (*compile.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	v := cuecontext.New().CompileString(string(data), cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}

	patternVal := v.LookupPath(cue.ParsePath("pattern"))
	if !patternVal.Exists() {
		return nil, fmt.Errorf("compile %s: no top-level pattern struct", path)
	}

	def, err := compile.CompileDefinition(patternVal)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}

	return def, nil
}
