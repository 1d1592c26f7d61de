package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot is the golden-file shape for a scenario run. It holds only
// structural output - clause renderings and partition layout - so
// snapshots stay stable across floating-point and hashing changes.
type Snapshot struct {
	Name       string       `json:"name"`
	Canonical  []string     `json:"canonical"`
	Partitions [][][]string `json:"partitions"`
}

// buildSnapshot converts a Result into its golden-file shape. Slices
// are always allocated so empty sections render as [] rather than null.
func buildSnapshot(result *Result) Snapshot {
	snapshot := Snapshot{
		Name:       result.Definition.Name,
		Canonical:  make([]string, 0, len(result.Canonical)),
		Partitions: make([][][]string, 0, len(result.Partitions)),
	}

	for _, clause := range result.Canonical {
		snapshot.Canonical = append(snapshot.Canonical, clause.String())
	}

	for _, part := range result.Partitions {
		blocks := make([][]string, 0, len(part))
		for _, block := range part {
			clauses := make([]string, 0, len(block))
			for _, clause := range block {
				clauses = append(clauses, clause.String())
			}
			blocks = append(blocks, clauses)
		}
		snapshot.Partitions = append(snapshot.Partitions, blocks)
	}

	return snapshot
}

// RunWithGolden executes a scenario and compares the structural
// snapshot against a golden file in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails. Test failure (via goldie)
// occurs if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	snapshot := buildSnapshot(result)
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
