package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

func loadTestScenario(t *testing.T, name string) *Scenario {
	t.Helper()
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", name), "testdata")
	require.NoError(t, err)
	return s
}

func TestRun_CompilesAndPartitions(t *testing.T) {
	scenario := loadTestScenario(t, "ugly_man_soda.yaml")

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.Equal(t, "ugly-man-soda", result.Definition.Name)
	require.Len(t, result.Definition.Pattern, 3)
	assert.Len(t, result.Partitions, 4)

	// All clauses share $x.
	assert.Equal(t, []pattern.Variable{"x"}, result.Definition.Pattern.Variables())
}

func TestRun_SingleClauseHasNoPartitions(t *testing.T) {
	scenario := loadTestScenario(t, "self_similarity.yaml")

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.Empty(t, result.Partitions)

	// Per-occurrence canonicalization splits the repeated variable.
	require.Len(t, result.Canonical, 1)
	assert.Equal(t, "Similarity(0, succ(0))", result.Canonical[0].String())
}

func TestGolden_UglyManSoda(t *testing.T) {
	scenario := loadTestScenario(t, "ugly_man_soda.yaml")
	require.NoError(t, RunWithGolden(t, scenario))
}

func TestGolden_SelfSimilarity(t *testing.T) {
	scenario := loadTestScenario(t, "self_similarity.yaml")
	require.NoError(t, RunWithGolden(t, scenario))
}

func TestGolden_DisjointPair(t *testing.T) {
	scenario := loadTestScenario(t, "disjoint_pair.yaml")
	require.NoError(t, RunWithGolden(t, scenario))
}
