package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

func inh(v pattern.Variable, c string) pattern.Clause {
	return pattern.Clause{Relation: "Inheritance", Args: []pattern.Term{v, pattern.Constant(c)}}
}

func TestPartitionsEmptyAndSingleClause(t *testing.T) {
	gen := NewGenerator()

	parts, err := gen.Partitions(pattern.Pattern{})
	require.NoError(t, err)
	assert.Empty(t, parts)

	parts, err = gen.Partitions(pattern.Pattern{inh("x", "man")})
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestPartitionsTwoClauses(t *testing.T) {
	c1 := inh("x", "man")
	c2 := inh("x", "ugly")

	parts, err := NewGenerator().Partitions(pattern.Pattern{c1, c2})
	require.NoError(t, err)

	// Only the split partition: the single-block grouping is excluded.
	require.Len(t, parts, 1)
	assert.Equal(t, pattern.Partition{
		pattern.Block{c1},
		pattern.Block{c2},
	}, parts[0])
}

func TestPartitionsThreeClausesDeterministicOrder(t *testing.T) {
	c1 := inh("x", "man")
	c2 := inh("x", "sodaDrinker")
	c3 := inh("x", "ugly")

	parts, err := NewGenerator().Partitions(pattern.Pattern{c1, c2, c3})
	require.NoError(t, err)

	require.Len(t, parts, 4)
	assert.Equal(t, pattern.Partition{pattern.Block{c1, c2}, pattern.Block{c3}}, parts[0])
	assert.Equal(t, pattern.Partition{pattern.Block{c1, c3}, pattern.Block{c2}}, parts[1])
	assert.Equal(t, pattern.Partition{pattern.Block{c1}, pattern.Block{c2, c3}}, parts[2])
	assert.Equal(t, pattern.Partition{pattern.Block{c1}, pattern.Block{c2}, pattern.Block{c3}}, parts[3])
}

func TestPartitionsCoverPatternExactly(t *testing.T) {
	p := pattern.Pattern{inh("x", "a"), inh("x", "b"), inh("y", "c"), inh("y", "d")}

	parts, err := NewGenerator().Partitions(p)
	require.NoError(t, err)

	// Bell(4) = 15 partitions, minus the single-block one.
	assert.Len(t, parts, 14)

	for _, part := range parts {
		assert.GreaterOrEqual(t, len(part), 2)
		// Blocks are disjoint and their union is exactly the clause set.
		assert.ElementsMatch(t, []pattern.Clause(p), part.Clauses())
	}
}
