package estimator

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal-29/hyperon-miner/internal/pattern"
	"github.com/hal-29/hyperon-miner/internal/testutil"
)

// countingKB wraps a KnowledgeBase and counts SupportCount calls, to
// observe the resolver's memoization.
type countingKB struct {
	KnowledgeBase
	calls atomic.Int64
}

func (c *countingKB) SupportCount(ctx context.Context, clause pattern.Clause) (int64, error) {
	c.calls.Add(1)
	return c.KnowledgeBase.SupportCount(ctx, clause)
}

func TestResolver_ExactlyLookbackEntries(t *testing.T) {
	man := inh("x", "man")
	soda := inh("x", "sodaDrinker")
	ugly := inh("x", "ugly")
	clauses := []pattern.Clause{man, soda, ugly}

	kb := testutil.NewStubKB(61)
	kb.SetSupport(man, 4)
	oracle := testutil.NewTableOracle()
	oracle.Allow(man, ugly)

	r := newResolver(kb, oracle)
	candidates, err := r.Candidates(context.Background(), clauses, 2, 2)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// man is more abstract than ugly: present with sqrt(4).
	assert.True(t, candidates[0].OK)
	assert.InDelta(t, 2.0, candidates[0].Size, 1e-12)

	// soda is not ordered against ugly: absent.
	assert.False(t, candidates[1].OK)
}

func TestResolver_KeepsAliasedClauseShapesApart(t *testing.T) {
	self := pattern.Clause{
		Relation: "Similarity",
		Args:     []pattern.Term{pattern.Variable("x"), pattern.Variable("x")},
	}
	free := pattern.Clause{
		Relation: "Similarity",
		Args:     []pattern.Term{pattern.Variable("x"), pattern.Variable("y")},
	}
	target := inh("z", "man")
	clauses := []pattern.Clause{self, free, target}

	// The two shapes have different supports: the repeated-variable
	// clause matches only self-similar facts.
	kb := testutil.NewStubKB(200)
	kb.SetSupport(self, 1)
	kb.SetSupport(free, 100)

	oracle := testutil.NewTableOracle()
	oracle.Allow(self, target)
	oracle.Allow(free, target)

	r := newResolver(kb, oracle)
	candidates, err := r.Candidates(context.Background(), clauses, 2, 2)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Resolving the repeated-variable clause first must not seed a
	// cache entry that the free-variable clause then picks up.
	require.True(t, candidates[0].OK)
	assert.InDelta(t, 1.0, candidates[0].Size, 1e-12)
	require.True(t, candidates[1].OK)
	assert.InDelta(t, 10.0, candidates[1].Size, 1e-12)
}

func TestResolver_MemoizesDomainSizes(t *testing.T) {
	man := inh("x", "man")
	soda := inh("x", "sodaDrinker")
	ugly := inh("x", "ugly")
	clauses := []pattern.Clause{man, soda, ugly}

	stub := testutil.NewStubKB(61)
	stub.SetSupport(man, 9)
	kb := &countingKB{KnowledgeBase: stub}

	oracle := testutil.NewTableOracle()
	oracle.Allow(man, soda)
	oracle.Allow(man, ugly)

	r := newResolver(kb, oracle)

	_, err := r.Candidates(context.Background(), clauses, 1, 1)
	require.NoError(t, err)
	_, err = r.Candidates(context.Background(), clauses, 2, 2)
	require.NoError(t, err)

	// man's domain size is needed by both scans but queried once.
	assert.Equal(t, int64(1), kb.calls.Load())
}
