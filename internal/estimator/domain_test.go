package estimator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal-29/hyperon-miner/internal/pattern"
	"github.com/hal-29/hyperon-miner/internal/testutil"
)

func inh(v, c string) pattern.Clause {
	return pattern.Clause{
		Relation: "Inheritance",
		Args:     []pattern.Term{pattern.Variable(v), pattern.Constant(c)},
	}
}

func TestDomainSize_SqrtOfSupport(t *testing.T) {
	kb := testutil.NewStubKB(100)
	clause := inh("x", "man")
	kb.SetSupport(clause, 9)

	size, err := DomainSize(context.Background(), kb, clause)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, size, 1e-12)
}

func TestDomainSize_ZeroSupport(t *testing.T) {
	kb := testutil.NewStubKB(100)

	size, err := DomainSize(context.Background(), kb, inh("x", "unknown"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, size)
}

func TestDomainSize_NegativeCountIsOutOfContract(t *testing.T) {
	kb := testutil.NewStubKB(100)
	clause := inh("x", "man")
	kb.SetSupport(clause, -5)

	_, err := DomainSize(context.Background(), kb, clause)
	require.Error(t, err)
	assert.True(t, IsCollaboratorFailure(err))
}

func TestDomainSize_KnowledgeBaseFailure(t *testing.T) {
	kb := testutil.NewStubKB(100)
	kb.SupportErr = errors.New("connection reset")

	_, err := DomainSize(context.Background(), kb, inh("x", "man"))
	require.Error(t, err)
	assert.True(t, IsCollaboratorFailure(err))
	assert.ErrorContains(t, err, "support_count")
}
