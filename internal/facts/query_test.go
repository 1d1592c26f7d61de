package facts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

func TestBuildMatchQuery_ConstantsParameterized(t *testing.T) {
	sql, params, err := buildMatchQuery([]pattern.Clause{
		clause("Inheritance", pattern.Variable("x"), pattern.Constant("man")),
	})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT COUNT(*) FROM facts f0 WHERE f0.relation = ? AND f0.arity = ? AND json_extract(f0.args, '$[1]') = ?",
		sql)
	assert.Equal(t, []any{"Inheritance", 2, "man"}, params)
}

func TestBuildMatchQuery_RepeatedVariableEquality(t *testing.T) {
	sql, params, err := buildMatchQuery([]pattern.Clause{
		clause("Likes", pattern.Variable("x"), pattern.Variable("x")),
	})
	require.NoError(t, err)

	assert.Contains(t, sql, "json_extract(f0.args, '$[0]') = json_extract(f0.args, '$[1]')")
	assert.Equal(t, []any{"Likes", 2}, params)
}

func TestBuildMatchQuery_SharedVariableJoinsClauses(t *testing.T) {
	sql, _, err := buildMatchQuery([]pattern.Clause{
		clause("Inheritance", pattern.Variable("x"), pattern.Constant("man")),
		clause("Inheritance", pattern.Variable("x"), pattern.Constant("ugly")),
	})
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM facts f0, facts f1")
	assert.Contains(t, sql, "json_extract(f0.args, '$[0]') = json_extract(f1.args, '$[0]')")
}

func TestBuildMatchQuery_GroundCompoundMatchesRenderedText(t *testing.T) {
	succ := pattern.Compound{Functor: "succ", Args: []pattern.Term{pattern.Constant("0")}}

	_, params, err := buildMatchQuery([]pattern.Clause{
		clause("Value", pattern.Variable("x"), succ),
	})
	require.NoError(t, err)
	assert.Contains(t, params, "succ(0)")
}

func TestBuildMatchQuery_CompoundWithVariableRejected(t *testing.T) {
	open := pattern.Compound{Functor: "succ", Args: []pattern.Term{pattern.Variable("n")}}

	_, _, err := buildMatchQuery([]pattern.Clause{
		clause("Value", pattern.Variable("x"), open),
	})
	assert.ErrorContains(t, err, "compound with variables")
}

func TestBuildMatchQuery_EmptyClauseList(t *testing.T) {
	_, _, err := buildMatchQuery(nil)
	assert.ErrorContains(t, err, "empty clause list")
}
