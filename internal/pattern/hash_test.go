package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIsNamingIndependent(t *testing.T) {
	a := Pattern{
		{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("man")}},
		{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("ugly")}},
	}
	b := Pattern{
		{Relation: "Inheritance", Args: []Term{Variable("p"), Constant("man")}},
		{Relation: "Inheritance", Args: []Term{Variable("q"), Constant("ugly")}},
	}

	ha, err := Hash(a)
	require.NoError(t, err)
	hb, err := Hash(b)
	require.NoError(t, err)

	// Per-occurrence canonicalization erases naming, including the
	// aliasing difference between a (shared x) and b (distinct p, q).
	assert.Equal(t, ha, hb)
}

func TestHashDistinguishesStructure(t *testing.T) {
	a := Pattern{{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("man")}}}
	b := Pattern{{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("ugly")}}}

	ha := MustHash(a)
	hb := MustHash(b)

	assert.NotEqual(t, ha, hb)
}

func TestHashClauseStable(t *testing.T) {
	c := Clause{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("man")}}

	h1, err := HashClause(c)
	require.NoError(t, err)
	h2, err := HashClause(Clause{Relation: "Inheritance", Args: []Term{Variable("y"), Constant("man")}})
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestHashClauseAliased_KeepsRepeatedVariablesDistinct(t *testing.T) {
	self := Clause{Relation: "Similarity", Args: []Term{Variable("x"), Variable("x")}}
	free := Clause{Relation: "Similarity", Args: []Term{Variable("x"), Variable("y")}}

	// The per-occurrence clause hash conflates the two shapes.
	hSelf, err := HashClause(self)
	require.NoError(t, err)
	hFree, err := HashClause(free)
	require.NoError(t, err)
	assert.Equal(t, hSelf, hFree)

	// The alias-by-name clause hash keeps them apart while staying
	// renaming-invariant.
	aSelf, err := HashClauseAliased(self)
	require.NoError(t, err)
	aFree, err := HashClauseAliased(free)
	require.NoError(t, err)
	assert.NotEqual(t, aSelf, aFree)

	renamed, err := HashClauseAliased(Clause{Relation: "Similarity", Args: []Term{Variable("q"), Variable("q")}})
	require.NoError(t, err)
	assert.Equal(t, aSelf, renamed)
}

func TestHashAliased_KeepsRepeatedVariablesDistinct(t *testing.T) {
	shared := Pattern{
		{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("man")}},
		{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("ugly")}},
	}
	distinct := Pattern{
		{Relation: "Inheritance", Args: []Term{Variable("p"), Constant("man")}},
		{Relation: "Inheritance", Args: []Term{Variable("q"), Constant("ugly")}},
	}

	ha, err := HashAliased(shared)
	require.NoError(t, err)
	hb, err := HashAliased(distinct)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)

	renamed, err := HashAliased(Pattern{
		{Relation: "Inheritance", Args: []Term{Variable("v"), Constant("man")}},
		{Relation: "Inheritance", Args: []Term{Variable("v"), Constant("ugly")}},
	})
	require.NoError(t, err)
	assert.Equal(t, ha, renamed)
}

func TestHashDomainSeparation(t *testing.T) {
	c := Clause{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("man")}}

	patternHash := MustHash(Pattern{c})
	clauseHash, err := HashClause(c)
	require.NoError(t, err)

	assert.NotEqual(t, patternHash, clauseHash)
}
