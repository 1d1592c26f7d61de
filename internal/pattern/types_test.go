package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClauseString(t *testing.T) {
	tests := []struct {
		name     string
		clause   Clause
		expected string
	}{
		{
			name:     "variable and constant",
			clause:   Clause{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("man")}},
			expected: "Inheritance($x, man)",
		},
		{
			name:     "no args",
			clause:   Clause{Relation: "Dawn"},
			expected: "Dawn()",
		},
		{
			name: "compound arg",
			clause: Clause{Relation: "Eval", Args: []Term{
				Compound{Functor: "succ", Args: []Term{Constant("0")}},
			}},
			expected: "Eval(succ(0))",
		},
		{
			name:     "canonical placeholders",
			clause:   Clause{Relation: "Inheritance", Args: []Term{CanonicalVar(0), CanonicalVar(2)}},
			expected: "Inheritance(0, succ(succ(0)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.clause.String())
		})
	}
}

func TestPatternVariablesFirstOccurrenceOrder(t *testing.T) {
	p := Pattern{
		{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("man")}},
		{Relation: "Similarity", Args: []Term{Variable("y"), Variable("x")}},
	}

	assert.Equal(t, []Variable{"x", "y"}, p.Variables())
}

func TestClauseVariablesDescendsIntoCompounds(t *testing.T) {
	c := Clause{Relation: "Eval", Args: []Term{
		Compound{Functor: "pair", Args: []Term{Variable("a"), Variable("b")}},
		Variable("a"),
	}}

	assert.Equal(t, []Variable{"a", "b"}, c.Variables())
}

func TestBlockReferences(t *testing.T) {
	b := Block{
		{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("man")}},
	}

	assert.True(t, b.References("x"))
	assert.False(t, b.References("y"))
}

func TestPartitionClausesFlattensInOrder(t *testing.T) {
	c1 := Clause{Relation: "A", Args: []Term{Variable("x")}}
	c2 := Clause{Relation: "B", Args: []Term{Variable("x")}}
	c3 := Clause{Relation: "C", Args: []Term{Variable("x")}}

	part := Partition{Block{c1, c3}, Block{c2}}

	require.Equal(t, []Clause{c1, c3, c2}, part.Clauses())
}

func TestTruthValueValidate(t *testing.T) {
	tests := []struct {
		name    string
		tv      TruthValue
		wantErr bool
	}{
		{"valid midpoint", TruthValue{Strength: 0.5, Confidence: 0.9}, false},
		{"valid bounds", TruthValue{Strength: 0, Confidence: 1}, false},
		{"strength above one", TruthValue{Strength: 1.1, Confidence: 0.5}, true},
		{"negative confidence", TruthValue{Strength: 0.5, Confidence: -0.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tv.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
