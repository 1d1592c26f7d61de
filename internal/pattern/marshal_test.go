package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    Pattern
		expected string
	}{
		{
			name:     "empty pattern",
			input:    Pattern{},
			expected: `{"clauses":[]}`,
		},
		{
			name: "variable and constant",
			input: Pattern{
				{Relation: "Inheritance", Args: []Term{Variable("x"), Constant("man")}},
			},
			expected: `{"clauses":[{"args":[{"var":"x"},{"const":"man"}],"relation":"Inheritance"}]}`,
		},
		{
			name: "canonical placeholder",
			input: Pattern{
				{Relation: "P", Args: []Term{CanonicalVar(3)}},
			},
			expected: `{"clauses":[{"args":[{"idx":3}],"relation":"P"}]}`,
		},
		{
			name: "compound",
			input: Pattern{
				{Relation: "Eval", Args: []Term{
					Compound{Functor: "succ", Args: []Term{Constant("0")}},
				}},
			},
			expected: `{"clauses":[{"args":[{"args":[{"const":"0"}],"fn":"succ"}],"relation":"Eval"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalNoHTMLEscape(t *testing.T) {
	p := Pattern{{Relation: "R", Args: []Term{Constant("a & <b>")}}}

	result, err := MarshalCanonical(p)
	require.NoError(t, err)

	assert.Contains(t, string(result), `"a & <b>"`)
	assert.NotContains(t, string(result), "\\u003c") // <
	assert.NotContains(t, string(result), "\\u0026") // &
}

func TestMarshalCanonicalNFCNormalization(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) normalizes to U+00E9.
	decomposed := Pattern{{Relation: "R", Args: []Term{Constant("cafe\u0301")}}}
	composed := Pattern{{Relation: "R", Args: []Term{Constant("caf\u00e9")}}}

	a, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	b, err := MarshalCanonical(composed)
	require.NoError(t, err)

	assert.Equal(t, string(b), string(a))
}

func TestMarshalCanonicalNilTerm(t *testing.T) {
	p := Pattern{{Relation: "R", Args: []Term{nil}}}

	_, err := MarshalCanonical(p)
	assert.Error(t, err)
}
