package facts

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

const peopleYAML = `
facts:
  - relation: Inheritance
    args: [Allen, man]
  - relation: Inheritance
    args: [Bob, man]
  - relation: Inheritance
    args: [Allen, ugly]
`

func TestLoadYAML_InsertsAllFacts(t *testing.T) {
	s := createTestStore(t)

	n, err := s.LoadYAML(context.Background(), strings.NewReader(peopleYAML))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	size, err := s.Size(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), size)

	count, err := s.SupportCount(context.Background(),
		clause("Inheritance", pattern.Variable("x"), pattern.Constant("man")))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestLoadYAML_Idempotent(t *testing.T) {
	s := createTestStore(t)

	_, err := s.LoadYAML(context.Background(), strings.NewReader(peopleYAML))
	require.NoError(t, err)
	_, err = s.LoadYAML(context.Background(), strings.NewReader(peopleYAML))
	require.NoError(t, err)

	size, err := s.Size(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), size)
}

func TestLoadYAML_MalformedDocument(t *testing.T) {
	s := createTestStore(t)

	_, err := s.LoadYAML(context.Background(), strings.NewReader("facts: [not a fact"))
	assert.ErrorContains(t, err, "parse yaml")
}

func TestLoadYAML_EmptyDocument(t *testing.T) {
	s := createTestStore(t)

	n, err := s.LoadYAML(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
