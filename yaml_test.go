package searchspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spaceDoc = `
Space:
  - Integer:
      low: -5
      high: 5
  - Categorical:
      categories:
        - a
        - b
  - Real:
      low: 1.0
      high: 5.0
      prior: log-uniform
`

func TestLoadYAMLMapping(t *testing.T) {
	s, err := LoadYAML(strings.NewReader(spaceDoc), "")
	require.NoError(t, err)

	require.Equal(t, 3, s.NDims())

	dims := s.Dimensions()
	assert.Equal(t, KindInteger, dims[0].Kind())
	assert.Equal(t, KindCategorical, dims[1].Kind())
	assert.Equal(t, KindReal, dims[2].Kind())

	assert.Equal(t, Bound{Low: -5, High: 5}, dims[0].Bounds())
	assert.Equal(t, []any{"a", "b"}, dims[1].Bounds().Categories)
}

func TestLoadYAMLNamespace(t *testing.T) {
	doc := `
first:
  - Real:
      low: 0.0
      high: 1.0
second:
  - Integer:
      low: 1
      high: 10
`

	s, err := LoadYAML(strings.NewReader(doc), "second")
	require.NoError(t, err)
	require.Equal(t, 1, s.NDims())
	assert.Equal(t, KindInteger, s.Dimensions()[0].Kind())

	// Namespaces match case-insensitively.
	s, err = LoadYAML(strings.NewReader(doc), "FIRST")
	require.NoError(t, err)
	assert.Equal(t, KindReal, s.Dimensions()[0].Kind())

	_, err = LoadYAML(strings.NewReader(doc), "third")
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestLoadYAMLFirstNamespaceByDefault(t *testing.T) {
	doc := `
first:
  - Real:
      low: 0.0
      high: 1.0
second:
  - Integer:
      low: 1
      high: 10
`

	s, err := LoadYAML(strings.NewReader(doc), "")
	require.NoError(t, err)
	assert.Equal(t, KindReal, s.Dimensions()[0].Kind())
}

func TestLoadYAMLList(t *testing.T) {
	doc := `
- real:
    low: 0.0
    high: 1.0
    name: lr
- categorical:
    categories: [x, y, z]
    transform: label
    prior: [0.5, 0.25, 0.25]
`

	s, err := LoadYAML(strings.NewReader(doc), "")
	require.NoError(t, err)
	require.Equal(t, 2, s.NDims())

	idx, dim := s.Lookup("lr")
	assert.Equal(t, 0, idx)
	require.NotNil(t, dim)

	cat, ok := s.Dimensions()[1].(*Categorical)
	require.True(t, ok)
	assert.Equal(t, TransformLabel, cat.Transformer())
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, cat.Weights())
}

func TestLoadYAMLSkipsUnknownTags(t *testing.T) {
	doc := `
- real:
    low: 0.0
    high: 1.0
- hyperband:
    budget: 100
- integer:
    low: 1
    high: 3
`

	s, err := LoadYAML(strings.NewReader(doc), "")
	require.NoError(t, err)
	assert.Equal(t, 2, s.NDims())
}

func TestLoadYAMLCaseInsensitiveKeys(t *testing.T) {
	doc := `
- REAL:
    LOW: 1.0
    HIGH: 2.0
    PRIOR: log-uniform
    BASE: 2
`

	s, err := LoadYAML(strings.NewReader(doc), "")
	require.NoError(t, err)
	require.Equal(t, 1, s.NDims())
	assert.Equal(t, Bound{Low: 1, High: 2}, s.Dimensions()[0].Bounds())
}

func TestLoadYAMLConstructionErrorsPropagate(t *testing.T) {
	doc := `
- integer:
    low: 5
    high: 1
`

	_, err := LoadYAML(strings.NewReader(doc), "")
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestLoadYAMLMissingBound(t *testing.T) {
	doc := `
- real:
    low: 0.0
`

	_, err := LoadYAML(strings.NewReader(doc), "")
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestLoadYAMLRejectsScalarDocument(t *testing.T) {
	_, err := LoadYAML(strings.NewReader(`42`), "")
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "space.yml")
	require.NoError(t, os.WriteFile(path, []byte(spaceDoc), 0o600))

	s, err := LoadYAMLFile(path, "space")
	require.NoError(t, err)
	assert.Equal(t, 3, s.NDims())

	_, err = LoadYAMLFile(filepath.Join(t.TempDir(), "absent.yml"), "")
	assert.Error(t, err)
}
