package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid rubric", func(t *testing.T) {
		yaml := `
scale:
  min: 1
  max: 5
criteria:
  - id: accuracy
    name: Accuracy
    weight: 0.6
  - id: speed
    name: Speed
    weight: 0.4
`
		r, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, Scale{Min: 1, Max: 5}, r.Scale)
		require.Len(t, r.Criteria, 2)
		assert.Equal(t, "accuracy", r.Criteria[0].ID)
		assert.Equal(t, "Accuracy", r.Criteria[0].Name)
		assert.InDelta(t, 0.6, r.Criteria[0].Weight, 1e-9)
	})

	t.Run("scale defaults to 1..5", func(t *testing.T) {
		yaml := `
criteria:
  - id: a
    name: A
    weight: 1.0
`
		r, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, Scale{Min: DefaultMinScore, Max: DefaultMaxScore}, r.Scale)
	})

	t.Run("partial scale keeps other default", func(t *testing.T) {
		yaml := `
scale:
  max: 10
criteria:
  - id: a
    name: A
    weight: 1.0
`
		r, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, Scale{Min: 1, Max: 10}, r.Scale)
	})

	t.Run("ids and names are trimmed", func(t *testing.T) {
		yaml := `
criteria:
  - id: "  accuracy  "
    name: "  Accuracy  "
    weight: 1.0
`
		r, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "accuracy", r.Criteria[0].ID)
		assert.Equal(t, "Accuracy", r.Criteria[0].Name)
	})

	t.Run("criteria order preserved", func(t *testing.T) {
		yaml := `
criteria:
  - { id: z, name: Z, weight: 0.5 }
  - { id: a, name: A, weight: 0.5 }
`
		r, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "z", r.Criteria[0].ID)
		assert.Equal(t, "a", r.Criteria[1].ID)
	})
}

func TestParse_Validation(t *testing.T) {
	t.Run("empty criteria", func(t *testing.T) {
		_, err := Parse([]byte(`criteria: []`))
		assert.ErrorIs(t, err, ErrNoCriteria)
	})

	t.Run("weights summing low rejected", func(t *testing.T) {
		yaml := `
criteria:
  - { id: a, name: A, weight: 0.5 }
  - { id: b, name: B, weight: 0.48 }
`
		_, err := Parse([]byte(yaml))
		assert.ErrorIs(t, err, ErrWeightSum)
		assert.Contains(t, err.Error(), "must sum to 1.0")
	})

	t.Run("weights summing high rejected", func(t *testing.T) {
		yaml := `
criteria:
  - { id: a, name: A, weight: 0.5 }
  - { id: b, name: B, weight: 0.52 }
`
		_, err := Parse([]byte(yaml))
		assert.ErrorIs(t, err, ErrWeightSum)
	})

	t.Run("weights within tolerance accepted", func(t *testing.T) {
		yaml := `
criteria:
  - { id: a, name: A, weight: 0.500001 }
  - { id: b, name: B, weight: 0.5 }
`
		_, err := Parse([]byte(yaml))
		assert.NoError(t, err)
	})

	t.Run("duplicate ids rejected", func(t *testing.T) {
		yaml := `
criteria:
  - { id: accuracy, name: A, weight: 0.5 }
  - { id: accuracy, name: B, weight: 0.5 }
`
		_, err := Parse([]byte(yaml))
		assert.ErrorIs(t, err, ErrDuplicateIDs)
		assert.Contains(t, err.Error(), "accuracy")
	})

	t.Run("inverted scale rejected", func(t *testing.T) {
		yaml := `
scale: { min: 5, max: 1 }
criteria:
  - { id: a, name: A, weight: 1.0 }
`
		_, err := Parse([]byte(yaml))
		assert.ErrorIs(t, err, ErrScaleOrder)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("criteria: ["))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "parse rubric YAML")
	})
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile("does/not/exist.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read rubric file")
}
