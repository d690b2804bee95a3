package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
)

func TestLoadSchemaYAML(t *testing.T) {
	data := []byte(`
index: albums
prefix: "album:"
fields:
  - name: artist
    type: string
  - name: year
    type: number
    alias: y
  - name: explicit
    type: boolean
  - name: genres
    type: array
  - name: title
    type: text
  - name: releasedAt
    type: date
`)
	registry, err := LoadSchemaYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "albums", registry.IndexName)
	assert.Equal(t, "album:", registry.Prefix)
	require.Len(t, registry.Fields(), 6)

	field, ok := registry.Resolve("year")
	require.True(t, ok)
	assert.Equal(t, s.SchemaField{Name: "year", Type: s.FieldTypeNumber, Alias: "y"}, field)
}

func TestLoadSchemaYAMLErrors(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		_, err := LoadSchemaYAML([]byte("index: [unterminated"))
		assert.ErrorContains(t, err, "failed to parse schema")
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := LoadSchemaYAML([]byte("index: a\nfields:\n  - name: loc\n    type: point\n"))
		assert.ErrorIs(t, err, s.ErrInvalidSchema)
	})

	t.Run("duplicate field", func(t *testing.T) {
		_, err := LoadSchemaYAML([]byte("index: a\nfields:\n  - name: x\n    type: string\n  - name: x\n    type: number\n"))
		assert.ErrorIs(t, err, s.ErrInvalidSchema)
		assert.ErrorContains(t, err, "declared twice")
	})

	t.Run("missing index", func(t *testing.T) {
		_, err := LoadSchemaYAML([]byte("fields:\n  - name: x\n    type: string\n"))
		assert.ErrorContains(t, err, "index name is empty")
	})
}
