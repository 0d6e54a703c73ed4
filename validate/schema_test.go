package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personSchema(t *testing.T) Validator {
	t.Helper()
	v, err := Schema("person", map[string]any{
		"type":     "object",
		"required": []string{"name"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "integer", "minimum": 0},
		},
	})
	require.NoError(t, err)
	return v
}

func TestSchema_ValidDocument(t *testing.T) {
	v := personSchema(t)

	assert.True(t, v.Check(`{"name": "ada", "age": 36}`))

	out, err := v.Convert(`{"name": "ada"}`)
	require.NoError(t, err)
	doc, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada", doc["name"])
}

func TestSchema_InvalidDocument(t *testing.T) {
	v := personSchema(t)

	assert.False(t, v.Check(`{"age": -1}`))

	_, err := v.Convert(`{"age": 3}`)
	require.Error(t, err)
	assert.Equal(t, "does not match the expected shape", Reason(err))
}

func TestSchema_MalformedJSON(t *testing.T) {
	v := personSchema(t)

	assert.False(t, v.Check(`{not json`))
	_, err := v.Convert(`{not json`)
	require.Error(t, err)
	assert.Equal(t, "must be valid JSON", Reason(err))
}

func TestSchema_BadDefinition(t *testing.T) {
	_, err := Schema("broken", map[string]any{"type": 12})
	assert.Error(t, err)
}
