package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"quality": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"test.schema.json":   {Data: []byte(testSchema)},
		"broken.schema.json": {Data: []byte(`{not json`)},
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(testFS())

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "Aged Brie", "quality": 30}`},
		{name: "valid data without optional field", data: `{"name": "Aged Brie"}`},
		{name: "missing required field", data: `{"quality": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "foo", "quality": "high"}`, wantError: true, errorMsg: "/quality"},
		{name: "below minimum", data: `{"name": "foo", "quality": -1}`, wantError: true, errorMsg: "minimum"},
		{name: "malformed JSON", data: `{"name":`, wantError: true, errorMsg: "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "test.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	v := NewSchemaValidator(testFS())

	t.Run("missing schema", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{}`), "nope.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read schema file")
	})

	t.Run("malformed schema", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{}`), "broken.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse schema JSON")
	})
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator(testFS()).(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "a"}`), "test.schema.json"))
	require.NoError(t, v.ValidateBytes([]byte(`{"name": "b"}`), "test.schema.json"))
	assert.Len(t, v.schemas, 1)
}
