//go:build !integration

package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchema(t *testing.T) {
	data, err := JSONSchemaBytes()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, SchemaID, doc["$id"])

	entry, ok := doc["additionalProperties"].(map[string]any)
	require.True(t, ok, "tool entries are described by additionalProperties")
	props, ok := entry["properties"].(map[string]any)
	require.True(t, ok)
	for _, field := range EntryFields {
		assert.Contains(t, props, field)
	}
}

func TestValidateStrict(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "valid config",
			raw:  `{"eslint": {"depNames": ["eslint"], "extends": ""}, "react": {"extends": {"from": "eslint", "merge": ["depNames"]}}}`,
		},
		{name: "list field of wrong type", raw: `{"eslint": {"depNames": "eslint"}}`, wantErr: true},
		{name: "non-string dependency", raw: `{"eslint": {"depNames": ["eslint", 3]}}`, wantErr: true},
		{name: "unknown merge field", raw: `{"a": {"extends": {"from": "b", "merge": ["nope"]}}}`, wantErr: true},
		{name: "extends object without merge", raw: `{"a": {"extends": {"from": "b"}}}`, wantErr: true},
		{name: "entry that is not an object", raw: `{"a": 1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Decode("scaffy.json", []byte(tt.raw))
			require.NoError(t, err)

			err = ValidateStrict("scaffy.json", raw)
			if tt.wantErr {
				require.Error(t, err)
				var fileErr *FileError
				assert.ErrorAs(t, err, &fileErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
