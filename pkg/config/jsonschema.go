package config

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// SchemaID identifies the exported JSON Schema.
const SchemaID = "https://github.com/OlaoluwaM/scaffy/schema/scaffy.schema.json"

const draft202012 = "https://json-schema.org/draft/2020-12/schema"

// JSONSchema describes the config file format for editors and for strict
// validation.
func JSONSchema() *jsonschema.Schema {
	one := 1

	stringArray := func(description string) *jsonschema.Schema {
		return &jsonschema.Schema{
			Type:        "array",
			Description: description,
			Items:       &jsonschema.Schema{Type: "string"},
		}
	}

	mergeable := make([]any, len(MergeableFields))
	for i, field := range MergeableFields {
		mergeable[i] = field
	}

	entry := &jsonschema.Schema{
		Type:        "object",
		Description: "Configuration for a single tool",
		Properties: map[string]*jsonschema.Schema{
			FieldExtends: {
				Description: "Another tool to inherit from, either by name or as {from, merge}",
				AnyOf: []*jsonschema.Schema{
					{Type: "string"},
					{
						Type: "object",
						Properties: map[string]*jsonschema.Schema{
							"from": {Type: "string", Description: "Name of the tool to inherit from"},
							"merge": {
								Type:        "array",
								Description: "Fields to inherit",
								Items:       &jsonschema.Schema{Type: "string", Enum: mergeable},
							},
						},
						Required: []string{"from", "merge"},
					},
				},
			},
			FieldDepNames:                stringArray("Packages installed as dependencies"),
			FieldDevDepNames:             stringArray("Packages installed as dev dependencies"),
			FieldLocalConfigurationPaths: stringArray("Files copied into the project root"),
			FieldRemoteConfigurationUrls: stringArray("Files downloaded into the project root"),
		},
	}

	return &jsonschema.Schema{
		Schema:               draft202012,
		ID:                   SchemaID,
		Title:                "scaffy configuration",
		Type:                 "object",
		MinProperties:        &one,
		AdditionalProperties: entry,
	}
}

// JSONSchemaBytes returns JSONSchema as indented JSON.
func JSONSchemaBytes() ([]byte, error) {
	return json.MarshalIndent(JSONSchema(), "", "  ")
}
