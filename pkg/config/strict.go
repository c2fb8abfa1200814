package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

var strictLog = logger.New("config:strict")

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
	compiledSchemaOnce sync.Once
)

// compileSchema compiles JSONSchema once per process.
func compileSchema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		strictLog.Print("Compiling config JSON schema")

		schemaJSON, err := JSONSchemaBytes()
		if err != nil {
			compiledSchemaErr = fmt.Errorf("failed to marshal config schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compiledSchemaErr = fmt.Errorf("failed to parse config schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(SchemaID, doc); err != nil {
			compiledSchemaErr = fmt.Errorf("failed to add config schema resource: %w", err)
			return
		}

		compiledSchema, compiledSchemaErr = compiler.Compile(SchemaID)
	})
	return compiledSchema, compiledSchemaErr
}

// ValidateStrict checks a decoded config against JSONSchema without any
// filtering. The returned error lists every violation.
func ValidateStrict(path string, raw map[string]any) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so YAML-decoded numbers and maps take the
	// shapes the validator expects.
	data, err := json.Marshal(raw)
	if err != nil {
		return &FileError{Path: path, Err: fmt.Errorf("failed to encode config for validation: %w", err)}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &FileError{Path: path, Err: fmt.Errorf("failed to decode config for validation: %w", err)}
	}

	if err := schema.Validate(inst); err != nil {
		strictLog.Printf("Strict validation failed for %s", path)
		return &FileError{Path: path, Err: err}
	}
	return nil
}
