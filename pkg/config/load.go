package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

var loadLog = logger.New("config:load")

// File-level problems. Load wraps them in a *FileError.
var (
	ErrNotObject     = errors.New("Your config must be an object")
	ErrEmpty         = errors.New("Your config is empty")
	ErrNonStringKeys = errors.New("All keys in your config must be strings")
)

// FileError is a fatal problem with a config file as a whole.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Loaded is a fully processed config file.
type Loaded struct {
	Path   string
	Raw    map[string]any
	Schema Schema
	Report Report
}

// Load reads, decodes, normalizes and resolves the config file at path.
func Load(path string) (*Loaded, error) {
	loadLog.Printf("Loading config: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	raw, err := Decode(path, data)
	if err != nil {
		return nil, err
	}

	schema, report := Normalize(raw)
	resolved, extendsReport := ResolveExtensions(schema)
	report.Merge(extendsReport)

	loadLog.Printf("Loaded %d tools from %s with %d findings", len(resolved), path, len(report.Findings))
	return &Loaded{Path: path, Raw: raw, Schema: resolved, Report: report}, nil
}

// Decode parses data as YAML when path ends in .yaml or .yml and as JSON
// otherwise, then checks that the top level is a non-empty object with string
// keys.
func Decode(path string, data []byte) (map[string]any, error) {
	var (
		raw map[string]any
		err error
	)
	if isYAML(path) {
		raw, err = decodeYAML(data)
	} else {
		raw, err = decodeJSON(data)
	}
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	if len(raw) == 0 {
		return nil, &FileError{Path: path, Err: ErrEmpty}
	}
	return raw, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func decodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: unexpected data after the top-level value")
	}

	raw, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return raw, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := checkTopLevelKeys(file); err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	raw, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return raw, nil
}

// checkTopLevelKeys inspects the syntax tree because decoding into
// map[string]any would silently stringify keys such as 1 or true.
func checkTopLevelKeys(file *ast.File) error {
	if len(file.Docs) == 0 {
		return nil
	}

	var values []*ast.MappingValueNode
	switch body := file.Docs[0].Body.(type) {
	case *ast.MappingNode:
		values = body.Values
	case *ast.MappingValueNode:
		values = []*ast.MappingValueNode{body}
	}

	for _, value := range values {
		if value.Key.Type() != ast.StringType {
			return ErrNonStringKeys
		}
	}
	return nil
}
