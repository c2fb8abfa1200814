// Package config loads scaffy configuration files and turns them into a
// normalized, extension-resolved Schema.
//
// A config file maps tool names to entries:
//
//	{
//	  "eslint": {
//	    "depNames": ["eslint"],
//	    "localConfigurationPaths": ["./configs/.eslintrc.json"]
//	  },
//	  "eslint-react": {
//	    "extends": {"from": "eslint", "merge": ["depNames"]},
//	    "depNames": ["eslint-plugin-react"]
//	  }
//	}
//
// Loading happens in three stages. Decode checks the outer shape and fails on
// file-level problems. Normalize validates each entry, dropping invalid
// entries and invalid fields instead of failing. ResolveExtensions applies
// "extends" inheritance, parents first. Anything dropped or ignored along the
// way is described in a Report.
package config

import (
	"encoding/json"
	"sort"
	"strings"
)

// Entry field names as they appear in config files.
const (
	FieldExtends                 = "extends"
	FieldDepNames                = "depNames"
	FieldDevDepNames             = "devDepNames"
	FieldLocalConfigurationPaths = "localConfigurationPaths"
	FieldRemoteConfigurationUrls = "remoteConfigurationUrls"
)

// MergeableFields are the list fields an entry can inherit, in file order.
var MergeableFields = []string{
	FieldDepNames,
	FieldDevDepNames,
	FieldLocalConfigurationPaths,
	FieldRemoteConfigurationUrls,
}

// EntryFields are all fields an entry may declare.
var EntryFields = append([]string{FieldExtends}, MergeableFields...)

// Extends describes inheritance from another entry. The zero value means the
// entry inherits nothing.
type Extends struct {
	From   string
	Merge  []string
	Object bool
}

// IsSet reports whether the entry declared an extends target.
func (e Extends) IsSet() bool {
	return e.Object || e.From != ""
}

// MergeFields returns the fields inherited from the parent: every mergeable
// field for the string form, the merge list for the object form.
func (e Extends) MergeFields() []string {
	if !e.Object {
		return MergeableFields
	}
	return e.Merge
}

// raw converts e back to the shape it had in the config file.
func (e Extends) raw() any {
	if !e.Object {
		return e.From
	}
	merge := make([]any, len(e.Merge))
	for i, field := range e.Merge {
		merge[i] = field
	}
	return map[string]any{"from": e.From, "merge": merge}
}

// MarshalJSON writes the string form unless the object form was used.
func (e Extends) MarshalJSON() ([]byte, error) {
	if !e.Object {
		return json.Marshal(e.From)
	}
	merge := e.Merge
	if merge == nil {
		merge = []string{}
	}
	return json.Marshal(struct {
		From  string   `json:"from"`
		Merge []string `json:"merge"`
	}{e.From, merge})
}

func (e Extends) String() string {
	if !e.IsSet() {
		return ""
	}
	if !e.Object {
		return e.From
	}
	return e.From + " (" + strings.Join(e.Merge, ", ") + ")"
}

// Entry is one tool's normalized configuration. Every list is non-nil after
// normalization.
type Entry struct {
	Extends                 Extends  `json:"extends"`
	DepNames                []string `json:"depNames"`
	DevDepNames             []string `json:"devDepNames"`
	LocalConfigurationPaths []string `json:"localConfigurationPaths"`
	RemoteConfigurationUrls []string `json:"remoteConfigurationUrls"`
}

// newEntry returns an entry with every list present and empty.
func newEntry() Entry {
	return Entry{
		DepNames:                []string{},
		DevDepNames:             []string{},
		LocalConfigurationPaths: []string{},
		RemoteConfigurationUrls: []string{},
	}
}

// Field returns the list stored under a mergeable field name.
func (e Entry) Field(name string) []string {
	switch name {
	case FieldDepNames:
		return e.DepNames
	case FieldDevDepNames:
		return e.DevDepNames
	case FieldLocalConfigurationPaths:
		return e.LocalConfigurationPaths
	case FieldRemoteConfigurationUrls:
		return e.RemoteConfigurationUrls
	default:
		return nil
	}
}

func (e *Entry) setField(name string, values []string) {
	switch name {
	case FieldDepNames:
		e.DepNames = values
	case FieldDevDepNames:
		e.DevDepNames = values
	case FieldLocalConfigurationPaths:
		e.LocalConfigurationPaths = values
	case FieldRemoteConfigurationUrls:
		e.RemoteConfigurationUrls = values
	}
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	out := e
	out.Extends.Merge = cloneStrings(e.Extends.Merge)
	for _, field := range MergeableFields {
		out.setField(field, cloneStrings(e.Field(field)))
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Schema maps tool names to their entries.
type Schema map[string]Entry

// Names returns the tool names sorted.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of s.
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	for name, entry := range s {
		out[name] = entry.Clone()
	}
	return out
}

// Select splits the requested tool names into those present in s, in request
// order without duplicates, and those that are missing.
func (s Schema) Select(tools []string) ([]string, []string) {
	var found, missing []string
	seen := make(map[string]bool, len(tools))
	for _, tool := range tools {
		if seen[tool] {
			continue
		}
		seen[tool] = true
		if _, ok := s[tool]; ok {
			found = append(found, tool)
		} else {
			missing = append(missing, tool)
		}
	}
	return found, missing
}
