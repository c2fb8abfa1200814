package config

import (
	"sort"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
	"github.com/OlaoluwaM/scaffy/pkg/validator"
)

var normalizeLog = logger.New("config:normalize")

// Normalize validates every entry of a decoded config and returns the entries
// that survived, with defaults filled in.
//
// Entries that are not objects, are empty, or have nothing left once invalid
// fields are stripped are dropped. Properties that are not entry fields do not
// count as invalid, so an entry holding only those survives with defaults. Each drop
// is recorded as a notice in the returned Report; nothing here is fatal.
func Normalize(raw map[string]any) (Schema, Report) {
	var report Report
	schema := make(Schema, len(raw))

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := raw[name]
		root := validator.Root(name)

		if res := validator.Validate(entryShape, value, root); !res.Valid {
			normalizeLog.Printf("Dropping %s: %v", name, res.Issues())
			report.notice(name, "entry ignored", res.Issues()...)
			continue
		}

		recordStrippedFields(&report, name, value)

		res := validator.Validate(entryValidator, value, root)
		if !res.Valid {
			normalizeLog.Printf("Dropping %s: no valid properties", name)
			report.notice(name, "entry ignored", res.Issues()...)
			continue
		}

		props, _ := validator.AsObject(res.Value)
		entry := buildEntry(props)
		schema[name] = entry
	}

	normalizeLog.Printf("Normalized %d of %d entries", len(schema), len(raw))
	return schema, report
}

// recordStrippedFields adds a notice for every declared field that fails
// validation. Missing fields are not worth reporting; they get defaults.
func recordStrippedFields(report *Report, name string, value any) {
	props, _ := validator.AsObject(value)
	res := validator.Validate(entryChecker, value, validator.Root(name))

	byField := make(map[string][]string)
	var order []string
	for _, e := range res.Errors {
		field, ok := e.Property(1)
		if !ok {
			continue
		}
		if _, declared := props[field]; !declared {
			continue
		}
		if _, seen := byField[field]; !seen {
			order = append(order, field)
		}
		byField[field] = append(byField[field], e.Issue)
	}

	for _, field := range order {
		report.notice(name, "field "+field+" ignored", byField[field]...)
	}
}

// buildEntry merges filtered properties over the defaults of newEntry.
func buildEntry(props map[string]any) Entry {
	entry := newEntry()

	if raw, ok := props[FieldExtends]; ok {
		entry.Extends = buildExtends(raw)
	}

	for _, field := range MergeableFields {
		if raw, ok := props[field]; ok {
			entry.setField(field, toStrings(raw))
		}
	}

	return entry
}

func buildExtends(raw any) Extends {
	if from, ok := raw.(string); ok {
		return Extends{From: from}
	}
	obj, ok := validator.AsObject(raw)
	if !ok {
		return Extends{}
	}
	from, _ := obj["from"].(string)
	return Extends{From: from, Merge: toStrings(obj["merge"]), Object: true}
}

// toStrings converts an already validated array of strings.
func toStrings(raw any) []string {
	items, _ := validator.AsArray(raw)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
