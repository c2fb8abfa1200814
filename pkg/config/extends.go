package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
	"github.com/OlaoluwaM/scaffy/pkg/sliceutil"
	"github.com/OlaoluwaM/scaffy/pkg/validator"
)

var extendsLog = logger.New("config:extends")

// ResolveExtensions applies extends inheritance and returns a new schema; the
// input is not modified.
//
// A child inherits from its parent after the parent has inherited from its
// own parent, so chains resolve transitively. For each inherited field the
// result is the parent's values followed by the child's, without duplicates.
// Entries with an invalid target, and entries on an extends cycle, are left
// as they are and reported as warnings.
func ResolveExtensions(schema Schema) (Schema, Report) {
	var report Report
	resolved := schema.Clone()
	names := schema.Names()

	parents := validTargets(schema, names, &report)
	cyclic := findCycles(parents, names, &report)

	done := make(map[string]bool, len(names))
	var resolve func(name string)
	resolve = func(name string) {
		if done[name] {
			return
		}
		done[name] = true

		parent, ok := parents[name]
		if !ok || cyclic[name] {
			return
		}
		resolve(parent)

		extendsLog.Printf("Merging %s into %s", parent, name)
		resolved[name] = inherit(resolved[parent], resolved[name])
	}

	for _, name := range names {
		resolve(name)
	}

	return resolved, report
}

// validTargets maps each entry with a valid extends target to that target.
func validTargets(schema Schema, names []string, report *Report) map[string]string {
	parents := make(map[string]string)
	for _, name := range names {
		ext := schema[name].Extends
		if !ext.IsSet() {
			continue
		}

		candidates := slices.DeleteFunc(slices.Clone(names), func(other string) bool { return other == name })
		path := validator.Root(name).Append(validator.Property(FieldExtends))
		res := validator.Validate(extendsTarget(candidates), ext.raw(), path)
		if !res.Valid {
			extendsLog.Printf("Ignoring extends on %s: %v", name, res.Issues())
			report.warn(name, "extends ignored: "+targetProblem(name, ext.From, candidates), res.Issues()...)
			continue
		}
		parents[name] = ext.From
	}
	return parents
}

func targetProblem(name, target string, candidates []string) string {
	switch {
	case target == name:
		return "an entry cannot extend itself"
	case !slices.Contains(candidates, target):
		return "no entry named " + strconv.Quote(target)
	default:
		return "malformed extends declaration"
	}
}

// findCycles returns every entry on an extends cycle, warning once per cycle.
// Each entry has at most one parent, so following parents from any entry
// either ends or loops.
func findCycles(parents map[string]string, names []string, report *Report) map[string]bool {
	cyclic := make(map[string]bool)
	visited := make(map[string]bool)

	for _, start := range names {
		if visited[start] {
			continue
		}

		position := make(map[string]int)
		var chain []string
		current := start
		for {
			if idx, onChain := position[current]; onChain {
				cycle := chain[idx:]
				for _, member := range cycle {
					cyclic[member] = true
				}
				members := append(slices.Clone(cycle), current)
				extendsLog.Printf("Detected extends cycle: %v", members)
				for _, member := range cycle {
					report.warn(member, "extends ignored: cycle "+strings.Join(members, " -> "))
				}
				break
			}
			if visited[current] {
				break
			}
			visited[current] = true
			position[current] = len(chain)
			chain = append(chain, current)

			parent, ok := parents[current]
			if !ok {
				break
			}
			current = parent
		}
	}
	return cyclic
}

// inherit returns child with the parent's values prepended to each field it
// merges.
func inherit(parent, child Entry) Entry {
	merged := child.Clone()
	for _, field := range child.Extends.MergeFields() {
		merged.setField(field, sliceutil.Union(parent.Field(field), child.Field(field)))
	}
	return merged
}
