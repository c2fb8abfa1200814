package config

import "github.com/OlaoluwaM/scaffy/pkg/validator"

// stringList validates the four list fields.
var stringList = validator.Array(validator.String(), validator.AllowEmpty(true))

// extendsMerge validates the merge list of the object form of extends.
var extendsMerge = validator.Array(validator.String(validator.OneOf(MergeableFields...)))

// extendsShape accepts "", a tool name, or {from, merge}.
var extendsShape = validator.Or(
	validator.String(validator.AllowEmpty(true)),
	validator.Object(validator.Fields{
		"from":  validator.String(),
		"merge": extendsMerge,
	}),
)

func entryFields() validator.Fields {
	return validator.Fields{
		FieldExtends:                 extendsShape,
		FieldDepNames:                stringList,
		FieldDevDepNames:             stringList,
		FieldLocalConfigurationPaths: stringList,
		FieldRemoteConfigurationUrls: stringList,
	}
}

// entryValidator salvages the valid fields of an entry.
var entryValidator = validator.Object(entryFields(), validator.FilterViolations(true), validator.AllowEmpty(false))

// entryChecker reports every problem in an entry without filtering.
var entryChecker = validator.Object(entryFields())

// entryShape only checks that an entry is a non-empty object.
var entryShape = validator.Object(validator.Fields{}, validator.AllowEmpty(false))

// extendsTarget validates an extends declaration against the names of the
// other entries. With no candidates every target is rejected.
func extendsTarget(candidates []string) validator.Validator {
	target := validator.Or()
	if len(candidates) > 0 {
		target = validator.String(validator.OneOf(candidates...))
	}
	return validator.Or(
		target,
		validator.Object(validator.Fields{
			"from":  target,
			"merge": extendsMerge,
		}),
	)
}
