package validator

import (
	"sort"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

var objectLog = logger.New("validator:object")

// Fields maps property names to the validator for that property.
type Fields map[string]Validator

// Names returns the field names sorted.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Object validates the properties named in schema. Properties not in schema
// are ignored. Missing properties are reported as not existing.
//
// With FilterViolations(true) the failing top-level properties are removed
// from a copy of the object and the copy is returned without errors; if the
// copy ends up with no properties, a single error is reported at the object's
// own path instead.
func Object(schema Fields, opts ...Option) Validator {
	resolved := resolveOptions(KindObject, opts)
	names := schema.Names()

	return func(in Input) Result {
		return check(KindObject, resolved, in, func() Result {
			props := entries(in.Value)

			var errs []ValidationError
			for _, name := range names {
				propPath := in.Path.Append(Property(name))
				value, ok := props[name]
				if !ok {
					errs = append(errs, newError(propPath, "does not exist in object"))
					continue
				}
				if res := schema[name](Input{Value: value, Path: propPath}); !res.Valid {
					errs = append(errs, res.Errors...)
				}
			}

			if !resolved.FilterViolations {
				return NewResult(in.Value, errs)
			}
			return filterViolations(in.Path, props, errs)
		})
	}
}

// filterViolations strips from props every property that an error in errs
// belongs to. props is already a private copy.
func filterViolations(objectPath Path, props map[string]any, errs []ValidationError) Result {
	depth := len(objectPath)
	for _, e := range errs {
		if name, ok := e.Property(depth); ok {
			delete(props, name)
		}
	}

	if len(errs) > 0 {
		objectLog.Printf("Filtered %d violation(s) at %q, %d properties left", len(errs), objectPath.String(), len(props))
	}

	if len(props) == 0 {
		return NewResult(props, []ValidationError{newError(objectPath, "Object contained only invalid properties")})
	}
	return NewResult(props, nil)
}
