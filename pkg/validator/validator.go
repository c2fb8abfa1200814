// Package validator provides composable, stateless validators for decoded
// configuration data.
//
// # Model
//
// A Validator is a pure function from an Input (a value plus the Path at which
// it was found) to a Result. Validators never panic and never return Go
// errors: every problem is reported as a ValidationError inside the Result.
// Because they hold no mutable state they are safe for concurrent use.
//
// # Available Validators
//
//   - String() - accepts strings, optionally restricted with OneOf
//   - Number() - accepts any Go integer or float (NaN excluded) and json.Number
//   - Array() - accepts slices and arrays, validating each element
//   - Object() - accepts string-keyed maps, validating each schema key
//   - Or() - accepts a value when any of its alternatives does
//
// Every validator first checks the value kind and emptiness and only then runs
// its refinement, so a value of the wrong kind never produces option or
// element errors.
//
// # Filtering
//
// Object(schema, FilterViolations(true)) salvages partially valid objects: the
// top-level properties that failed are removed from a copy of the object and
// the copy is returned as valid, unless no properties remain.
package validator

import "errors"

// Validator checks a value and reports every problem it finds.
type Validator func(in Input) Result

// Input is the value under validation and where it was found.
type Input struct {
	Value any
	Path  Path
}

// Result is the outcome of running a Validator.
//
// Valid is true exactly when Errors is empty; build results with NewResult to
// keep that true.
type Result struct {
	Value  any
	Valid  bool
	Errors []ValidationError
}

// NewResult builds a Result, deriving Valid from errs.
func NewResult(value any, errs []ValidationError) Result {
	return Result{
		Value:  value,
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// Issues returns the human readable issue of every error, in order.
func (r Result) Issues() []string {
	issues := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		issues = append(issues, e.Issue)
	}
	return issues
}

// Err returns nil for a valid result, otherwise all errors joined.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Validate runs v against value rooted at path.
func Validate(v Validator, value any, path Path) Result {
	return v(Input{Value: value, Path: path})
}
