package validator

import (
	"slices"

	"github.com/OlaoluwaM/scaffy/pkg/stringutil"
)

// String validates strings. With OneOf the value must be one of the listed
// strings.
func String(opts ...Option) Validator {
	resolved := resolveOptions(KindString, opts)

	return func(in Input) Result {
		return check(KindString, resolved, in, func() Result {
			if len(resolved.OneOf) == 0 || slices.Contains(resolved.OneOf, in.Value.(string)) {
				return NewResult(in.Value, nil)
			}
			return NewResult(in.Value, []ValidationError{newError(in.Path, optionMismatch(resolved.OneOf))})
		})
	}
}

// Number validates numbers.
func Number(opts ...Option) Validator {
	resolved := resolveOptions(KindNumber, opts)

	return func(in Input) Result {
		return check(KindNumber, resolved, in, nil)
	}
}

func optionMismatch(options []string) string {
	if len(options) == 1 {
		return "is not " + options[0]
	}
	return "is neither " + stringutil.GrammaticalList(options, "or")
}
