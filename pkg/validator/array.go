package validator

// Array validates every element of a slice or array with element. Each
// invalid element contributes one error: the element path with the element's
// first issue. The value itself is returned unchanged.
func Array(element Validator, opts ...Option) Validator {
	resolved := resolveOptions(KindArray, opts)

	return func(in Input) Result {
		return check(KindArray, resolved, in, func() Result {
			var errs []ValidationError
			for i, item := range elements(in.Value) {
				itemPath := in.Path.Append(Index(i))
				res := element(Input{Value: item, Path: itemPath})
				if res.Valid {
					continue
				}
				if len(res.Errors) == 0 {
					errs = append(errs, newError(itemPath, "is invalid"))
					continue
				}
				errs = append(errs, ValidationError{Path: itemPath, Issue: res.Errors[0].Issue})
			}
			return NewResult(in.Value, errs)
		})
	}
}
