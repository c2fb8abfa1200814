package validator

// Or accepts a value when any alternative does. The first valid result is
// returned as is; otherwise the errors of every alternative are returned in
// argument order. Or() with no alternatives rejects everything.
func Or(validators ...Validator) Validator {
	return func(in Input) Result {
		if len(validators) == 0 {
			return NewResult(in.Value, []ValidationError{newError(in.Path, "is not one of the permitted alternatives")})
		}

		var errs []ValidationError
		for _, v := range validators {
			res := v(in)
			if res.Valid {
				return res
			}
			errs = append(errs, res.Errors...)
		}
		return NewResult(in.Value, errs)
	}
}
