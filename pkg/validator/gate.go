package validator

// check runs the shared kind and emptiness tests and, only when both pass,
// the kind-specific refinement. A nil refine accepts the value as is.
func check(kind Kind, opts Options, in Input, refine func() Result) Result {
	if !kind.matches(in.Value) {
		return NewResult(in.Value, []ValidationError{newError(in.Path, "is not "+kind.withArticle())})
	}

	if !opts.AllowEmpty && kind.isEmpty(in.Value) {
		return NewResult(in.Value, []ValidationError{newError(in.Path, "is an empty "+kind.String())})
	}

	if refine == nil {
		return NewResult(in.Value, nil)
	}
	return refine()
}
