package validator

import "slices"

// Options tunes a validator. Fields that mean nothing for a kind are ignored:
// FilterViolations only affects Object and OneOf only affects String.
type Options struct {
	AllowEmpty       bool
	FilterViolations bool
	OneOf            []string
}

// Option adjusts Options.
type Option func(*Options)

// AllowEmpty controls whether "", [] and {} are accepted.
func AllowEmpty(allow bool) Option {
	return func(o *Options) {
		o.AllowEmpty = allow
	}
}

// FilterViolations makes Object strip failing properties instead of failing.
func FilterViolations(filter bool) Option {
	return func(o *Options) {
		o.FilterViolations = filter
	}
}

// OneOf restricts String to the listed values. An empty list means any string.
func OneOf(values ...string) Option {
	return func(o *Options) {
		o.OneOf = slices.Clone(values)
	}
}

// defaultOptions is read-only; resolveOptions copies a row before use.
var defaultOptions = map[Kind]Options{
	KindString: {AllowEmpty: true},
	KindNumber: {AllowEmpty: true},
	KindArray:  {AllowEmpty: true},
	KindObject: {AllowEmpty: true, FilterViolations: false},
}

func resolveOptions(kind Kind, opts []Option) Options {
	resolved := defaultOptions[kind]
	resolved.OneOf = slices.Clone(resolved.OneOf)
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}
	return resolved
}
