// Package sliceutil provides generic helpers for working with slices.
package sliceutil

import "slices"

// Contains reports whether item is present in slice.
func Contains[T comparable](slice []T, item T) bool {
	return slices.Contains(slice, item)
}

// Unique returns the elements of slice without duplicates, keeping the first
// occurrence of each. The result is never nil.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Union returns Unique(a ++ b).
func Union[T comparable](a, b []T) []T {
	combined := make([]T, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return Unique(combined)
}

// Intersect returns the elements of superset that also appear in subset,
// in superset order.
func Intersect[T comparable](superset, subset []T) []T {
	return filterBy(superset, subset, true)
}

// Without returns the elements of superset that do not appear in subset,
// in superset order.
func Without[T comparable](superset, subset []T) []T {
	return filterBy(superset, subset, false)
}

func filterBy[T comparable](superset, subset []T, keep bool) []T {
	lookup := make(map[T]struct{}, len(subset))
	for _, item := range subset {
		lookup[item] = struct{}{}
	}
	result := make([]T, 0, len(superset))
	for _, item := range superset {
		if _, ok := lookup[item]; ok == keep {
			result = append(result, item)
		}
	}
	return result
}
