package validator

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
)

// Kind is the broad type a validator expects.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

func (k Kind) withArticle() string {
	switch k {
	case KindArray, KindObject:
		return "an " + k.String()
	default:
		return "a " + k.String()
	}
}

// matches reports whether v has kind k.
func (k Kind) matches(v any) bool {
	switch k {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		return isNumber(v)
	case KindArray:
		rv := reflect.ValueOf(v)
		return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
	case KindObject:
		rv := reflect.ValueOf(v)
		return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
	default:
		return false
	}
}

// isEmpty assumes v already matches k. Numbers are never empty.
func (k Kind) isEmpty(v any) bool {
	switch k {
	case KindString:
		return v.(string) == ""
	case KindNumber:
		return false
	case KindArray, KindObject:
		return reflect.ValueOf(v).Len() == 0
	default:
		return false
	}
}

func isNumber(v any) bool {
	switch n := v.(type) {
	case json.Number:
		// Out of range literals such as 1e999 are still numbers (±Inf).
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return errors.Is(err, strconv.ErrRange)
		}
		return !math.IsNaN(f)
	case nil:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(rv.Float())
	default:
		return false
	}
}

// elements returns the items of an array-kind value.
func elements(v any) []any {
	rv := reflect.ValueOf(v)
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

// entries returns an object-kind value as a fresh map[string]any.
func entries(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for key, val := range m {
			out[key] = val
		}
		return out
	}

	rv := reflect.ValueOf(v)
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}

// AsArray returns the elements of v when v is array-kind.
func AsArray(v any) ([]any, bool) {
	if !KindArray.matches(v) {
		return nil, false
	}
	return elements(v), true
}

// AsObject returns a copy of v as map[string]any when v is object-kind.
func AsObject(v any) (map[string]any, bool) {
	if !KindObject.matches(v) {
		return nil, false
	}
	return entries(v), true
}
