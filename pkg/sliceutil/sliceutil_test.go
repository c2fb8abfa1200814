//go:build !integration

package sliceutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		item     string
		expected bool
	}{
		{"item exists in slice", []string{"apple", "banana", "cherry"}, "banana", true},
		{"item does not exist in slice", []string{"apple", "banana", "cherry"}, "grape", false},
		{"empty slice", []string{}, "apple", false},
		{"nil slice", nil, "apple", false},
		{"empty string item exists", []string{"", "apple"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Contains(tt.slice, tt.item),
				"Contains should return correct value for slice %v and item %q", tt.slice, tt.item)
		})
	}
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"duplicates keep first occurrence", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"nil input gives empty slice", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unique(tt.in)
			assert.Equal(t, tt.expected, got)
			assert.NotNil(t, got, "Unique should never return nil")
		})
	}
}

func TestUnion(t *testing.T) {
	got := Union([]string{"x", "shared"}, []string{"shared", "y", "y"})
	assert.Equal(t, []string{"x", "shared", "y"}, got, "Union keeps first-slice order then appends new items")
}

func TestIntersectAndWithout(t *testing.T) {
	requested := []string{"eslint", "missing", "prettier", "eslint"}
	available := []string{"prettier", "eslint", "jest"}

	assert.Equal(t, []string{"eslint", "prettier", "eslint"}, Intersect(requested, available))
	assert.Equal(t, []string{"missing"}, Without(requested, available))
	assert.Empty(t, Intersect(requested, nil))
	assert.Equal(t, requested, Without(requested, nil))
}
