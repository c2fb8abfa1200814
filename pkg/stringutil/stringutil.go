// Package stringutil provides small string helpers shared by the CLI and
// the validators.
package stringutil

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Truncate shortens s to at most maxLen runes, replacing the tail with
// "..." when there is room for it.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:max(maxLen, 0)])
	}
	return string(runes[:maxLen-3]) + "..."
}

// GrammaticalList joins words into a sentence fragment using conjunction
// before the last word: ["a"] -> "a", ["a", "b"] -> "a or b",
// ["a", "b", "c"] -> "a, b, or c".
func GrammaticalList(words []string, conjunction string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + conjunction + " " + words[1]
	}
	head := strings.Join(words[:len(words)-1], ", ")
	return head + ", " + conjunction + " " + words[len(words)-1]
}

// Pluralize returns word with an "s" appended unless count is one.
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// BaseName returns the final element of a local path or of a URL's path,
// ignoring any query string or fragment. It returns "" when there is none.
func BaseName(pathOrURL string) string {
	if u, err := url.Parse(pathOrURL); err == nil && u.Scheme != "" && u.Host != "" {
		base := path.Base(u.Path)
		if base == "/" || base == "." {
			return ""
		}
		return base
	}
	base := filepath.Base(pathOrURL)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return base
}
