// Package search implements the prefix index used for starts-with lookups
// of tenant names. Firestore cannot answer prefix queries directly, so
// every left-anchored prefix of the normalized name is stored on the
// tenant document and probed with an array-contains query.
package search

import "strings"

// Normalize lower-cases and trims the term the same way at index and at
// query time, which makes the search case-insensitive.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BuildPrefixes returns every left-anchored prefix of the normalized name
// in increasing length order: "Cat " -> ["c", "ca", "cat"].
func BuildPrefixes(name string) []string {
	name = Normalize(name)
	prefixes := make([]string, 0, len(name))
	var current strings.Builder
	for _, ch := range name {
		current.WriteRune(ch)
		prefixes = append(prefixes, current.String())
	}
	return prefixes
}
