package utils

import "strings"

// FilterByQuery returns the items whose searchable fields contain the query
// as a case-insensitive substring. The input slice is never mutated and the
// relative order of matches is preserved. An empty query matches everything.
func FilterByQuery[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}

	q := strings.ToLower(query)
	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), q) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
