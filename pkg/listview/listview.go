// Package listview implements the shared mechanics of a resource list view:
// a fetched collection reduced to a visible subset by a free-text search term
// and structured filters. Filtering is pure and synchronous; an empty term or
// filter always matches.
package listview

import "strings"

// MatchText reports whether any of the fields case-insensitively contains
// term. An empty term matches everything.
func MatchText(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchEnum reports whether value equals the filter exactly. An empty filter
// matches everything.
func MatchEnum(filter, value string) bool {
	return filter == "" || filter == value
}

// MatchIntRange reports whether v lies within the optional [min, max] bounds.
func MatchIntRange(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// MatchBool reports whether value equals the optional filter.
func MatchBool(filter *bool, value bool) bool {
	return filter == nil || *filter == value
}

// MatchID reports whether id equals the optional exact-match filter.
func MatchID(filter *int64, id int64) bool {
	return filter == nil || *filter == id
}

// Visible returns the elements of items for which keep is true. The source
// slice is never mutated; the result is a fresh slice so the caller can
// recompute it whenever the collection, search term, or filters change.
func Visible[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
