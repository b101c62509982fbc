// Package lookup resolves cross-service identifier references to display
// labels. The backends do not embed related records, so every foreign key is
// resolved client-side against an independently fetched collection; a
// dangling identifier degrades to an "ID: n" fallback rather than an error.
package lookup

import "fmt"

// Table maps record identifiers to their display labels.
type Table map[int64]string

// Label returns the label for id, or the "ID: n" fallback when the id is not
// present in the table.
func (t Table) Label(id int64) string {
	if s, ok := t[id]; ok && s != "" {
		return s
	}
	return fmt.Sprintf("ID: %d", id)
}

// LabelPtr is Label for optional references; a nil id renders as empty.
func (t Table) LabelPtr(id *int64) string {
	if id == nil {
		return ""
	}
	return t.Label(*id)
}

// Build constructs a Table from any collection given an id and label
// extractor per element.
func Build[T any](items []T, id func(T) int64, label func(T) string) Table {
	t := make(Table, len(items))
	for _, it := range items {
		t[id(it)] = label(it)
	}
	return t
}
