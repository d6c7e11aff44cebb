// Package bibtex parses and formats BibTeX bibliography records.
package bibtex

import "strings"

// Entry is one bibliography record: an entry type tag, a citation key,
// and a field map keyed by lowercased field name. Entries are
// read-only once parsed.
type Entry struct {
	Type   string
	Key    string
	Fields map[string]string
}

// Field returns the value for a field name, matched case-insensitively.
func (e Entry) Field(name string) string {
	return e.Fields[strings.ToLower(name)]
}

// Has reports whether the entry carries a field, even if empty.
func (e Entry) Has(name string) bool {
	_, ok := e.Fields[strings.ToLower(name)]
	return ok
}
