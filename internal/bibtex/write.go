package bibtex

import (
	"fmt"
	"sort"
	"strings"
)

// fieldOrder is the canonical field ordering for written records;
// fields not listed follow alphabetically.
var fieldOrder = []string{
	"title", "author", "editor", "booktitle", "journal", "publisher",
	"volume", "pages", "year", "month", "date", "doi", "url", "pdf",
	"keywords", "abstract",
}

// Format renders an entry as a BibTeX record for the citation file.
// The record preserves field values verbatim; only the field order is
// canonicalized.
func Format(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", e.Type, e.Key)

	written := make(map[string]bool, len(e.Fields))
	for _, name := range fieldOrder {
		if value, ok := e.Fields[name]; ok {
			fmt.Fprintf(&b, "  %s = {%s},\n", name, value)
			written[name] = true
		}
	}

	var rest []string
	for name := range e.Fields {
		if !written[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		fmt.Fprintf(&b, "  %s = {%s},\n", name, e.Fields[name])
	}

	b.WriteString("}\n")
	return b.String()
}
