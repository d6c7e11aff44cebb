package bundle

import (
	"fmt"
	"strings"

	"bibsite/internal/bibtex"
	"bibsite/internal/sanitize"
)

// typeCodes maps BibTeX entry types to publication type codes.
// Unknown types fall through to 0 ("other").
var typeCodes = map[string]int{
	"article":       2,
	"book":          5,
	"inbook":        6,
	"incollection":  6,
	"inproceedings": 1,
	"manual":        4,
	"mastersthesis": 7,
	"misc":          0,
	"phdthesis":     7,
	"proceedings":   0,
	"techreport":    4,
	"unpublished":   3,
	"patent":        8,
}

// Classify maps a BibTeX entry type to its publication type code.
func Classify(entryType string) int {
	return typeCodes[strings.ToLower(entryType)]
}

// Venue builds the publication source string. Exactly one branch
// fires, in fixed priority order: proceedings title, then journal,
// then publisher; otherwise the venue is empty.
func Venue(e bibtex.Entry, year string) string {
	switch {
	case e.Has("booktitle"):
		return "*" + sanitize.Clean(e.Field("booktitle")) + "*"
	case e.Has("journal"):
		journal := sanitize.Clean(e.Field("journal"))
		pages := e.Field("pages")
		if vol := e.Field("volume"); vol != "" {
			return fmt.Sprintf("%s **%s**, %s (%s).", journal, vol, pages, year)
		}
		return fmt.Sprintf("%s %s (%s).", journal, pages, year)
	case e.Has("publisher"):
		return "*" + sanitize.Clean(e.Field("publisher")) + "*"
	}
	return ""
}
