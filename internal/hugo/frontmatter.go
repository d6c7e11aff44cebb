// Package hugo writes publication bundles into a Hugo content tree.
package hugo

import (
	"fmt"
	"strings"
	"time"

	"bibsite/internal/bundle"
	"bibsite/internal/roster"
)

// FrontMatter renders the TOML front matter document for a record.
// Field presence mirrors the record: empty optional URL fields are
// omitted, absent keywords produce no tags line. publishedAt becomes
// the RFC 3339 publishDate.
func FrontMatter(rec bundle.Record, publishedAt time.Time) string {
	var b strings.Builder
	b.WriteString("+++\n")
	// Sanitized fields already carry their own quote escapes, so
	// values are interpolated verbatim rather than re-quoted.
	fmt.Fprintf(&b, "title = \"%s\"\n", rec.Title)
	fmt.Fprintf(&b, "date = %s-%s-%s\n", rec.Date.Year, rec.Date.Month, rec.Date.Day)
	fmt.Fprintf(&b, "publishDate = %s\n", publishedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "publication_types = [\"%d\"]\n", rec.TypeCode)
	fmt.Fprintf(&b, "abstract = \"%s\"\n", rec.Abstract)
	fmt.Fprintf(&b, "selected = %t\n", rec.Selected)
	fmt.Fprintf(&b, "publication = \"%s\"\n", rec.Venue)

	if rec.Tags != nil {
		quoted := make([]string, len(rec.Tags))
		for i, tag := range rec.Tags {
			quoted[i] = `"` + tag + `"`
		}
		fmt.Fprintf(&b, "tags = [%s]\n", strings.Join(quoted, ", "))
	}

	if rec.URL != "" {
		fmt.Fprintf(&b, "url_url = \"%s\"\n", rec.URL)
	}
	if rec.DOIURL != "" {
		fmt.Fprintf(&b, "url_doi = \"%s\"\n", rec.DOIURL)
	}
	if rec.PDFURL != "" {
		fmt.Fprintf(&b, "url_pdf = \"%s\"\n", rec.PDFURL)
	}
	fmt.Fprintf(&b, "url_bib = \"%s\"\n", rec.BibURL)

	for _, a := range rec.Authors {
		b.WriteString("\n[[authors]]\n")
		fmt.Fprintf(&b, "    name = \"%s\"\n", a.Display)
		switch a.Match.Kind {
		case roster.Member:
			b.WriteString("    is_member = true\n")
			fmt.Fprintf(&b, "    link = \"/%s\"\n", a.Match.Link)
		case roster.Alumni:
			b.WriteString("    is_former_member = true\n")
			fmt.Fprintf(&b, "    link = \"/alumni/%s\"\n", a.Match.Link)
		default:
			b.WriteString("    is_member = false\n")
			b.WriteString("    link = \"\"\n")
		}
	}

	b.WriteString("+++\n")
	return b.String()
}
