// Package bundle assembles one output record per bibliography entry.
// Assembly is pure composition over already-loaded data: all I/O
// (roster loading, abstract fallback files, writing) belongs to the
// caller.
package bundle

import (
	"strings"
	"unicode"

	"bibsite/internal/authors"
	"bibsite/internal/bibtex"
	"bibsite/internal/pubdate"
	"bibsite/internal/roster"
	"bibsite/internal/sanitize"
	"bibsite/internal/slug"
)

// DefaultPublicationDir is the content subdirectory used when the
// configuration leaves it empty.
const DefaultPublicationDir = "publication"

// Config is the per-run configuration consumed by the assembler.
type Config struct {
	Featured       bool   // mark every record as selected
	NormalizeTags  bool   // lowercase keywords, capitalize first letter
	PublicationDir string // content subdirectory for URL construction

	// FallbackAbstract supplies the abstract when the entry has no
	// abstract field (read by the caller from a sidecar file).
	FallbackAbstract string

	// FallbackDOI supplies a DOI when the entry has no doi field
	// (extracted by the caller from the linked PDF).
	FallbackDOI string
}

// Record is the assembled bundle content for one entry. Optional
// fields stay empty when the entry cannot supply them; Tags is nil
// when the entry has no keywords at all.
type Record struct {
	Key      string
	Slug     string
	Title    string
	Date     pubdate.Date
	TypeCode int
	Abstract string
	Selected bool
	Venue    string
	Tags     []string
	URL      string
	DOIURL   string
	PDFURL   string
	BibURL   string
	Authors  []authors.Author
}

// Assemble composes the output record for one entry. Warnings report
// recovered per-entry problems (unresolvable year, bad month text);
// the record is always complete and usable.
func Assemble(e bibtex.Entry, members, alumni *roster.Index, cfg Config) (Record, []string) {
	pubDir := cfg.PublicationDir
	if pubDir == "" {
		pubDir = DefaultPublicationDir
	}

	date, warns := pubdate.Resolve(e.Field("date"), e.Field("month"), e.Field("year"))

	rec := Record{
		Key:      e.Key,
		Slug:     slug.Make(e.Key),
		Title:    sanitize.Clean(e.Field("title")),
		Date:     date,
		TypeCode: Classify(e.Type),
		Selected: cfg.Featured,
		Venue:    Venue(e, date.Year),
	}
	rec.BibURL = "bib/" + pubDir + "/" + rec.Slug + ".bib"

	switch {
	case e.Has("abstract"):
		rec.Abstract = sanitize.CleanAbstract(e.Field("abstract"))
	case cfg.FallbackAbstract != "":
		rec.Abstract = sanitize.CleanAbstract(cfg.FallbackAbstract)
	}

	if e.Has("keywords") {
		rec.Tags = Tags(e.Field("keywords"), cfg.NormalizeTags)
	}
	if e.Has("url") {
		rec.URL = sanitize.Clean(e.Field("url"))
	}
	switch {
	case e.Has("doi"):
		rec.DOIURL = "https://doi.org/" + e.Field("doi")
	case cfg.FallbackDOI != "":
		rec.DOIURL = "https://doi.org/" + cfg.FallbackDOI
	}
	if e.Has("pdf") {
		rec.PDFURL = "pdf/" + pubDir + "/" + e.Field("pdf")
	}

	field := e.Field("author")
	if field == "" {
		field = e.Field("editor")
	}
	if field != "" {
		rec.Authors = authors.Parse(field, members, alumni)
	}

	return rec, warns
}

// Tags splits a sanitized keyword field on commas. With normalize set,
// each tag is lowercased and its first character capitalized.
func Tags(keywords string, normalize bool) []string {
	parts := strings.Split(sanitize.Clean(keywords), ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if normalize {
			tag = capitalize(strings.ToLower(tag))
		}
		tags = append(tags, tag)
	}
	return tags
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
