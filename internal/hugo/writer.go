package hugo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bibsite/internal/bundle"
)

// Writer persists bundles into the content and static trees. The
// skip/overwrite decision happens here, before the core assembles
// anything; the core itself never touches the filesystem.
type Writer struct {
	ContentDir string
	StaticDir  string
	PubDir     string
	Overwrite  bool
	DryRun     bool

	// Now supplies the publishDate timestamp; defaults to time.Now.
	Now func() time.Time
}

// BundlePath returns the Markdown bundle path for a slug.
func (w *Writer) BundlePath(slug string) string {
	return filepath.Join(w.ContentDir, w.PubDir, slug+".md")
}

// CitationPath returns the citation record path for a slug.
func (w *Writer) CitationPath(slug string) string {
	return filepath.Join(w.StaticDir, "bib", w.PubDir, slug+".bib")
}

// AbstractPath returns the sidecar abstract file path for a slug.
func (w *Writer) AbstractPath(slug string) string {
	return filepath.Join(w.StaticDir, "bib", w.PubDir, slug+".abs")
}

// ShouldSkip reports whether an existing bundle blocks this slug.
func (w *Writer) ShouldSkip(slug string) bool {
	if w.Overwrite {
		return false
	}
	_, err := os.Stat(w.BundlePath(slug))
	return err == nil
}

// FallbackAbstract reads the sidecar abstract file for a slug,
// returning "" when there is none.
func (w *Writer) FallbackAbstract(slug string) string {
	data, err := os.ReadFile(w.AbstractPath(slug))
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(data), "\n")
}

// Write renders and persists the bundle and its citation record. In
// dry-run mode nothing is written. The rendered front matter document
// is returned so callers can checksum it.
func (w *Writer) Write(rec bundle.Record, citation string) (string, error) {
	now := w.Now
	if now == nil {
		now = time.Now
	}
	doc := FrontMatter(rec, now()) + "\n"

	if w.DryRun {
		return doc, nil
	}

	citePath := w.CitationPath(rec.Slug)
	if err := os.MkdirAll(filepath.Dir(citePath), 0755); err != nil {
		return "", fmt.Errorf("creating citation dir: %w", err)
	}
	if err := os.WriteFile(citePath, []byte(citation), 0644); err != nil {
		return "", fmt.Errorf("writing citation: %w", err)
	}

	mdPath := w.BundlePath(rec.Slug)
	if err := os.MkdirAll(filepath.Dir(mdPath), 0755); err != nil {
		return "", fmt.Errorf("creating bundle dir: %w", err)
	}
	if err := os.WriteFile(mdPath, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("writing bundle: %w", err)
	}

	return doc, nil
}
