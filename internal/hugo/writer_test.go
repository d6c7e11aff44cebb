package hugo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bibsite/internal/bundle"
	"bibsite/internal/pubdate"
)

func testWriter(t *testing.T) *Writer {
	t.Helper()
	dir := t.TempDir()
	return &Writer{
		ContentDir: filepath.Join(dir, "content"),
		StaticDir:  filepath.Join(dir, "static"),
		PubDir:     "publication",
		Now:        func() time.Time { return testTime },
	}
}

func testRecord() bundle.Record {
	return bundle.Record{
		Key:    "Smith_2020",
		Slug:   "smith-2020",
		Title:  "A Study",
		Date:   pubdate.Date{Year: "2020", Month: "01", Day: "01"},
		BibURL: "bib/publication/smith-2020.bib",
	}
}

func TestWriteCreatesBundle(t *testing.T) {
	w := testWriter(t)
	rec := testRecord()

	doc, err := w.Write(rec, "@article{Smith_2020,\n}\n")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	md, err := os.ReadFile(w.BundlePath(rec.Slug))
	if err != nil {
		t.Fatalf("reading bundle: %v", err)
	}
	if string(md) != doc {
		t.Error("written bundle differs from returned document")
	}

	cite, err := os.ReadFile(w.CitationPath(rec.Slug))
	if err != nil {
		t.Fatalf("reading citation: %v", err)
	}
	if !strings.HasPrefix(string(cite), "@article{Smith_2020,") {
		t.Errorf("citation = %q", cite)
	}
}

func TestWriteDryRun(t *testing.T) {
	w := testWriter(t)
	w.DryRun = true
	rec := testRecord()

	doc, err := w.Write(rec, "@article{Smith_2020,\n}\n")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if doc == "" {
		t.Error("dry run should still render the document")
	}
	if _, err := os.Stat(w.BundlePath(rec.Slug)); !os.IsNotExist(err) {
		t.Error("dry run must not write the bundle")
	}
	if _, err := os.Stat(w.CitationPath(rec.Slug)); !os.IsNotExist(err) {
		t.Error("dry run must not write the citation")
	}
}

func TestShouldSkip(t *testing.T) {
	w := testWriter(t)
	rec := testRecord()

	if w.ShouldSkip(rec.Slug) {
		t.Error("nothing written yet, should not skip")
	}
	if _, err := w.Write(rec, "@article{x,\n}\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !w.ShouldSkip(rec.Slug) {
		t.Error("existing bundle without overwrite should skip")
	}

	w.Overwrite = true
	if w.ShouldSkip(rec.Slug) {
		t.Error("overwrite mode should never skip")
	}
}

func TestFallbackAbstract(t *testing.T) {
	w := testWriter(t)

	if got := w.FallbackAbstract("nope"); got != "" {
		t.Errorf("missing sidecar should give empty abstract, got %q", got)
	}

	path := w.AbstractPath("smith-2020")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("sidecar abstract\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := w.FallbackAbstract("smith-2020"); got != "sidecar abstract" {
		t.Errorf("FallbackAbstract = %q", got)
	}
}
