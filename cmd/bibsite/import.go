package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"bibsite/internal/bibtex"
	"bibsite/internal/bundle"
	"bibsite/internal/config"
	"bibsite/internal/hugo"
	"bibsite/internal/ledger"
	"bibsite/internal/pdfmeta"
	"bibsite/internal/roster"
	"bibsite/internal/slug"
)

const importTitleMaxLen = 50

var (
	importBibtex    string
	importPubDir    string
	importFeatured  bool
	importOverwrite bool
	importNormalize bool
	importDryRun    bool
)

func init() {
	importCmd.Flags().StringVar(&importBibtex, "bibtex", "", "File path to the BibTeX bibliography")
	importCmd.Flags().StringVar(&importPubDir, "publication-dir", "",
		"Directory publications are stored in (default from site config)")
	importCmd.Flags().BoolVar(&importFeatured, "featured", false, "Flag imported publications as featured")
	importCmd.Flags().BoolVar(&importOverwrite, "overwrite", false, "Overwrite existing publication bundles")
	importCmd.Flags().BoolVar(&importNormalize, "normalize", false,
		"Normalize each keyword to lowercase with uppercase first letter")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show what would be written without writing")
	importCmd.MarkFlagRequired("bibtex")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import publications from a BibTeX file",
	Long: `Import publications from a BibTeX file.

Each entry becomes a Markdown bundle under the content tree and a
verbatim citation record under the static tree. Existing bundles are
skipped unless --overwrite is given.`,
	Run: runImport,
}

func runImport(cmd *cobra.Command, args []string) {
	logger := newLogger()

	root, err := siteRoot()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	site, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	pubDir := site.PublicationDir
	if importPubDir != "" {
		pubDir = importPubDir
	}

	// A missing roster is a fatal configuration error: the index
	// cannot be built partially, so no entry is processed.
	members, err := roster.Load(filepath.Join(root, site.MemberFile), roster.Member)
	if err != nil {
		exitWithError(ExitConfigError, "loading member roster: %v", err)
	}
	alumni, err := roster.Load(filepath.Join(root, site.AlumniFile), roster.Alumni)
	if err != nil {
		exitWithError(ExitConfigError, "loading alumni roster: %v", err)
	}
	logger.Debug("rosters loaded", "members", members.Len(), "alumni", alumni.Len())

	f, err := os.Open(importBibtex)
	if err != nil {
		exitWithError(ExitDataError, "opening BibTeX file: %v", err)
	}
	entries, err := bibtex.Parse(f)
	f.Close()
	if err != nil {
		exitWithError(ExitDataError, "parsing BibTeX file: %v", err)
	}
	logger.Debug("bibliography parsed", "entries", len(entries))

	writer := &hugo.Writer{
		ContentDir: filepath.Join(root, site.ContentDir),
		StaticDir:  filepath.Join(root, site.StaticDir),
		PubDir:     pubDir,
		Overwrite:  importOverwrite,
		DryRun:     importDryRun,
		Now:        time.Now,
	}

	var led *ledger.Ledger
	if !importDryRun {
		led, err = ledger.Open(config.LedgerPath(root))
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		defer led.Close()
	}

	var written, skipped int
	var dryRunRows [][]string

	for _, e := range entries {
		s := slug.Make(e.Key)

		// The skip/overwrite decision is made before the core runs.
		if writer.ShouldSkip(s) {
			logger.Debug("skipping existing bundle", "entry", e.Key, "slug", s)
			if importDryRun {
				dryRunRows = append(dryRunRows, []string{e.Key, s, "skip", ""})
			}
			skipped++
			continue
		}

		cfg := bundle.Config{
			Featured:       importFeatured,
			NormalizeTags:  importNormalize,
			PublicationDir: pubDir,
		}
		if !e.Has("abstract") {
			cfg.FallbackAbstract = writer.FallbackAbstract(s)
		}
		if e.Has("pdf") && !e.Has("doi") {
			cfg.FallbackDOI = extractDOI(writer.StaticDir, pubDir, e.Field("pdf"), logger)
		}

		rec, warns := bundle.Assemble(e, members, alumni, cfg)
		for _, w := range warns {
			logger.Warn(w, "entry", e.Key)
		}

		doc, err := writer.Write(rec, bibtex.Format(e))
		if err != nil {
			exitWithError(ExitError, "writing bundle for %s: %v", e.Key, err)
		}

		if importDryRun {
			dryRunRows = append(dryRunRows, []string{
				e.Key, s, "write", truncateString(rec.Title, importTitleMaxLen),
			})
		} else {
			err := led.Record(ledger.Bundle{
				Slug:      s,
				Key:       e.Key,
				Title:     rec.Title,
				Year:      rec.Date.Year,
				Checksum:  ledger.Checksum(doc),
				WrittenAt: time.Now().UTC(),
			})
			if err != nil {
				logger.Warn("ledger update failed", "entry", e.Key, "err", err)
			}
		}
		written++
	}

	if importDryRun {
		renderTable([]string{"KEY", "SLUG", "ACTION", "TITLE"}, dryRunRows)
		fmt.Printf("Dry run: %d to write, %d to skip\n", written, skipped)
		return
	}
	fmt.Printf("Imported %d publications (%d skipped)\n", written, skipped)
}

// extractDOI backfills a missing doi field from the linked PDF.
// Extraction is best effort; failures only log.
func extractDOI(staticDir, pubDir, pdfName string, logger *slog.Logger) string {
	path := filepath.Join(staticDir, "pdf", pubDir, pdfName)
	doi, err := pdfmeta.ExtractDOI(path)
	if err != nil {
		logger.Debug("DOI extraction failed", "pdf", path, "err", err)
		return ""
	}
	if doi != "" {
		logger.Debug("DOI extracted from PDF", "pdf", pdfName, "doi", doi)
	}
	return doi
}
