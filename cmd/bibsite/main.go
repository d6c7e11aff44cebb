// Package main provides the bibsite CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// verbose switches logging from warnings-only to debug.
var verbose bool

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bibsite",
	Short: "Import a BibTeX bibliography into a static-site content tree",
	Long: `bibsite converts a BibTeX bibliography into per-publication content
bundles for a Hugo site: one Markdown page with TOML front matter plus
a verbatim citation record per entry. Authors are matched against the
group's member and alumni rosters and annotated with profile links.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose (debug) logging")
	rootCmd.Version = Version
}

// newLogger builds the CLI logger shared by the subcommands.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// siteRoot returns the site root directory: the BIBSITE_ROOT
// environment variable when set, the working directory otherwise.
func siteRoot() (string, error) {
	if root := os.Getenv("BIBSITE_ROOT"); root != "" {
		return root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
