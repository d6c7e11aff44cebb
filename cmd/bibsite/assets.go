package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"bibsite/internal/assets"
	"bibsite/internal/config"
)

var assetsManifest string

func init() {
	assetsCmd.Flags().StringVar(&assetsManifest, "manifest", "assets.yml",
		"Asset manifest path, relative to the site root")
	rootCmd.AddCommand(assetsCmd)
}

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Download manifest-listed assets into the static tree",
	Long: `Download the files listed in the asset manifest (PDFs, figures,
supplementary data) into the site's static tree. Downloads are
rate limited to stay polite to publisher servers.`,
	Run: runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	logger := newLogger()

	root, err := siteRoot()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	site, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	m, err := assets.LoadManifest(filepath.Join(root, assetsManifest))
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	logger.Debug("manifest loaded", "assets", len(m.Assets))

	staticDir := filepath.Join(root, site.StaticDir)
	if err := assets.NewFetcher().Fetch(cmd.Context(), m, staticDir); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	fmt.Printf("Fetched %d assets into %s\n", len(m.Assets), staticDir)
}
