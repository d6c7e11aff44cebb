// Package config loads the site configuration for bibsite.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Site describes the content tree bibsite reads from and writes into.
// All paths are relative to the site root.
type Site struct {
	ContentDir     string `yaml:"content_dir,omitempty"`
	StaticDir      string `yaml:"static_dir,omitempty"`
	PublicationDir string `yaml:"publication_dir,omitempty"`
	MemberFile     string `yaml:"member_file,omitempty"`
	AlumniFile     string `yaml:"alumni_file,omitempty"`
}

const (
	// Dir is the per-site configuration directory.
	Dir = ".bibsite"
	// File is the config file name under Dir.
	File = "config.yml"
	// LedgerFile is the bundle ledger database under Dir.
	LedgerFile = "bundles.db"
)

// Default returns the configuration used when no config file exists.
func Default() *Site {
	return &Site{
		ContentDir:     "content",
		StaticDir:      "static",
		PublicationDir: "publication",
		MemberFile:     filepath.Join("content", "member", "member.txt"),
		AlumniFile:     filepath.Join("content", "alumni", "alumni.txt"),
	}
}

// ConfigPath returns the config file path under root.
func ConfigPath(root string) string {
	return filepath.Join(root, Dir, File)
}

// LedgerPath returns the ledger database path under root.
func LedgerPath(root string) string {
	return filepath.Join(root, Dir, LedgerFile)
}

// Load reads the site config under root. A missing file is not an
// error: defaults apply. Fields left empty in the file also fall back
// to their defaults.
func Load(root string) (*Site, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var file Site
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if file.ContentDir != "" {
		cfg.ContentDir = file.ContentDir
	}
	if file.StaticDir != "" {
		cfg.StaticDir = file.StaticDir
	}
	if file.PublicationDir != "" {
		cfg.PublicationDir = file.PublicationDir
	}
	if file.MemberFile != "" {
		cfg.MemberFile = file.MemberFile
	}
	if file.AlumniFile != "" {
		cfg.AlumniFile = file.AlumniFile
	}
	return cfg, nil
}

// Save writes the site config under root, creating the config
// directory if needed.
func (s *Site) Save(root string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(root, Dir), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
