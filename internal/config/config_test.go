package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ContentDir != "content" || cfg.StaticDir != "static" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.PublicationDir != "publication" {
		t.Errorf("PublicationDir = %q", cfg.PublicationDir)
	}
	if cfg.MemberFile != filepath.Join("content", "member", "member.txt") {
		t.Errorf("MemberFile = %q", cfg.MemberFile)
	}
}

func TestLoadPartialFile(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, Dir), 0755); err != nil {
		t.Fatal(err)
	}
	content := "publication_dir: papers\nmember_file: people/current.txt\n"
	if err := os.WriteFile(ConfigPath(root), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PublicationDir != "papers" {
		t.Errorf("PublicationDir = %q, want papers", cfg.PublicationDir)
	}
	if cfg.MemberFile != "people/current.txt" {
		t.Errorf("MemberFile = %q", cfg.MemberFile)
	}
	// Unset fields keep defaults.
	if cfg.ContentDir != "content" {
		t.Errorf("ContentDir = %q, want content", cfg.ContentDir)
	}
}

func TestLoadBadYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, Dir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(root), []byte("content_dir: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(root); err == nil {
		t.Fatal("Load of invalid YAML should fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	root := t.TempDir()
	want := &Site{ContentDir: "c", StaticDir: "s", PublicationDir: "p"}
	if err := want.Save(root); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ContentDir != "c" || got.StaticDir != "s" || got.PublicationDir != "p" {
		t.Errorf("round trip = %+v", got)
	}
}
