package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	content := "[output]\nformat = \"json\"\ncolor = \"off\"\n\n[limits]\nmax-diagnostics = 25\n"
	if err := os.WriteFile(filepath.Join(dir, "fern.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if m.Root != dir {
		t.Errorf("Root = %q, want %q", m.Root, dir)
	}
	if m.Config.Output.Format != "json" {
		t.Errorf("Format = %q, want json", m.Config.Output.Format)
	}
	if m.Config.Output.Color != "off" {
		t.Errorf("Color = %q, want off", m.Config.Output.Color)
	}
	if m.Config.Limits.MaxDiagnostics != 25 {
		t.Errorf("MaxDiagnostics = %d, want 25", m.Config.Limits.MaxDiagnostics)
	}
}

func TestLoadManifest_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "fern.toml"), []byte("[output]\nformat = \"pretty\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest = (%v, %v)", ok, err)
	}
	if m.Root != root {
		t.Errorf("Root = %q, want %q", m.Root, root)
	}
}

func TestLoadManifest_Missing(t *testing.T) {
	_, ok, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("manifest reported found in empty dir")
	}
}

func TestLoadManifest_Invalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "fern.toml"), []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, ok, err := LoadManifest(dir)
	if !ok {
		t.Error("manifest file exists; ok should be true")
	}
	if err == nil {
		t.Error("expected parse error")
	}
}
