package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "hello"

[build]
sources = ["a.ucast", "sub/b.ucast"]
out = "gen"
jobs = 4
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "hello" || m.Out != "gen" || m.Jobs != 4 {
		t.Fatalf("manifest fields wrong: %+v", m)
	}
	if m.Dir != dir {
		t.Fatalf("Dir = %q, want %q", m.Dir, dir)
	}
	if len(m.Sources) != 2 {
		t.Fatalf("sources: %v", m.Sources)
	}
}

func TestLoadMissingPackageSection(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[build]
sources = ["a.ucast"]
`)
	_, err := Load(path)
	if !errors.Is(err, ErrPackageSectionMissing) {
		t.Fatalf("expected ErrPackageSectionMissing, got %v", err)
	}
}

func TestLoadMissingName(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "  "
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for a blank name")
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	want := writeManifest(t, dir, "[package]\nname = \"x\"\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find failed: %v, %v", got, err)
	}
	if got != want {
		t.Fatalf("Find = %q, want %q", got, want)
	}

	empty := t.TempDir()
	if _, ok, err := Find(empty); err != nil || ok {
		t.Fatalf("Find in a bare tree must report not found, got ok=%v err=%v", ok, err)
	}
}

func TestSourcePathsExplicit(t *testing.T) {
	dir := t.TempDir()
	m := &Manifest{Dir: dir, Name: "x", Sources: []string{"a.ucast", "sub/b.ucast"}}
	got, err := m.SourcePaths()
	if err != nil {
		t.Fatalf("sources: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.ucast"),
		filepath.Join(dir, "sub", "b.ucast"),
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}

	m.Sources = []string{string(filepath.Separator) + "abs.ucast"}
	if _, err := m.SourcePaths(); err == nil {
		t.Fatalf("absolute sources must be rejected")
	}
}

func TestSourcePathsFallback(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.ucast", "a.ucast", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	m := &Manifest{Dir: dir, Name: "x"}
	got, err := m.SourcePaths()
	if err != nil {
		t.Fatalf("sources: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("fallback picked up %v", got)
	}
}

func TestOutDir(t *testing.T) {
	m := &Manifest{Dir: "/proj", Name: "x"}
	if got := m.OutDir(); got != "" {
		t.Fatalf("empty out must stay empty, got %q", got)
	}
	m.Out = "gen"
	if got := m.OutDir(); got != filepath.Join("/proj", "gen") {
		t.Fatalf("relative out resolved wrong: %q", got)
	}
}
