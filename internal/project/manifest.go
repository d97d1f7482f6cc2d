// Package project locates and parses uc.toml, the per-project manifest
// that names the package and lists its .ucast inputs.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the loader searches for.
const ManifestName = "uc.toml"

// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
var ErrPackageSectionMissing = errors.New("missing [package]")

// Manifest is the parsed uc.toml.
//
//	[package]
//	name = "hello"
//
//	[build]
//	sources = ["hello.ucast"]
//	out = "gen"
//	jobs = 4
type Manifest struct {
	// Dir is the directory the manifest was loaded from; relative paths
	// in the manifest resolve against it.
	Dir string

	Name    string
	Sources []string
	Out     string
	Jobs    int
}

type manifestFile struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Build struct {
		Sources []string `toml:"sources"`
		Out     string   `toml:"out"`
		Jobs    int      `toml:"jobs"`
	} `toml:"build"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	name := strings.TrimSpace(cfg.Package.Name)
	if name == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}
	return &Manifest{
		Dir:     filepath.Dir(path),
		Name:    name,
		Sources: cfg.Build.Sources,
		Out:     cfg.Build.Out,
		Jobs:    cfg.Build.Jobs,
	}, nil
}

// Find walks from startDir toward the filesystem root looking for
// uc.toml. The second return value reports whether one was found.
func Find(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// SourcePaths resolves the manifest's source list against its directory.
// An empty list falls back to every .ucast file under the directory.
func (m *Manifest) SourcePaths() ([]string, error) {
	if len(m.Sources) == 0 {
		var out []string
		entries, err := os.ReadDir(m.Dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".ucast") {
				out = append(out, filepath.Join(m.Dir, e.Name()))
			}
		}
		return out, nil
	}
	out := make([]string, 0, len(m.Sources))
	for _, src := range m.Sources {
		if filepath.IsAbs(src) {
			return nil, fmt.Errorf("invalid source %q: must be relative", src)
		}
		out = append(out, filepath.Join(m.Dir, filepath.FromSlash(src)))
	}
	return out, nil
}

// OutDir resolves the output directory; empty means alongside inputs.
func (m *Manifest) OutDir() string {
	if strings.TrimSpace(m.Out) == "" {
		return ""
	}
	if filepath.IsAbs(m.Out) {
		return m.Out
	}
	return filepath.Join(m.Dir, m.Out)
}
