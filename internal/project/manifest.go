// Package project finds and reads newt.toml manifests.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "newt.toml"

var (
	// ErrNoManifest is returned when no newt.toml exists up to the filesystem root.
	ErrNoManifest = errors.New("no " + ManifestName + " found")
	// ErrInvalidManifest wraps every decoding and validation failure.
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Manifest is a loaded newt.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package     PackageConfig     `toml:"package"`
	Build       BuildConfig       `toml:"build"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics,omitempty"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	Entry  string `toml:"entry"`            // file or directory, relative to Root
	Output string `toml:"output,omitempty"` // IR path for a single-file entry
}

type DiagnosticsConfig struct {
	Max int `toml:"max,omitempty"`
}

// Find walks up from startDir to locate newt.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the manifest governing startDir.
func Discover(startDir string) (*Manifest, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoManifest
	}
	return Load(path)
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidManifest, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidManifest, path, undecoded[0].String())
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%w: %s: missing [package].name", ErrInvalidManifest, path)
	}
	if !meta.IsDefined("build", "entry") || strings.TrimSpace(cfg.Build.Entry) == "" {
		return nil, fmt.Errorf("%w: %s: missing [build].entry", ErrInvalidManifest, path)
	}
	if cfg.Diagnostics.Max < 0 {
		return nil, fmt.Errorf("%w: %s: [diagnostics].max must not be negative", ErrInvalidManifest, path)
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// EntryPath resolves [build].entry against the project root and checks that
// it exists.
func (m *Manifest) EntryPath() (string, error) {
	entry := filepath.Join(m.Root, filepath.FromSlash(strings.TrimSpace(m.Config.Build.Entry)))
	if _, err := os.Stat(entry); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: [build].entry does not exist: %s", m.Path, entry)
		}
		return "", fmt.Errorf("%s: failed to stat [build].entry: %w", m.Path, err)
	}
	return entry, nil
}

// OutputPath resolves [build].output, or returns "" when it is not set.
func (m *Manifest) OutputPath() string {
	out := strings.TrimSpace(m.Config.Build.Output)
	if out == "" {
		return ""
	}
	return filepath.Join(m.Root, filepath.FromSlash(out))
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# newt project manifest\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
