package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultEntry is the entry file written by Init.
const DefaultEntry = "main.nt"

const defaultMain = `[% newt project entry point %]
extern func puts() -> Int32;

func greeting() -> CString { c"Hello, world!" }

func main() -> Int32 { 0 }
`

// InitResult lists what Init created.
type InitResult struct {
	Dir          string
	ManifestPath string
	EntryPath    string
	CreatedEntry bool // false if main.nt already existed
}

// Init creates dir if needed and writes newt.toml plus a hello-world
// main.nt. An existing manifest is an error; an existing main.nt is kept.
func Init(dir string) (InitResult, error) {
	res := InitResult{Dir: dir}
	if st, err := os.Stat(dir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return res, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	} else if !st.IsDir() {
		return res, fmt.Errorf("%q is not a directory", dir)
	}

	res.ManifestPath = filepath.Join(dir, ManifestName)
	if _, err := os.Stat(res.ManifestPath); err == nil {
		return res, fmt.Errorf("project already initialized: %s exists", res.ManifestPath)
	}
	data, err := Encode(Config{
		Package: PackageConfig{Name: projectName(dir)},
		Build:   BuildConfig{Entry: DefaultEntry},
	})
	if err != nil {
		return res, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(res.ManifestPath, data, 0o600); err != nil {
		return res, fmt.Errorf("failed to write manifest: %w", err)
	}

	res.EntryPath = filepath.Join(dir, DefaultEntry)
	if _, err := os.Stat(res.EntryPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(res.EntryPath, []byte(defaultMain), 0o600); err != nil {
			return res, fmt.Errorf("failed to write %s: %w", DefaultEntry, err)
		}
		res.CreatedEntry = true
	}
	return res, nil
}

// projectName derives the package name from the directory basename.
func projectName(dir string) string {
	name := strings.TrimSpace(filepath.Base(dir))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "newt-project"
	}
	return name
}
