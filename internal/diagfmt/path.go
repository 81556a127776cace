package diagfmt

import (
	"os"
	"path/filepath"

	"newt/internal/diag"
	"newt/internal/source"
)

func formatPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		wd, err := os.Getwd()
		if err != nil {
			return path
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		if rel, err := filepath.Rel(wd, abs); err == nil {
			return rel
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}

// fileOf returns the file a span points into, or nil for spans that carry
// no source location (I/O and project diagnostics).
func fileOf(fs *source.FileSet, code diag.Code, sp source.Span) *source.File {
	if fs == nil || int(sp.File) >= fs.Len() {
		return nil
	}
	if code >= diag.IOLoadFileError && code < diag.GenUnsupportedBody {
		return nil
	}
	return fs.Get(sp.File)
}
