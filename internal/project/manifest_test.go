package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitThenDiscover(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hello")
	res, err := Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !res.CreatedEntry {
		t.Fatalf("entry not created")
	}

	nested := filepath.Join(dir, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if m.Config.Package.Name != "hello" || m.Config.Build.Entry != DefaultEntry {
		t.Fatalf("config = %+v", m.Config)
	}
	entry, err := m.EntryPath()
	if err != nil || entry != filepath.Join(dir, DefaultEntry) {
		t.Fatalf("entry = %q, %v", entry, err)
	}

	if _, err := Init(dir); err == nil {
		t.Fatalf("second Init must fail")
	}
}

func TestInitKeepsExistingEntry(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, DefaultEntry)
	if err := os.WriteFile(main, []byte("func main() -> Int32 { 7 }"), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := Init(dir)
	if err != nil || res.CreatedEntry {
		t.Fatalf("res = %+v, err = %v", res, err)
	}
	data, _ := os.ReadFile(main)
	if !strings.Contains(string(data), "{ 7 }") {
		t.Fatalf("existing entry overwritten: %q", data)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"ok", "[package]\nname = \"x\"\n[build]\nentry = \"main.nt\"\n[diagnostics]\nmax = 10\n", ""},
		{"no name", "[package]\n[build]\nentry = \"main.nt\"\n", "[package].name"},
		{"no entry", "[package]\nname = \"x\"\n", "[build].entry"},
		{"unknown key", "[package]\nname = \"x\"\nversion = 1\n[build]\nentry = \"a\"\n", "unknown key"},
		{"negative max", "[package]\nname = \"x\"\n[build]\nentry = \"a\"\n[diagnostics]\nmax = -1\n", "must not be negative"},
		{"syntax", "[package\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			m, err := Load(path)
			if tt.name == "ok" {
				if err != nil || m.Config.Diagnostics.Max != 10 {
					t.Fatalf("m = %+v, err = %v", m, err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidManifest) {
				t.Fatalf("err = %v, want ErrInvalidManifest", err)
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverWithoutManifest(t *testing.T) {
	// t.TempDir лежит вне проектов, если только в /tmp не лежит newt.toml
	dir := t.TempDir()
	if _, ok, _ := Find(dir); ok {
		t.Skip("a newt.toml exists above the temp dir")
	}
	if _, err := Discover(dir); !errors.Is(err, ErrNoManifest) {
		t.Fatalf("err = %v, want ErrNoManifest", err)
	}
}

func TestOutputPath(t *testing.T) {
	m := &Manifest{Root: "/proj", Config: Config{Build: BuildConfig{Output: "out/app.ll"}}}
	if got := m.OutputPath(); got != filepath.Join("/proj", "out", "app.ll") {
		t.Fatalf("OutputPath = %q", got)
	}
	m.Config.Build.Output = ""
	if m.OutputPath() != "" {
		t.Fatalf("empty output must stay empty")
	}
}
