package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var languageSeeds = []string{
	"",
	"extern func puts() -> Int32;\nfunc main() -> Int32 { 0 }\n",
	"func greeting() -> CString { c\"Hello, world!\" }",
	"func a() -> Int8 { 0x7f } func b() -> UInt64 { 0b1010 } func c() -> ISize { 0o17 }",
	"func f() -> Int32 { g } func g() -> Int32 { 1 }",
	"[% comment [% nested %] %] func f() -> Int32 { 0 }",
	"[% unterminated",
	"%]",
	"func f() -> Int32 { 12abc }",
	"func f() -> Int32 { 0x }",
	"func f() -> CString { x\"bad prefix\" }",
	"func f() -> CString { \"esc\\n\" }",
	"func f() -> CString { \"open",
	"-- --> -> ->-",
	"func u\u0308n\u00EFc\u00F6d\u00E9'-name() -> Int32 { 0 }",
	"func f(",
	"extern func f() -> Int32 { 0 }",
	"1 func 2 func 3 func f() -> Int32 { 0 }",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.nt файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".nt" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
