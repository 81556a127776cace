// Package llvm emits textual LLVM IR for a resolved module.
//
// Initialize must run once before Emit; it fixes the target triple for the
// host the compiler runs on.
package llvm

import (
	"errors"
	"runtime"
	"sync"
)

var (
	// ErrNotInitialized is returned by Emit before Initialize has run.
	ErrNotInitialized = errors.New("llvm backend is not initialized")
	// ErrUnsupported marks constructs the emitter cannot lower.
	ErrUnsupported = errors.New("unsupported by llvm backend")
)

var (
	initOnce sync.Once
	triple   string
)

// Initialize brings the backend up. Calling it again is a no-op.
func Initialize() {
	initOnce.Do(func() {
		triple = hostTriple(runtime.GOARCH, runtime.GOOS)
	})
}

// Triple returns the target triple chosen by Initialize, or "" before it.
func Triple() string { return triple }

func initialized() bool { return triple != "" }

func hostTriple(goarch, goos string) string {
	arch := goarch
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "386":
		arch = "i686"
	}
	switch goos {
	case "darwin":
		return arch + "-apple-darwin"
	case "windows":
		return arch + "-pc-windows-msvc"
	case "linux":
		return arch + "-unknown-linux-gnu"
	default:
		return arch + "-unknown-" + goos
	}
}
