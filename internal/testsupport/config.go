// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"keysmith/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per
// test so runs never touch the user's home directory.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")
	cfg.Paths.WorkDir = filepath.Join(base, "work")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Cache.Enabled = false
	cfg.Cache.Path = filepath.Join(base, "cache", "labels.db")
	return &cfg
}

// StubConverter writes a fake converter executable that ignores its
// input and emits a minimal grouped path document, the shape the real
// tool produces after text-to-path conversion. It returns the absolute
// path to the stub.
func StubConverter(t testing.TB) string {
	t.Helper()

	script := `#!/bin/sh
# args: --actions <actions> <input> -o <output>
out="$5"
printf '<svg xmlns="http://www.w3.org/2000/svg">\n<g>\n<path d="m 0,0 h 10 v 10 z" />\n</g>\n</svg>\n' > "$out"
`
	path := filepath.Join(t.TempDir(), "inkscape")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write converter stub: %v", err)
	}
	return path
}
