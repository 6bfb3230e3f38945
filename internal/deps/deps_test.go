package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "   "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Path == "" {
		t.Fatalf("expected resolved path for available binary")
	}
	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[2].Detail != "command not configured" {
		t.Fatalf("expected unset command detail, got %q", results[2].Detail)
	}
}

func TestMissingRequired(t *testing.T) {
	statuses := []Status{
		{Name: "Tool", Available: false},
		{Name: "Extra", Optional: true, Available: false},
		{Name: "Fine", Available: true},
	}
	missing := MissingRequired(statuses)
	if len(missing) != 1 || missing[0] != "Tool" {
		t.Fatalf("expected only required missing tool, got %v", missing)
	}
}

func TestConverterRequirement(t *testing.T) {
	reqs := Converter("inkscape")
	if len(reqs) != 1 {
		t.Fatalf("expected a single requirement, got %d", len(reqs))
	}
	if reqs[0].Command != "inkscape" || reqs[0].Optional {
		t.Fatalf("unexpected requirement: %#v", reqs[0])
	}
}
