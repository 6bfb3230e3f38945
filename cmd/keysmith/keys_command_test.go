package main

import (
	"testing"
)

func TestKeysListsTable(t *testing.T) {
	out, _, err := runCLI(t, []string{"keys"}, "")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	requireContains(t, out, "Escape")
	requireContains(t, out, "JoystickIcon")
	requireContains(t, out, "81 keys")
}

func TestKeysFiltersByName(t *testing.T) {
	out, _, err := runCLI(t, []string{"keys", "A", "Key1"}, "")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	requireContains(t, out, "2 keys")
	requireContains(t, out, "! / 1")
}

func TestKeysRejectsUnknownName(t *testing.T) {
	_, _, err := runCLI(t, []string{"keys", "Space"}, "")
	if err == nil {
		t.Fatal("expected error for unknown key name")
	}
	requireContains(t, err.Error(), "unknown key")
}
