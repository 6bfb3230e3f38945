package main

import (
	"context"
	"testing"

	"keysmith/internal/labelcache"
)

func TestCacheStatsAndClear(t *testing.T) {
	env := setupCLITestEnv(t)

	store, err := labelcache.Open(env.cfg.Cache.Path)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	entry := labelcache.Entry{KeyName: "A", InputHash: "h", OutputPath: "p"}
	if err := store.Record(context.Background(), entry); err != nil {
		t.Fatalf("record entry: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close cache: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Entries: 1")

	out, _, err = runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed 1 cache entries")

	out, _, err = runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats after clear: %v", err)
	}
	requireContains(t, out, "Entries: 0")
}
