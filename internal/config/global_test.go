// Where: internal/config/global_test.go
// What: Tests for the global config ledger.
// Why: Recording generated projects must survive load/save round trips.
package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("expected version 1, got %d", cfg.Version)
	}
	if cfg.Projects == nil {
		t.Fatalf("expected initialized projects map")
	}
}

func TestRecordProjectRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	if err := RecordProject(path, "alice_my_handler", "alice_my_handler"); err != nil {
		t.Fatalf("record: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	entry, ok := cfg.Projects["alice_my_handler"]
	if !ok {
		t.Fatalf("expected project entry, got %v", cfg.Projects)
	}
	if !filepath.IsAbs(entry.Path) {
		t.Fatalf("expected absolute project path, got %q", entry.Path)
	}
	if entry.CreatedAt != "2026-08-30T12:00:00Z" {
		t.Fatalf("unexpected timestamp %q", entry.CreatedAt)
	}
}

func TestRecordProjectKeepsExistingEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := RecordProject(path, "alice_first", "/tmp/alice_first"); err != nil {
		t.Fatalf("record first: %v", err)
	}
	if err := RecordProject(path, "alice_second", "/tmp/alice_second"); err != nil {
		t.Fatalf("record second: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Projects) != 2 {
		t.Fatalf("expected both projects, got %v", cfg.Projects)
	}
}

func TestGlobalConfigPathOverride(t *testing.T) {
	t.Setenv("ALICE_NEW_CONFIG_HOME", "/tmp/alice-home")
	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != filepath.Join("/tmp/alice-home", "config.yaml") {
		t.Fatalf("unexpected path %q", path)
	}
}
