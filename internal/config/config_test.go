package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/treewright/treewright/internal/config"
)

func TestParseConfig(t *testing.T) {
	cfg, err := config.ParseConfig([]byte("color: never\nmax_errors: 5\n"), "treewright.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color != "never" {
		t.Fatalf("expected never, got %q", cfg.Color)
	}
	if cfg.MaxErrors != 5 {
		t.Fatalf("expected 5, got %d", cfg.MaxErrors)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := config.ParseConfig([]byte("{}"), "treewright.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color != "auto" {
		t.Fatalf("expected auto default, got %q", cfg.Color)
	}
	if cfg.MaxErrors != 0 {
		t.Fatalf("expected unlimited errors, got %d", cfg.MaxErrors)
	}
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	if _, err := config.ParseConfig([]byte("color: sometimes\n"), "treewright.yaml"); err == nil {
		t.Fatal("expected error for bad color value")
	}
	if _, err := config.ParseConfig([]byte("max_errors: -1\n"), "treewright.yaml"); err == nil {
		t.Fatal("expected error for negative max_errors")
	}
	if _, err := config.ParseConfig([]byte("color: [\n"), "treewright.yaml"); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, "treewright.yaml")
	if err := os.WriteFile(path, []byte("color: auto\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := config.FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if found != path {
		t.Fatalf("expected %s, got %s", path, found)
	}
}

func TestFindConfigMissing(t *testing.T) {
	found, err := config.FindConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if found != "" {
		t.Fatalf("expected no config, found %s", found)
	}
}
