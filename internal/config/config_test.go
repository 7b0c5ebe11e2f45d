package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rtmath/crom/internal/config"
)

func TestLoadReturnsDefaultWhenFileIsMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("expected Default() for a missing file, got %+v", cfg)
	}
}

func TestLoadUnmarshalsOverDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crom.yaml")
	yaml := "allow_dot_comma_alias: true\nmax_identifier_length: 16\ntab_width: 8\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := config.Config{AllowDotCommaAlias: true, MaxIdentifierLength: 16, TabWidth: 8}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadPartialYamlKeepsDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crom.yaml")
	if err := os.WriteFile(path, []byte("max_identifier_length: 32\n"), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxIdentifierLength != 32 {
		t.Fatalf("expected max_identifier_length override to take effect, got %d", cfg.MaxIdentifierLength)
	}
	if cfg.TabWidth != config.Default().TabWidth {
		t.Fatalf("expected tab_width to keep its default when omitted, got %d", cfg.TabWidth)
	}
}

func TestLoadReturnsErrorForMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crom.yaml")
	if err := os.WriteFile(path, []byte("not: [valid"), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}
