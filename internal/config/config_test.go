package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	modegenerrors "github.com/thoreinstein/modegen/internal/errors"
	"github.com/thoreinstein/modegen/internal/mode"
)

// resetConfig gives each test a fresh viper instance.
func resetConfig(t *testing.T) {
	t.Helper()
	Init()
}

func TestLoadDefaults(t *testing.T) {
	resetConfig(t)

	// No config file anywhere; implicit load falls back to defaults.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Dir != "." {
		t.Errorf("Dir = %q, want %q", cfg.Dir, ".")
	}
	if cfg.Output != ".roomodes" {
		t.Errorf("Output = %q, want %q", cfg.Output, ".roomodes")
	}
}

func TestLoadExplicitFile(t *testing.T) {
	resetConfig(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "modegen.yaml")
	content := "dir: ./modes\noutput: custom.json\ndialects:\n  planner-mode.md: role-heading\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Dir != "./modes" {
		t.Errorf("Dir = %q", cfg.Dir)
	}
	if cfg.Output != "custom.json" {
		t.Errorf("Output = %q", cfg.Output)
	}
	// Filenames contain dots; the key must survive loading whole, not be
	// split into nested maps.
	if cfg.Dialects["planner-mode.md"] != "role-heading" {
		t.Errorf("Dialects = %v", cfg.Dialects)
	}

	overrides, err := cfg.DialectOverrides()
	if err != nil {
		t.Fatalf("DialectOverrides returned error: %v", err)
	}
	if overrides["planner-mode.md"] != mode.DialectRoleHeading {
		t.Errorf("overrides = %v", overrides)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	resetConfig(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load did not fail for a missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg:  Config{Dir: ".", Output: ".roomodes"},
		},
		{
			name: "valid with dialects",
			cfg: Config{Dir: ".", Output: ".roomodes",
				Dialects: map[string]string{"planner-mode.md": "role-heading"}},
		},
		{
			name:    "empty output",
			cfg:     Config{Dir: "."},
			wantErr: modegenerrors.ErrInvalidConfig,
		},
		{
			name:    "output with path separator",
			cfg:     Config{Dir: ".", Output: "sub/out.json"},
			wantErr: modegenerrors.ErrInvalidConfig,
		},
		{
			name: "unknown dialect",
			cfg: Config{Dir: ".", Output: ".roomodes",
				Dialects: map[string]string{"planner-mode.md": "exotic"}},
			wantErr: mode.ErrUnknownDialect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDialectOverrides(t *testing.T) {
	cfg := Config{Dialects: map[string]string{"planner-mode.md": "role-heading"}}

	overrides, err := cfg.DialectOverrides()
	if err != nil {
		t.Fatalf("DialectOverrides returned error: %v", err)
	}
	if overrides["planner-mode.md"] != mode.DialectRoleHeading {
		t.Errorf("overrides = %v", overrides)
	}
}
