package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	content := `
font_url = "https://fonts.example.com/f.ttf"
font_sha256 = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
patch_dir = "patch"
mods = ["Some.Mod"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FontURL != "https://fonts.example.com/f.ttf" {
		t.Fatalf("font_url not overridden: %q", cfg.FontURL)
	}
	if cfg.PatchDir != "patch" {
		t.Fatalf("patch_dir not overridden: %q", cfg.PatchDir)
	}
	if len(cfg.Mods) != 1 || cfg.Mods[0] != "Some.Mod" {
		t.Fatalf("mods not overridden: %v", cfg.Mods)
	}
	// Untouched keys keep their defaults.
	if cfg.FontFilename != Default().FontFilename {
		t.Fatalf("font_filename should keep default: %q", cfg.FontFilename)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"insecure url", `font_url = "http://example.com/f.ttf"`},
		{"short digest", `font_sha256 = "abc123"`},
		{"filename with path", `font_filename = "Fonts/f.ttf"`},
		{"empty patch dir", `patch_dir = " "`},
		{"empty mod name", `mods = ["ok", ""]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected validation error for %q", tt.content)
			}
		})
	}
}

func TestModDirs(t *testing.T) {
	t.Parallel()

	cfg := Config{PatchDir: "patch", Mods: []string{"A", "B"}}
	want := []string{
		filepath.Join("patch", "Mods", "A"),
		filepath.Join("patch", "Mods", "B"),
	}
	if got := cfg.ModDirs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mod dirs mismatch: got=%v want=%v", got, want)
	}
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
