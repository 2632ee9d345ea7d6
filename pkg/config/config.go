// Package config holds the pinned font source and the set of bundled mods
// that ship a copy of it.
package config

import (
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the optional override file looked up next to the patch tree.
const FileName = "fontpatch.toml"

// Config is the immutable run configuration. All values have compiled-in
// defaults matching the upstream Noto Sans release bundled mods expect.
type Config struct {
	FontURL      string   `toml:"font_url"`
	FontSHA256   string   `toml:"font_sha256"`
	FontFilename string   `toml:"font_filename"`
	PatchDir     string   `toml:"patch_dir"`
	Mods         []string `toml:"mods"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FontURL:      "https://github.com/googlefonts/noto-fonts/raw/main/hinted/ttf/NotoSans/NotoSans-Regular.ttf",
		FontSHA256:   "b85c38ecea8a7cfb39c24e395a4007474fa5a4fc864f6ee33309eb4948d232d5",
		FontFilename: "NotoSans-Regular.ttf",
		PatchDir:     "OWML_fonts_patch",
		Mods: []string{
			"PacificEngine.CheatsMod",
			"clubby789.OWClock",
		},
	}
}

// Load returns the defaults overlaid with values from path, if it exists.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the installer cannot act on safely.
func (c Config) Validate() error {
	u, err := url.Parse(c.FontURL)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("font_url must be an absolute https URL, got %q", c.FontURL)
	}
	raw, err := hex.DecodeString(strings.ToLower(c.FontSHA256))
	if err != nil || len(raw) != 32 {
		return fmt.Errorf("font_sha256 must be a 64-char hex digest, got %q", c.FontSHA256)
	}
	if c.FontFilename == "" || c.FontFilename != filepath.Base(c.FontFilename) {
		return fmt.Errorf("font_filename must be a bare file name, got %q", c.FontFilename)
	}
	if strings.TrimSpace(c.PatchDir) == "" {
		return fmt.Errorf("patch_dir is required")
	}
	for _, mod := range c.Mods {
		if strings.TrimSpace(mod) == "" {
			return fmt.Errorf("mods must not contain empty names")
		}
	}
	return nil
}

// ModDirs returns the directory of each configured mod under the patch tree.
func (c Config) ModDirs() []string {
	out := make([]string, 0, len(c.Mods))
	for _, mod := range c.Mods {
		out = append(out, filepath.Join(c.PatchDir, "Mods", mod))
	}
	return out
}
