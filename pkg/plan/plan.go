// Package plan computes and inspects the destinations that must hold a
// verified copy of the patch font.
package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SustemFox/mods/pkg/digest"
)

// FontsDir is the directory component expected under every destination root.
const FontsDir = "Fonts"

// State describes one destination relative to the pinned digest.
type State int

const (
	// Missing: no file at the destination.
	Missing State = iota
	// Stale: a file exists but its digest does not match the pin.
	Stale
	// UpToDate: the destination already holds the pinned payload.
	UpToDate
)

func (s State) String() string {
	switch s {
	case Missing:
		return "missing"
	case Stale:
		return "stale"
	case UpToDate:
		return "up to date"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Target is one inspected destination.
type Target struct {
	Path  string
	State State
}

// Targets returns the ordered destination paths for filename: the base patch
// directory first, then each mod directory. Pure; no filesystem access.
func Targets(baseDir string, modDirs []string, filename string) []string {
	out := make([]string, 0, 1+len(modDirs))
	out = append(out, filepath.Join(baseDir, FontsDir, filename))
	for _, dir := range modDirs {
		out = append(out, filepath.Join(dir, FontsDir, filename))
	}
	return out
}

// Inspect stats and hashes every target path against expectedHex. Unreadable
// existing files are reported as Stale rather than failing the run.
func Inspect(paths []string, expectedHex string) []Target {
	out := make([]Target, 0, len(paths))
	for _, path := range paths {
		out = append(out, Target{Path: path, State: inspectOne(path, expectedHex)})
	}
	return out
}

func inspectOne(path, expectedHex string) State {
	if _, err := os.Stat(path); err != nil {
		return Missing
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Stale
	}
	if err := digest.Verify(data, expectedHex); err != nil {
		return Stale
	}
	return UpToDate
}
