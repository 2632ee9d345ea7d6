// Package installer drives the fetch, verify and fan-out copy of the patch
// font into every destination the bundled mods expect.
package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SustemFox/mods/pkg/config"
	"github.com/SustemFox/mods/pkg/digest"
	"github.com/SustemFox/mods/pkg/fetch"
	"github.com/SustemFox/mods/pkg/logging"
	"github.com/SustemFox/mods/pkg/plan"
)

// ActionType classifies what happened to one destination.
type ActionType string

const (
	// ActionSkipped: destination already held the pinned payload.
	ActionSkipped ActionType = "skipped"
	// ActionWouldInstall: destination would be written outside dry-run.
	ActionWouldInstall ActionType = "would-install"
	// ActionInstalled: destination was written.
	ActionInstalled ActionType = "installed"
)

// Action is the per-destination outcome of a run.
type Action struct {
	Target string
	Type   ActionType
}

// Report summarizes one run.
type Report struct {
	Actions []Action
	// Fetched is true when the payload came from the network.
	Fetched bool
}

// Installed counts destinations written during the run.
func (r *Report) Installed() int { return r.count(ActionInstalled) }

// Pending counts destinations a dry-run would write.
func (r *Report) Pending() int { return r.count(ActionWouldInstall) }

func (r *Report) count(t ActionType) int {
	n := 0
	for _, a := range r.Actions {
		if a.Type == t {
			n++
		}
	}
	return n
}

// Options select the run mode.
type Options struct {
	// Force refreshes every destination even when it is already up to date.
	Force bool
	// DryRun fetches and verifies but never writes.
	DryRun bool
}

// Installer owns the payload for the duration of one run.
type Installer struct {
	cfg     config.Config
	fetcher fetch.Fetcher
}

// New returns an installer using fetcher to obtain the payload when no
// verified local copy can be reused.
func New(cfg config.Config, fetcher fetch.Fetcher) *Installer {
	return &Installer{cfg: cfg, fetcher: fetcher}
}

// Targets returns the planned destination paths, base patch directory first.
func (i *Installer) Targets() []string {
	return plan.Targets(i.cfg.PatchDir, i.cfg.ModDirs(), i.cfg.FontFilename)
}

// Run executes one fetch/verify/fan-out cycle. Verification happens entirely
// in memory before any destination is touched: a failed fetch or digest
// mismatch leaves every destination as it was.
func (i *Installer) Run(ctx context.Context, opts Options) (*Report, error) {
	logger := logging.GetLogger(ctx)

	inspected := plan.Inspect(i.Targets(), i.cfg.FontSHA256)

	refresh := make(map[string]bool, len(inspected))
	pending := 0
	for _, target := range inspected {
		if opts.Force || target.State != plan.UpToDate {
			refresh[target.Path] = true
			pending++
		}
	}

	report := &Report{Actions: make([]Action, 0, len(inspected))}

	// Nothing to do and nothing to preview: skip the network entirely.
	if pending == 0 && !opts.DryRun {
		for _, target := range inspected {
			logger.Info("font up to date", "path", target.Path)
			report.Actions = append(report.Actions, Action{Target: target.Path, Type: ActionSkipped})
		}
		return report, nil
	}

	payload, fetched, err := i.payload(ctx, inspected, opts)
	if err != nil {
		return nil, err
	}
	report.Fetched = fetched

	for _, target := range inspected {
		switch {
		case !refresh[target.Path]:
			logger.Info("font up to date", "path", target.Path)
			report.Actions = append(report.Actions, Action{Target: target.Path, Type: ActionSkipped})
		case opts.DryRun:
			logger.Info("would write font", "path", target.Path, "state", target.State.String())
			report.Actions = append(report.Actions, Action{Target: target.Path, Type: ActionWouldInstall})
		default:
			if err := writeFont(target.Path, payload); err != nil {
				return nil, err
			}
			logger.Info("wrote font", "path", target.Path, "state", target.State.String())
			report.Actions = append(report.Actions, Action{Target: target.Path, Type: ActionInstalled})
		}
	}

	return report, nil
}

// payload obtains the font bytes and verifies them against the pin. Dry-run
// and force always hit the network so the user sees real transport and
// integrity failures; otherwise an already verified destination is reused to
// heal the remaining ones without a download.
func (i *Installer) payload(ctx context.Context, inspected []plan.Target, opts Options) ([]byte, bool, error) {
	logger := logging.GetLogger(ctx)

	if !opts.DryRun && !opts.Force {
		for _, target := range inspected {
			if target.State != plan.UpToDate {
				continue
			}
			data, err := os.ReadFile(target.Path)
			if err != nil {
				logger.Warn("could not reuse local font copy", "path", target.Path, "error", err)
				continue
			}
			if digest.Verify(data, i.cfg.FontSHA256) != nil {
				continue
			}
			logger.Debug("reusing verified local copy", "path", target.Path)
			return data, false, nil
		}
	}

	data, err := i.fetcher.Fetch(ctx, i.cfg.FontURL)
	if err != nil {
		return nil, false, fmt.Errorf("failed to download font: %w", err)
	}
	if err := digest.Verify(data, i.cfg.FontSHA256); err != nil {
		return nil, false, fmt.Errorf("downloaded font rejected: %w", err)
	}
	return data, true, nil
}

// writeFont stages the payload next to the destination and renames it into
// place, so a crash mid-write never leaves a truncated font behind.
func writeFont(path string, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0644); err != nil {
		return fmt.Errorf("failed to stage font at %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to install font at %s: %w", path, err)
	}
	return nil
}
