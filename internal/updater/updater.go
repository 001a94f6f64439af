// Package updater repairs a project font directory by copying missing fonts
// from a local library or downloading them from remote repositories.
package updater

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/typmgr/fontctl/internal/fontset"
	"github.com/typmgr/fontctl/internal/introspect"
	"github.com/typmgr/fontctl/internal/library"
	"github.com/typmgr/fontctl/pkg/logger"
	"github.com/typmgr/fontctl/pkg/safeio"
)

// Outcome classifies what happened to a single missing font during a run.
type Outcome int

const (
	// OutcomeInstalled means the font file was written into the target
	// directory.
	OutcomeInstalled Outcome = iota
	// OutcomeSkipped means the library has no entry for the font, so
	// nothing could be done.
	OutcomeSkipped
	// OutcomeFailed means installation was attempted and failed.
	OutcomeFailed
)

// String names the outcome for reports and logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeInstalled:
		return "installed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Action records the outcome of one font repair attempt.
type Action struct {
	Font    fontset.Font
	Outcome Outcome
	Path    string // destination path when installed
	Reason  error  // set when Outcome is OutcomeFailed
}

// Result aggregates the per-font actions of a run in font order.
type Result struct {
	Actions []Action
}

// Installed counts fonts written during the run.
func (r Result) Installed() int { return r.count(OutcomeInstalled) }

// Skipped counts fonts the library could not provide.
func (r Result) Skipped() int { return r.count(OutcomeSkipped) }

// Failed counts fonts whose installation was attempted and failed.
func (r Result) Failed() int { return r.count(OutcomeFailed) }

func (r Result) count(o Outcome) int {
	n := 0
	for _, a := range r.Actions {
		if a.Outcome == o {
			n++
		}
	}
	return n
}

// Err folds per-font failures into a single error, nil when every attempted
// installation succeeded. Skipped fonts are informational and never turn
// into an error. The per-font causes stay reachable through errors.Is so
// the exit-code mapping sees them.
func (r Result) Err() error {
	var errs []error
	for _, a := range r.Actions {
		if a.Outcome == OutcomeFailed {
			errs = append(errs, fmt.Errorf("%s: %w", a.Font, a.Reason))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d font(s) failed to install: %w", len(errs), errors.Join(errs...))
}

// Updater installs missing fonts into a project font directory.
type Updater struct {
	fetcher library.Fetcher
}

// New returns an updater using the default HTTP transport for remote
// downloads.
func New() *Updater {
	return &Updater{fetcher: library.NewRealFetcher()}
}

// NewWithFetcher returns an updater with injectable HTTP for tests.
func NewWithFetcher(f library.Fetcher) *Updater {
	return &Updater{fetcher: f}
}

// Run attempts to install every font in missing into destDir, resolving each
// against the library map. Fonts are processed in the font total order. A
// font absent from the library is skipped, not failed. Individual failures
// are recorded and do not abort the rest of the run; files already written
// stay in place.
func (u *Updater) Run(missing fontset.Set, lib fontset.PathMap, kind library.Kind, destDir string) Result {
	var res Result
	for _, f := range missing.Fonts() {
		src, ok := lib.Lookup(f)
		if !ok {
			logger.Info("font not in library, skipping", logger.String("font", f.String()))
			res.Actions = append(res.Actions, Action{Font: f, Outcome: OutcomeSkipped})
			continue
		}

		var (
			dest string
			err  error
		)
		if kind == library.KindRemote {
			dest, err = u.download(src, destDir)
		} else {
			dest, err = u.copy(src, destDir)
		}
		if err != nil {
			logger.Error("failed to install font", logger.String("font", f.String()), logger.Err(err))
			res.Actions = append(res.Actions, Action{Font: f, Outcome: OutcomeFailed, Reason: err})
			continue
		}

		logger.Info("installed font", logger.String("font", f.String()), logger.String("path", dest))
		res.Actions = append(res.Actions, Action{Font: f, Outcome: OutcomeInstalled, Path: dest})
	}
	return res
}

// copy installs a font from a local library path. The source bytes are read
// through a lazy slot so a read failure surfaces as the install error rather
// than up front.
func (u *Updater) copy(src, destDir string) (string, error) {
	slot := introspect.NewSlot(src)
	data, err := slot.Data()
	if err != nil {
		return "", fmt.Errorf("read library font: %w", err)
	}

	dest := filepath.Join(destDir, filepath.Base(src))
	if err := safeio.WriteFileContained(destDir, dest, data); err != nil {
		return "", fmt.Errorf("write font file: %w", err)
	}
	return dest, nil
}

// download installs a font from a remote library path of the form
// owner/repo/<remainder>. The file keeps its base name under destDir; the
// in-repository directory structure is not mirrored.
func (u *Updater) download(src, destDir string) (string, error) {
	repo, remainder, err := library.SplitRepoPath(src)
	if err != nil {
		return "", err
	}

	url := library.RawContentURL(repo, remainder)
	resp, err := u.fetcher.Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", library.ErrFetch, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s: HTTP status %d", library.ErrFetch, url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", library.ErrFetch, url, err)
	}
	if len(data) == 0 {
		return "", errors.New("remote font file is empty")
	}

	dest := filepath.Join(destDir, path.Base(remainder))
	if err := safeio.WriteFileContained(destDir, dest, data); err != nil {
		return "", fmt.Errorf("write font file: %w", err)
	}
	return dest, nil
}
