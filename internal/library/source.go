// Package library resolves font library sources to identity→path mappings.
// A source is either a set of local directories or a set of GitHub
// repositories publishing a font_library.toml catalog.
package library

import (
	"errors"
	"fmt"
	"io"

	"github.com/typmgr/fontctl/internal/fontset"
	"github.com/typmgr/fontctl/internal/scanner"
)

// ErrFetch indicates a remote library request that failed or returned a
// non-success status.
var ErrFetch = errors.New("font library fetch failure")

// Kind discriminates the two closed source variants.
type Kind int

const (
	KindLocal Kind = iota
	KindRemote
)

// String names the variant for reports and logs.
func (k Kind) String() string {
	if k == KindRemote {
		return "remote"
	}
	return "local"
}

// Source is a font library source: local directories or remote repository
// identifiers, resolved to one identity→path map per run.
type Source struct {
	Kind      Kind
	Locations []string

	fetcher Fetcher
}

// NewLocal returns a source over local library directories.
func NewLocal(dirs []string) Source {
	return Source{Kind: KindLocal, Locations: dirs}
}

// NewRemote returns a source over owner/repo repository identifiers.
func NewRemote(repos []string) Source {
	return Source{Kind: KindRemote, Locations: repos, fetcher: NewRealFetcher()}
}

// NewRemoteWithFetcher returns a remote source with injectable HTTP.
func NewRemoteWithFetcher(repos []string, fetcher Fetcher) Source {
	return Source{Kind: KindRemote, Locations: repos, fetcher: fetcher}
}

// Resolve produces the identity→path map for the source. Local directories
// are walked in order with later directories overriding earlier ones on key
// collisions. Remote repositories contribute their published manifest with
// every path prefixed by the repository identifier so the repository can be
// recovered later for downloads. Resolution is strict: the first failing
// source aborts the run.
func (s Source) Resolve() (fontset.PathMap, error) {
	if s.Kind == KindLocal {
		return scanner.IndexDirs(s.Locations), nil
	}

	out := fontset.NewPathMap()
	for _, repo := range s.Locations {
		sub, err := s.resolveRepo(repo)
		if err != nil {
			return fontset.PathMap{}, err
		}
		out.Merge(sub)
	}
	return out, nil
}

func (s Source) resolveRepo(repo string) (fontset.PathMap, error) {
	if !ValidRepo(repo) {
		return fontset.PathMap{}, fmt.Errorf("%w: repository %q is not of the form owner/repo", ErrInvalidRepoPath, repo)
	}

	url := RawContentURL(repo, ManifestName)
	resp, err := s.fetcher.Get(url)
	if err != nil {
		return fontset.PathMap{}, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fontset.PathMap{}, fmt.Errorf("%w: %s: HTTP status %d", ErrFetch, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fontset.PathMap{}, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}

	m, err := ParseManifest(body)
	if err != nil {
		return fontset.PathMap{}, fmt.Errorf("%s: %w", repo, err)
	}

	out := fontset.NewPathMap()
	local := m.PathMap()
	for _, f := range local.Fonts() {
		p, _ := local.Lookup(f)
		out.Insert(f, repo+"/"+p)
	}
	return out, nil
}
