package library

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/typmgr/fontctl/internal/fontset"
)

// ErrInvalidRepoPath indicates a stored repository path that cannot be
// decomposed into a repository identifier and an in-repository remainder.
var ErrInvalidRepoPath = errors.New("invalid repository path")

// rawContentHost serves raw file contents for GitHub repositories.
const rawContentHost = "raw.githubusercontent.com"

// defaultBranch is the branch raw-content URLs are built against.
const defaultBranch = "main"

// SplitRepoPath decomposes a stored remote path of the form
// owner/repo/<remainder...> into the repository identifier (owner/repo) and
// the path inside that repository. Paths with fewer than three segments, or
// with empty segments in the repository part, fail explicitly.
func SplitRepoPath(p string) (repo, remainder string, err error) {
	parts := strings.Split(filepath.ToSlash(p), "/")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("%w: %q has fewer than 3 segments", ErrInvalidRepoPath, p)
	}
	if parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q has an empty repository segment", ErrInvalidRepoPath, p)
	}
	return parts[0] + "/" + parts[1], strings.Join(parts[2:], "/"), nil
}

// RawContentURL builds the download URL for a file inside a repository.
func RawContentURL(repo, remainder string) string {
	return fmt.Sprintf("https://%s/%s/%s/%s", rawContentHost, repo, defaultBranch, remainder)
}

// ValidRepo reports whether id is an owner/repo repository identifier.
func ValidRepo(id string) bool {
	parts := strings.Split(id, "/")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

// StripRoot rewrites every path in m relative to root. Used when publishing
// a local library's manifest, whose paths must be library-relative. Paths
// outside root are kept unchanged.
func StripRoot(m fontset.PathMap, root string) fontset.PathMap {
	out := fontset.NewPathMap()
	for _, f := range m.Fonts() {
		p, _ := m.Lookup(f)
		if rel, err := filepath.Rel(root, p); err == nil && !strings.HasPrefix(rel, "..") {
			p = rel
		}
		out.Insert(f, filepath.ToSlash(p))
	}
	return out
}
