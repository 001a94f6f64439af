// Package scanner indexes font directories by walking them recursively and
// introspecting every candidate font file.
package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/typmgr/fontctl/internal/fontset"
	"github.com/typmgr/fontctl/internal/introspect"
)

// fontFilePattern selects the file names handed to introspection. Matching
// is done on the lowercased base name.
const fontFilePattern = "*.{ttf,otf,ttc,otc}"

// isFontFile reports whether the base name looks like a font file.
func isFontFile(name string) bool {
	ok, err := doublestar.Match(fontFilePattern, strings.ToLower(name))
	return err == nil && ok
}

// Index walks dir recursively and returns a map from every discovered font
// identity to the file containing it. A missing or unreadable directory
// yields an empty map: the project font directory may not exist yet.
func Index(dir string) fontset.PathMap {
	m := fontset.NewPathMap()

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() || !isFontFile(d.Name()) {
			return nil
		}
		faces, err := introspect.Faces(path)
		if err != nil {
			return nil
		}
		for _, f := range faces {
			m.Insert(f, path)
		}
		return nil
	})

	return m
}

// IndexDirs indexes several roots in order. Later directories override
// earlier ones when the same identity appears more than once.
func IndexDirs(dirs []string) fontset.PathMap {
	m := fontset.NewPathMap()
	for _, dir := range dirs {
		sub := Index(dir)
		m.Merge(sub)
	}
	return m
}
