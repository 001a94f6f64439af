package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/typmgr/fontctl/internal/fontset"
)

// ManifestName is the well-known file name a font library publishes at its
// root, both locally and in a remote repository.
const ManifestName = "font_library.toml"

// ErrManifestParse indicates a library manifest that cannot be decoded.
var ErrManifestParse = errors.New("font library manifest parse failure")

// Entry is one published font with its path relative to the library root.
type Entry struct {
	fontset.Font
	Path string `toml:"path"`
}

// Manifest is the published catalog of a font library.
type Manifest struct {
	Fonts []Entry `toml:"fonts"`
}

// ParseManifest decodes a library manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	for i, e := range m.Fonts {
		if e.Family == "" {
			return nil, fmt.Errorf("%w: fonts[%d]: family_name is required", ErrManifestParse, i)
		}
		if e.Path == "" {
			return nil, fmt.Errorf("%w: fonts[%d] (%s): path is required", ErrManifestParse, i, e.Family)
		}
	}
	return &m, nil
}

// PathMap converts the manifest entries to an identity→path map. Defaults
// for omitted weight/stretch match the project manifest conventions.
func (m *Manifest) PathMap() fontset.PathMap {
	out := fontset.NewPathMap()
	for _, e := range m.Fonts {
		f := e.Font
		if f.Weight == 0 {
			f.Weight = fontset.DefaultWeight
		}
		if f.Stretch == 0 {
			f.Stretch = fontset.DefaultStretch
		}
		out.Insert(f, e.Path)
	}
	return out
}

// ManifestFromMap builds a manifest with entries sorted in the font total
// order, ready for publishing.
func ManifestFromMap(m fontset.PathMap) *Manifest {
	fonts := m.Fonts()
	out := &Manifest{Fonts: make([]Entry, 0, len(fonts))}
	for _, f := range fonts {
		p, _ := m.Lookup(f)
		out.Fonts = append(out.Fonts, Entry{Font: f, Path: p})
	}
	return out
}

// Encode renders the manifest as TOML.
func (m *Manifest) Encode() ([]byte, error) {
	return toml.Marshal(m)
}

// WriteManifest publishes the map as font_library.toml under dir, with all
// paths rewritten relative to root (the library directory the paths came
// from).
func WriteManifest(m fontset.PathMap, root, dir string) (string, error) {
	stripped := StripRoot(m, root)
	data, err := ManifestFromMap(stripped).Encode()
	if err != nil {
		return "", fmt.Errorf("encode library manifest: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write library manifest: %w", err)
	}
	return path, nil
}
