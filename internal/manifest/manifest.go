// Package manifest loads the project font manifest (font_config.toml) and
// resolves the project's font directory.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/typmgr/fontctl/internal/fontset"
)

var (
	// ErrNotFound indicates the manifest file does not exist.
	ErrNotFound = errors.New("font manifest not found")
	// ErrParse indicates the manifest exists but cannot be decoded.
	ErrParse = errors.New("font manifest parse failure")
)

// DefaultFontDir is the project font directory used when the manifest does
// not set font_dir.
const DefaultFontDir = "fonts"

// Requirement is a single manifest entry. The weight field accepts either a
// bare integer or an array of integers; an N-weight entry expands to N font
// identities sharing the other fields.
type Requirement struct {
	Family  string          `toml:"family_name"`
	Style   fontset.Style   `toml:"style"`
	Weight  any             `toml:"weight"`
	Stretch fontset.Stretch `toml:"stretch"`
}

// Config is the decoded project manifest.
type Config struct {
	FontDir string        `toml:"font_dir"`
	Fonts   []Requirement `toml:"fonts"`
}

// Load reads and decodes the manifest at path. The weight fields are
// validated eagerly so that a malformed manifest fails before any set
// computation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read font manifest %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes manifest content and validates every requirement.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for i, req := range cfg.Fonts {
		if req.Family == "" {
			return nil, fmt.Errorf("%w: fonts[%d]: family_name is required", ErrParse, i)
		}
		if _, err := coerceWeights(req.Weight); err != nil {
			return nil, fmt.Errorf("%w: fonts[%d] (%s): %v", ErrParse, i, req.Family, err)
		}
	}
	return &cfg, nil
}

// Expand returns the required font identities in manifest order, with each
// multi-weight requirement expanded to one identity per weight.
func (c *Config) Expand() []fontset.Font {
	out := make([]fontset.Font, 0, len(c.Fonts))
	for _, req := range c.Fonts {
		weights, err := coerceWeights(req.Weight)
		if err != nil {
			// Load validated every requirement already.
			continue
		}
		stretch := req.Stretch
		if stretch == 0 {
			stretch = fontset.DefaultStretch
		}
		for _, w := range weights {
			out = append(out, fontset.Font{
				Family:  req.Family,
				Style:   req.Style,
				Weight:  w,
				Stretch: stretch,
			})
		}
	}
	return out
}

// Required returns the expanded requirements as a set.
func (c *Config) Required() fontset.Set {
	return fontset.NewSet(c.Expand()...)
}

// ResolveFontDir computes the project's font directory for a manifest at
// manifestPath: font_dir unchanged when absolute, otherwise joined onto the
// manifest's parent directory (the current directory when the path has no
// parent). Pure function of its inputs.
func ResolveFontDir(manifestPath string, cfg *Config) string {
	fontDir := cfg.FontDir
	if fontDir == "" {
		fontDir = DefaultFontDir
	}
	if filepath.IsAbs(fontDir) {
		return fontDir
	}
	parent := filepath.Dir(manifestPath)
	if parent == "" {
		parent = "."
	}
	return filepath.Join(parent, fontDir)
}

// coerceWeights normalizes the weight field to a list of weights. A missing
// field defaults to the regular weight.
func coerceWeights(v any) ([]fontset.Weight, error) {
	switch w := v.(type) {
	case nil:
		return []fontset.Weight{fontset.DefaultWeight}, nil
	case int64:
		cw, err := checkWeight(w)
		if err != nil {
			return nil, err
		}
		return []fontset.Weight{cw}, nil
	case []any:
		if len(w) == 0 {
			return []fontset.Weight{fontset.DefaultWeight}, nil
		}
		out := make([]fontset.Weight, 0, len(w))
		for _, elem := range w {
			n, ok := elem.(int64)
			if !ok {
				return nil, fmt.Errorf("weight list element %v is not an integer", elem)
			}
			cw, err := checkWeight(n)
			if err != nil {
				return nil, err
			}
			out = append(out, cw)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("weight must be an integer or a list of integers, got %T", v)
	}
}

func checkWeight(n int64) (fontset.Weight, error) {
	if n < 1 || n > 1000 {
		return 0, fmt.Errorf("weight %d outside 1..1000", n)
	}
	return fontset.Weight(n), nil
}
