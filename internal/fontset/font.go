// Package fontset defines the font identity value type used as a key across
// the reconciliation pipeline, together with ordered set and map containers
// built on its total order.
package fontset

import (
	"fmt"
	"strings"
)

// Style is the slant classification of a font face.
type Style uint8

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

// String returns the canonical capitalized form used in manifests.
func (s Style) String() string {
	switch s {
	case StyleItalic:
		return "Italic"
	case StyleOblique:
		return "Oblique"
	default:
		return "Normal"
	}
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Style names are matched
// case-insensitively on read.
func (s *Style) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "normal":
		*s = StyleNormal
	case "italic":
		*s = StyleItalic
	case "oblique":
		*s = StyleOblique
	default:
		return fmt.Errorf("invalid font style %q", string(text))
	}
	return nil
}

// Weight is a font weight on the CSS scale (1..1000, 400 = regular).
type Weight int

// DefaultWeight is used when a manifest entry omits the weight field.
const DefaultWeight Weight = 400

// Stretch is a font width expressed as a per-mille ratio (1000 = 100%).
type Stretch int

// DefaultStretch is used when a manifest entry omits the stretch field.
const DefaultStretch Stretch = 1000

// Font identifies a font face by family name, style, weight and stretch.
// Two fonts are equal iff all four fields are equal; there is no fuzzy
// matching anywhere in the pipeline.
type Font struct {
	Family  string  `toml:"family_name"`
	Style   Style   `toml:"style"`
	Weight  Weight  `toml:"weight"`
	Stretch Stretch `toml:"stretch"`
}

// Compare orders fonts by family, then style, then weight, then stretch.
// The total order makes set and map iteration deterministic across runs.
func Compare(a, b Font) int {
	if c := strings.Compare(a.Family, b.Family); c != 0 {
		return c
	}
	if a.Style != b.Style {
		if a.Style < b.Style {
			return -1
		}
		return 1
	}
	if a.Weight != b.Weight {
		if a.Weight < b.Weight {
			return -1
		}
		return 1
	}
	if a.Stretch != b.Stretch {
		if a.Stretch < b.Stretch {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether a sorts before b in the font total order.
func Less(a, b Font) bool {
	return Compare(a, b) < 0
}

// String renders a compact human-readable form used in reports and logs.
func (f Font) String() string {
	return fmt.Sprintf("%s (%s, w%d, s%d)", f.Family, f.Style, f.Weight, f.Stretch)
}
