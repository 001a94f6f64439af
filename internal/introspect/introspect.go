// Package introspect extracts font face identities from font files. Binary
// parsing is delegated to seehuhn.de/go/sfnt; this package only maps the
// reported metadata onto the identity model.
package introspect

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/os2"

	"github.com/typmgr/fontctl/internal/fontset"
)

// stretchByWidthClass maps OS/2 usWidthClass values (1..9) to per-mille
// stretch ratios.
var stretchByWidthClass = map[os2.Width]fontset.Stretch{
	os2.WidthUltraCondensed: 500,
	os2.WidthExtraCondensed: 625,
	os2.WidthCondensed:      750,
	os2.WidthSemiCondensed:  875,
	os2.WidthNormal:         1000,
	os2.WidthSemiExpanded:   1125,
	os2.WidthExpanded:       1250,
	os2.WidthExtraExpanded:  1500,
	os2.WidthUltraExpanded:  2000,
}

// ttcTag is the magic at the start of a TrueType collection file.
const ttcTag = "ttcf"

// maxCollectionFonts bounds the subfont count read from a collection header
// so a corrupt count cannot drive the loop.
const maxCollectionFonts = 512

// Faces returns the font identities contained in the file at path. A
// collection file yields one identity per subfont. Files that exist but are
// not parseable fonts yield no faces and no error, so a directory scan can
// feed every regular file through without pre-filtering.
func Faces(path string) ([]fontset.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	if isCollection(data) {
		return collectionFaces(data), nil
	}
	fnt, err := sfnt.Read(bytes.NewReader(data))
	if err != nil || fnt.FamilyName == "" {
		return nil, nil
	}
	return []fontset.Font{identity(fnt)}, nil
}

func isCollection(data []byte) bool {
	return len(data) >= 12 && string(data[:4]) == ttcTag
}

// collectionFaces enumerates the subfonts of a TrueType collection. The
// collection header is a 12-byte preamble followed by one absolute offset
// per subfont, each pointing at an ordinary sfnt table directory whose table
// offsets are absolute file offsets. Unparseable subfonts are skipped.
func collectionFaces(data []byte) []fontset.Font {
	numFonts := binary.BigEndian.Uint32(data[8:12])
	if numFonts > maxCollectionFonts {
		return nil
	}

	var out []fontset.Font
	for i := uint32(0); i < numFonts; i++ {
		rec := 12 + 4*int(i)
		if rec+4 > len(data) {
			break
		}
		off := binary.BigEndian.Uint32(data[rec : rec+4])
		if fnt := readSubfont(data, off); fnt != nil {
			out = append(out, identity(fnt))
		}
	}
	return out
}

// readSubfont parses one subfont of a collection. The single-font reader
// expects the table directory at the start of its input, so the subfont's
// directory is spliced over the front of a copy of the file; the table
// records inside keep working because their offsets are file-absolute.
func readSubfont(data []byte, off uint32) *sfnt.Font {
	if int64(off)+12 > int64(len(data)) {
		return nil
	}
	numTables := int(binary.BigEndian.Uint16(data[off+4 : off+6]))
	dirLen := 12 + 16*numTables
	if int64(off)+int64(dirLen) > int64(len(data)) {
		return nil
	}

	view := make([]byte, len(data))
	copy(view, data)
	copy(view[:dirLen], data[off:int(off)+dirLen])

	fnt, err := sfnt.Read(bytes.NewReader(view))
	if err != nil || fnt.FamilyName == "" {
		return nil
	}
	return fnt
}

func identity(fnt *sfnt.Font) fontset.Font {
	weight := fontset.Weight(fnt.Weight)
	if weight == 0 {
		weight = fontset.DefaultWeight
	}

	stretch, ok := stretchByWidthClass[fnt.Width]
	if !ok {
		stretch = fontset.DefaultStretch
	}

	style := fontset.StyleNormal
	switch {
	case fnt.IsOblique:
		style = fontset.StyleOblique
	case fnt.IsItalic:
		style = fontset.StyleItalic
	}

	return fontset.Font{
		Family:  fnt.FamilyName,
		Style:   style,
		Weight:  weight,
		Stretch: stretch,
	}
}

// Slot holds the location of a font file and, lazily, its raw bytes. The
// bytes are read on first access and cached for the lifetime of the slot.
type Slot struct {
	path string

	once sync.Once
	data []byte
	err  error
}

// NewSlot returns a slot for the font file at path. No I/O happens until
// Data is called.
func NewSlot(path string) *Slot {
	return &Slot{path: path}
}

// Path returns the location this slot reads from.
func (s *Slot) Path() string {
	return s.path
}

// Data returns the font file bytes, reading them on first call.
func (s *Slot) Data() ([]byte, error) {
	s.once.Do(func() {
		s.data, s.err = os.ReadFile(s.path)
	})
	return s.data, s.err
}
