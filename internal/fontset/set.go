package fontset

import "sort"

// Set is a mathematical set of fonts. Iteration via Fonts is always in the
// font total order regardless of insertion order.
type Set struct {
	members map[Font]struct{}
}

// NewSet returns a set containing the given fonts.
func NewSet(fonts ...Font) Set {
	s := Set{members: make(map[Font]struct{}, len(fonts))}
	for _, f := range fonts {
		s.members[f] = struct{}{}
	}
	return s
}

// Insert adds a font to the set.
func (s *Set) Insert(f Font) {
	if s.members == nil {
		s.members = make(map[Font]struct{})
	}
	s.members[f] = struct{}{}
}

// Contains reports membership.
func (s Set) Contains(f Font) bool {
	_, ok := s.members[f]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return len(s.members) == 0
}

// Fonts returns the members sorted in the font total order.
func (s Set) Fonts() []Font {
	out := make([]Font, 0, len(s.members))
	for f := range s.members {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Difference returns the members of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := NewSet()
	for f := range s.members {
		if !other.Contains(f) {
			out.Insert(f)
		}
	}
	return out
}

// PathMap maps fonts to locatable paths. Inserts are last-write-wins, which
// gives later library directories precedence on key collisions. Iteration
// via Fonts is in the font total order.
type PathMap struct {
	paths map[Font]string
}

// NewPathMap returns an empty path map.
func NewPathMap() PathMap {
	return PathMap{paths: make(map[Font]string)}
}

// Insert records the path for a font, replacing any earlier entry.
func (m *PathMap) Insert(f Font, path string) {
	if m.paths == nil {
		m.paths = make(map[Font]string)
	}
	m.paths[f] = path
}

// Lookup returns the path recorded for a font.
func (m PathMap) Lookup(f Font) (string, bool) {
	p, ok := m.paths[f]
	return p, ok
}

// Contains reports whether the map has an entry for the font.
func (m PathMap) Contains(f Font) bool {
	_, ok := m.paths[f]
	return ok
}

// Len returns the number of entries.
func (m PathMap) Len() int {
	return len(m.paths)
}

// Fonts returns the keys sorted in the font total order.
func (m PathMap) Fonts() []Font {
	out := make([]Font, 0, len(m.paths))
	for f := range m.paths {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Keys returns the key set of the map.
func (m PathMap) Keys() Set {
	s := NewSet()
	for f := range m.paths {
		s.Insert(f)
	}
	return s
}

// Merge inserts every entry of other into m, other's entries winning on
// collision.
func (m *PathMap) Merge(other PathMap) {
	for _, f := range other.Fonts() {
		p, _ := other.Lookup(f)
		m.Insert(f, p)
	}
}
