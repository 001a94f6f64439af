package introspect

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/typmgr/fontctl/internal/fontset"
)

func writeGoRegular(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "GoRegular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	return path
}

func TestFacesRealFont(t *testing.T) {
	faces, err := Faces(writeGoRegular(t))
	require.NoError(t, err)
	require.Len(t, faces, 1)

	f := faces[0]
	assert.Equal(t, "Go", f.Family)
	assert.Equal(t, fontset.StyleNormal, f.Style)
	assert.Equal(t, fontset.Weight(400), f.Weight)
	assert.Equal(t, fontset.Stretch(1000), f.Stretch)
}

// makeCollection wraps a single-font file into a TrueType collection with
// the given number of subfont entries, all pointing at the same table
// directory. The table record offsets are rewritten to stay file-absolute.
func makeCollection(t *testing.T, ttf []byte, copies int) []byte {
	t.Helper()
	headerLen := 12 + 4*copies

	out := []byte{'t', 't', 'c', 'f', 0, 1, 0, 0}
	out = binary.BigEndian.AppendUint32(out, uint32(copies))
	for i := 0; i < copies; i++ {
		out = binary.BigEndian.AppendUint32(out, uint32(headerLen))
	}

	shifted := make([]byte, len(ttf))
	copy(shifted, ttf)
	numTables := int(binary.BigEndian.Uint16(shifted[4:6]))
	for i := 0; i < numTables; i++ {
		rec := 12 + 16*i + 8
		off := binary.BigEndian.Uint32(shifted[rec : rec+4])
		binary.BigEndian.PutUint32(shifted[rec:rec+4], off+uint32(headerLen))
	}
	return append(out, shifted...)
}

func TestFacesCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go.ttc")
	require.NoError(t, os.WriteFile(path, makeCollection(t, goregular.TTF, 2), 0o644))

	faces, err := Faces(path)
	require.NoError(t, err)
	require.Len(t, faces, 2, "every subfont of a collection yields a face")

	for _, f := range faces {
		assert.Equal(t, "Go", f.Family)
		assert.Equal(t, fontset.StyleNormal, f.Style)
		assert.Equal(t, fontset.Weight(400), f.Weight)
		assert.Equal(t, fontset.Stretch(1000), f.Stretch)
	}
}

func TestFacesTruncatedCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttc")
	data := makeCollection(t, goregular.TTF, 1)[:64]
	require.NoError(t, os.WriteFile(path, data, 0o644))

	faces, err := Faces(path)
	require.NoError(t, err)
	assert.Empty(t, faces, "a corrupt collection is skipped, not fatal")
}

func TestFacesNonFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readme.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))

	faces, err := Faces(path)
	require.NoError(t, err)
	assert.Empty(t, faces)
}

func TestFacesMissingFile(t *testing.T) {
	_, err := Faces(filepath.Join(t.TempDir(), "absent.ttf"))
	require.Error(t, err)
}

func TestSlotLazyRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.ttf")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	slot := NewSlot(path)
	assert.Equal(t, path, slot.Path())

	data, err := slot.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)

	// The first read is cached: removing the file does not affect later
	// accesses.
	require.NoError(t, os.Remove(path))
	again, err := slot.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestSlotReadErrorSticks(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), "never.ttf"))
	_, err := slot.Data()
	require.Error(t, err)
	_, err2 := slot.Data()
	assert.Equal(t, err, err2)
}
