package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typmgr/fontctl/internal/fontset"
	"github.com/typmgr/fontctl/internal/reconcile"
)

func font(family string, style fontset.Style, weight fontset.Weight) fontset.Font {
	return fontset.Font{Family: family, Style: style, Weight: weight, Stretch: fontset.DefaultStretch}
}

func TestRenderAllStatuses(t *testing.T) {
	present := font("Alpha", fontset.StyleNormal, 400)
	embedded := font("DejaVu Sans Mono", fontset.StyleNormal, 400)
	redundant := font("Extra", fontset.StyleItalic, 700)
	repairable := font("Missing A", fontset.StyleNormal, 400)
	unrepairable := font("Missing B", fontset.StyleNormal, 400)

	sets := reconcile.Compute(
		fontset.NewSet(present, embedded, repairable, unrepairable),
		fontset.NewSet(present, redundant),
		fontset.NewSet(embedded),
	)

	lib := fontset.NewPathMap()
	lib.Insert(repairable, "/lib/missing-a.ttf")

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sets, lib, Options{FontDir: "/proj/fonts"}))

	out := buf.String()
	assert.Contains(t, out, "Font directory: /proj/fonts")
	assert.Contains(t, out, "present")
	assert.Contains(t, out, "embedded")
	assert.Contains(t, out, "redundant")
	assert.Contains(t, out, "repairable")
	assert.Contains(t, out, "unrepairable")
	assert.Contains(t, out, "4 required, 2 missing (1 repairable), 1 redundant")
	assert.Contains(t, out, "Legend:")
	assert.Contains(t, out, "missing, available in the library")
	assert.Contains(t, out, "fontctl update")
	assert.NotContains(t, out, "\033[", "colors must be off by default")
}

func TestRenderSortedOutput(t *testing.T) {
	a := font("Alpha", fontset.StyleNormal, 400)
	b := font("Beta", fontset.StyleNormal, 400)

	sets := reconcile.Compute(fontset.NewSet(b, a), fontset.NewSet(b, a), fontset.NewSet())

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sets, fontset.NewPathMap(), Options{}))

	out := buf.String()
	assert.Less(t, strings.Index(out, "Alpha"), strings.Index(out, "Beta"))
}

func TestRenderEmpty(t *testing.T) {
	sets := reconcile.Compute(fontset.NewSet(), fontset.NewSet(), fontset.NewSet())

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sets, fontset.NewPathMap(), Options{}))
	assert.Contains(t, buf.String(), "No fonts required and none present.")
}

func TestRenderColors(t *testing.T) {
	missing := font("Gone", fontset.StyleNormal, 400)
	sets := reconcile.Compute(fontset.NewSet(missing), fontset.NewSet(), fontset.NewSet())

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sets, fontset.NewPathMap(), Options{UseColor: true}))
	assert.Contains(t, buf.String(), colorRed, "unrepairable fonts render red")
}

func TestRenderNoUpdateHintWhenNothingRepairable(t *testing.T) {
	present := font("Alpha", fontset.StyleNormal, 400)
	sets := reconcile.Compute(fontset.NewSet(present), fontset.NewSet(present), fontset.NewSet())

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sets, fontset.NewPathMap(), Options{}))
	assert.NotContains(t, buf.String(), "fontctl update")
}

func TestRenderLibrary(t *testing.T) {
	a := font("Alpha", fontset.StyleNormal, 400)
	b := font("Beta", fontset.StyleItalic, 700)

	lib := fontset.NewPathMap()
	lib.Insert(b, "owner/repo/fonts/beta.ttf")
	lib.Insert(a, "/lib/alpha.ttf")

	var buf bytes.Buffer
	require.NoError(t, RenderLibrary(&buf, lib, Options{}))

	out := buf.String()
	assert.Contains(t, out, "/lib/alpha.ttf")
	assert.Contains(t, out, "owner/repo/fonts/beta.ttf")
	assert.Contains(t, out, "2 font(s) available")
	assert.Less(t, strings.Index(out, "Alpha"), strings.Index(out, "Beta"))
}

func TestRenderLibraryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderLibrary(&buf, fontset.NewPathMap(), Options{}))
	assert.Contains(t, buf.String(), "Library is empty.")
}
