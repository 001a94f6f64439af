package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/typmgr/fontctl/internal/library"
)

// writeProject lays out a project directory with a manifest requiring the Go
// font and an empty font directory. Returns the manifest path.
func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "font_config.toml")
	content := `[[fonts]]
family_name = "Go"
weight = 400
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(content), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "fonts"), 0o755))
	return manifestPath
}

// writeLibrary creates a library directory holding the Go Regular face.
func writeLibrary(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go-Regular.ttf"), goregular.TTF, 0o644))
	return dir
}

func TestCheckReportsRepairable(t *testing.T) {
	manifestPath := writeProject(t)
	libDir := writeLibrary(t)

	root, buf := newTestRoot()
	root.SetArgs([]string{"check", manifestPath, "--library", libDir, "--no-color"})

	require.NoError(t, root.Execute())
	out := buf.String()
	assert.Contains(t, out, "Go (Normal, w400, s1000)")
	assert.Contains(t, out, "repairable")
	assert.Contains(t, out, "fontctl update")

	// check never writes into the project
	entries, err := os.ReadDir(filepath.Join(filepath.Dir(manifestPath), "fonts"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheckReportsUnrepairable(t *testing.T) {
	manifestPath := writeProject(t)
	emptyLib := t.TempDir()

	root, buf := newTestRoot()
	root.SetArgs([]string{"check", manifestPath, "--library", emptyLib, "--no-color"})

	require.NoError(t, root.Execute(), "unrepairable fonts are reported, not fatal")
	assert.Contains(t, buf.String(), "unrepairable")
}

func TestCheckMissingManifest(t *testing.T) {
	root, _ := newTestRoot()
	root.SetArgs([]string{"check", filepath.Join(t.TempDir(), "nope.toml")})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.toml")
}

func TestUpdateInstallsMissingFont(t *testing.T) {
	manifestPath := writeProject(t)
	libDir := writeLibrary(t)

	root, _ := newTestRoot()
	root.SetArgs([]string{"update", manifestPath, "--library", libDir, "--no-color"})

	require.NoError(t, root.Execute())
	assert.FileExists(t, filepath.Join(filepath.Dir(manifestPath), "fonts", "Go-Regular.ttf"))
}

func TestUpdateSecondRunFindsFontPresent(t *testing.T) {
	manifestPath := writeProject(t)
	libDir := writeLibrary(t)

	root, _ := newTestRoot()
	root.SetArgs([]string{"update", manifestPath, "--library", libDir, "--no-color"})
	require.NoError(t, root.Execute())

	root2, buf := newTestRoot()
	root2.SetArgs([]string{"check", manifestPath, "--library", libDir, "--no-color"})
	require.NoError(t, root2.Execute())
	assert.Contains(t, buf.String(), "present")
	assert.Contains(t, buf.String(), "1 required, 0 missing (0 repairable), 0 redundant")
}

func TestGithubWithExplicitLibraryBuildsRemoteSource(t *testing.T) {
	cmd := newCheckCmd()
	require.NoError(t, cmd.Flags().Set("library", "owner/repo"))
	require.NoError(t, cmd.Flags().Set("github", "true"))

	source, err := resolveSource(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, library.KindRemote, source.Kind)
	assert.Equal(t, []string{"owner/repo"}, source.Locations)
}

func TestGithubWithoutLibraryIsUsageError(t *testing.T) {
	cmd := newCheckCmd()
	require.NoError(t, cmd.Flags().Set("github", "true"))

	_, err := resolveSource(cmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUsage)
}

func TestLibraryCommandListsFonts(t *testing.T) {
	libDir := writeLibrary(t)

	root, buf := newTestRoot()
	root.SetArgs([]string{"library", "--library", libDir, "--no-color"})

	require.NoError(t, root.Execute())
	out := buf.String()
	assert.Contains(t, out, "Go (Normal, w400, s1000)")
	assert.Contains(t, out, "1 font(s) available")
}

func TestLibraryPublishManifest(t *testing.T) {
	libDir := writeLibrary(t)
	outDir := t.TempDir()

	root, _ := newTestRoot()
	root.SetArgs([]string{"library", "--library", libDir, "--output", outDir, "--no-color"})

	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(outDir, library.ManifestName))
	require.NoError(t, err)

	m, err := library.ParseManifest(data)
	require.NoError(t, err)
	require.Len(t, m.Fonts, 1)
	assert.Equal(t, "Go", m.Fonts[0].Family)
	assert.Equal(t, "Go-Regular.ttf", m.Fonts[0].Path)
}

func TestLibraryPublishRejectsMultipleRoots(t *testing.T) {
	root, _ := newTestRoot()
	root.SetArgs([]string{"library",
		"--library", t.TempDir(),
		"--library", t.TempDir(),
		"--output", t.TempDir()})

	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errUsage)
}
