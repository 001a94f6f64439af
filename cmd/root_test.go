package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typmgr/fontctl/internal/library"
	"github.com/typmgr/fontctl/internal/manifest"
	"github.com/typmgr/fontctl/pkg/exitcode"
)

// newTestRoot builds an isolated command tree writing to a buffer.
func newTestRoot() (*cobra.Command, *bytes.Buffer) {
	root := newRootCommand()
	registerSubcommands(root)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestRootReportsErrorsOnce(t *testing.T) {
	// Execute logs fatal errors through the logger, so cobra must not
	// print them a second time.
	root, _ := newTestRoot()
	assert.True(t, root.SilenceErrors)
	assert.True(t, root.SilenceUsage)
}

func TestRootHasSubcommands(t *testing.T) {
	root, _ := newTestRoot()

	expected := []string{"check", "update", "library", "version"}
	for _, name := range expected {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %s", name)
	}
}

func TestVersionCommand(t *testing.T) {
	root, buf := newTestRoot()
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "fontctl ")
}

func TestVersionFlag(t *testing.T) {
	root, buf := newTestRoot()
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "fontctl ")
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"manifest missing", fmt.Errorf("x: %w", manifest.ErrNotFound), exitcode.ConfigError},
		{"manifest parse", fmt.Errorf("x: %w", manifest.ErrParse), exitcode.ConfigError},
		{"usage", fmt.Errorf("%w: bad flags", errUsage), exitcode.ArgumentError},
		{"bad repo path", fmt.Errorf("x: %w", library.ErrInvalidRepoPath), exitcode.ArgumentError},
		{"fetch", fmt.Errorf("x: %w", library.ErrFetch), exitcode.NetworkError},
		{"remote manifest", fmt.Errorf("x: %w", library.ErrManifestParse), exitcode.NetworkError},
		{"permission", fmt.Errorf("x: %w", os.ErrPermission), exitcode.FileSystemError},
		{"other", errors.New("boom"), exitcode.GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeFor(tt.err))
		})
	}
}
