package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typmgr/fontctl/internal/config"
	"github.com/typmgr/fontctl/internal/embedded"
	"github.com/typmgr/fontctl/internal/library"
	"github.com/typmgr/fontctl/internal/manifest"
	"github.com/typmgr/fontctl/internal/reconcile"
	"github.com/typmgr/fontctl/internal/report"
	"github.com/typmgr/fontctl/internal/scanner"
	"github.com/typmgr/fontctl/internal/updater"
	"github.com/typmgr/fontctl/pkg/logger"
)

// defaultManifest is the project manifest file name used when no positional
// argument is given.
const defaultManifest = "font_config.toml"

// errUsage marks argument validation failures so Execute can map them to the
// argument-error exit code.
var errUsage = errors.New("invalid arguments")

// addLibraryFlags registers the library selection flags shared by the
// check, update and library subcommands.
func addLibraryFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("library", nil, "Font library: directories, or owner/repo identifiers with --github")
	cmd.Flags().Bool("github", false, "Treat --library values as GitHub repositories")
}

// resolveSource builds the font library source from flags, falling back to
// the user config and finally to the OS font directories.
func resolveSource(cmd *cobra.Command, userCfg *config.Config) (library.Source, error) {
	locations, _ := cmd.Flags().GetStringSlice("library")
	github, _ := cmd.Flags().GetBool("github")

	if len(locations) > 0 {
		if github {
			return library.NewRemote(locations), nil
		}
		return library.NewLocal(locations), nil
	}

	if github {
		if userCfg != nil && len(userCfg.Library.Repos) > 0 {
			return library.NewRemote(userCfg.Library.Repos), nil
		}
		return library.Source{}, fmt.Errorf("%w: --github requires --library OWNER/REPO or configured repositories", errUsage)
	}

	if userCfg != nil && len(userCfg.Library.Dirs) > 0 {
		return library.NewLocal(userCfg.Library.Dirs), nil
	}
	return library.NewLocal(scanner.SystemFontDirs()), nil
}

// describeSource renders a source for the report header.
func describeSource(s library.Source) string {
	if len(s.Locations) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s", s.Kind, strings.Join(s.Locations, ", "))
}

// useColor reports whether report output should be colored, honoring the
// --no-color flag and the user config.
func useColor(cmd *cobra.Command, userCfg *config.Config) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	if userCfg != nil && userCfg.NoColor {
		return false
	}
	return true
}

// loadUserConfig reads the user defaults, degrading to nil on failure so a
// broken user config never blocks a run.
func loadUserConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("ignoring unreadable user config", logger.Err(err))
		return nil
	}
	return cfg
}

// runReconcile is the shared body of the check and update subcommands:
// load the manifest, index the project font directory, resolve the library,
// compute the sets and render the report. With repair enabled it then
// installs every repairable font.
func runReconcile(cmd *cobra.Command, args []string, repair bool) error {
	manifestPath := defaultManifest
	if len(args) > 0 {
		manifestPath = args[0]
	}

	userCfg := loadUserConfig()

	cfg, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	fontDir := manifest.ResolveFontDir(manifestPath, cfg)
	required := cfg.Required()
	logger.Debug("loaded manifest",
		logger.String("path", manifestPath),
		logger.Int("required", required.Len()))

	index := scanner.Index(fontDir)
	logger.Debug("indexed project fonts",
		logger.String("dir", fontDir),
		logger.Int("found", index.Len()))

	source, err := resolveSource(cmd, userCfg)
	if err != nil {
		return err
	}
	lib, err := source.Resolve()
	if err != nil {
		return err
	}

	sets := reconcile.Compute(required, index.Keys(), embedded.Fonts())

	opts := report.Options{
		UseColor: useColor(cmd, userCfg),
		FontDir:  fontDir,
		Library:  describeSource(source),
	}
	if err := report.Render(cmd.OutOrStdout(), sets, lib, opts); err != nil {
		return err
	}

	if !repair || sets.Missing.IsEmpty() {
		return nil
	}

	res := updater.New().Run(sets.Missing, lib, source.Kind, fontDir)
	logger.Info("update finished",
		logger.Int("installed", res.Installed()),
		logger.Int("skipped", res.Skipped()),
		logger.Int("failed", res.Failed()))
	return res.Err()
}
