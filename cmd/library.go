package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typmgr/fontctl/internal/library"
	"github.com/typmgr/fontctl/internal/report"
	"github.com/typmgr/fontctl/pkg/logger"
)

func newLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "List the fonts a font library offers",
		Long: `Library resolves the given font library sources and lists every font
they offer, without reading a project manifest.

With --output the resolved library is published as a font_library.toml
catalog, ready to be served from a GitHub repository. Publishing requires
exactly one local library directory, whose paths become the catalog's
root-relative paths.`,
		Args: cobra.NoArgs,
		RunE: runLibrary,
	}
	addLibraryFlags(cmd)
	cmd.Flags().String("output", "", "Publish font_library.toml into this directory (single local library only)")
	return cmd
}

func runLibrary(cmd *cobra.Command, _ []string) error {
	userCfg := loadUserConfig()

	source, err := resolveSource(cmd, userCfg)
	if err != nil {
		return err
	}
	lib, err := source.Resolve()
	if err != nil {
		return err
	}

	opts := report.Options{UseColor: useColor(cmd, userCfg)}
	if err := report.RenderLibrary(cmd.OutOrStdout(), lib, opts); err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return nil
	}

	if source.Kind != library.KindLocal {
		return fmt.Errorf("%w: --output requires a local library", errUsage)
	}
	if len(source.Locations) != 1 {
		return fmt.Errorf("%w: --output requires exactly one --library directory, got %d", errUsage, len(source.Locations))
	}

	root := source.Locations[0]
	path, err := library.WriteManifest(lib, root, output)
	if err != nil {
		return err
	}
	logger.Info("published library manifest", logger.String("path", path))
	return nil
}
