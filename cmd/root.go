package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/typmgr/fontctl/internal/library"
	"github.com/typmgr/fontctl/internal/manifest"
	"github.com/typmgr/fontctl/pkg/buildinfo"
	"github.com/typmgr/fontctl/pkg/exitcode"
	"github.com/typmgr/fontctl/pkg/logger"
)

// newRootCommand creates a fresh root command instance.
// This factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fontctl",
		Short: "Reconcile and repair project font directories",
		Long: `Fontctl compares the fonts a typesetting project declares in its manifest
against the fonts present in the project directory, the fonts embedded in
the typesetting engine, and the fonts available from a font library.

Examples:
   fontctl check                  # Report font status for ./font_config.toml
   fontctl update                 # Report, then install missing fonts
   fontctl library --library DIR  # List the fonts a library offers
   fontctl version                # Show version`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cmd.PersistentFlags().String("log-level", "info", "Set log level (debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Wire Cobra's built-in --version using the binary version
	cmd.Version = buildinfo.BinaryVersion
	cmd.SetVersionTemplate("fontctl {{.Version}}\n")

	return cmd
}

// registerSubcommands adds all subcommands to the root command.
// This is called from init() for production and can be called explicitly in tests.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newLibraryCmd())
	cmd.AddCommand(newVersionCmd())
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// Execute runs the root command and exits the process with a code derived
// from the error class. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	registerSubcommands(rootCmd)
}

// exitCodeFor maps error classes onto process exit codes.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, manifest.ErrNotFound), errors.Is(err, manifest.ErrParse):
		return exitcode.ConfigError
	case errors.Is(err, errUsage), errors.Is(err, library.ErrInvalidRepoPath):
		return exitcode.ArgumentError
	case errors.Is(err, library.ErrFetch), errors.Is(err, library.ErrManifestParse):
		return exitcode.NetworkError
	case errors.Is(err, os.ErrPermission), errors.Is(err, os.ErrNotExist):
		return exitcode.FileSystemError
	default:
		return exitcode.GeneralError
	}
}

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	logger.Initialize(logger.Config{
		Level:    logger.ParseLevel(logLevelStr),
		UseColor: !noColor,
		JSON:     jsonLogs,
	})
}
