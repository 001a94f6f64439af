package cmd

import "github.com/spf13/cobra"

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [font_config.toml]",
		Short: "Report font status, then install missing fonts from the library",
		Long: `Update performs the same reconciliation as check and then installs every
missing font the library can provide into the project font directory.
Fonts the library does not offer are skipped; individual install failures
are reported but do not stop the remaining installs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd, args, true)
		},
	}
	addLibraryFlags(cmd)
	return cmd
}
