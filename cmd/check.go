package cmd

import "github.com/spf13/cobra"

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [font_config.toml]",
		Short: "Report the font status of a project without changing anything",
		Long: `Check compares the fonts the manifest declares against the fonts present
in the project font directory, the fonts embedded in the engine, and the
fonts the library offers, then prints the status of each font.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd, args, false)
		},
	}
	addLibraryFlags(cmd)
	return cmd
}
