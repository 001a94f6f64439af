package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typmgr/fontctl/pkg/buildinfo"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			extended, _ := cmd.Flags().GetBool("extended")
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "fontctl %s\n", buildinfo.BinaryVersion); err != nil {
				return err
			}
			if extended {
				if mv := buildinfo.ModuleVersion(); mv != "" {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "module version: %s\n", mv); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("extended", false, "Show extended build information")
	return cmd
}
