package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/snap/internal/app"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Rebuild the workspace manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			show, _ := cmd.Flags().GetBool("show")
			return c.app.Index(cmd.Context(), app.IndexOptions{
				ConfigOptions: c.configOptions(cmd),
				Show:          show,
			})
		},
	}
	addScanFlags(cmd)
	cmd.Flags().Bool("show", false, "Print the current manifest instead of rebuilding it")
	return cmd
}
