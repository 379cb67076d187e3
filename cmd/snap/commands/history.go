package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/snap/internal/app"
)

const defaultHistoryLimit = 10

func (c *CLI) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the most recent execution records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.History(cmd.Context(), app.HistoryOptions{
				ConfigOptions: c.configOptions(cmd),
				Limit:         limit,
				JSON:          asJSON,
			})
		},
	}
	cmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Number of records to print (0 for all)")
	cmd.Flags().Bool("json", false, "Print records as JSON lines")
	return cmd
}
