package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/snap/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [-- command args...]",
		Short: "Time an optional command, append the execution logs and rebuild the manifest",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			commit, _ := cmd.Flags().GetBool("commit")
			push, _ := cmd.Flags().GetBool("push")
			verbose, _ := cmd.Flags().GetBool("verbose")

			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigOptions: c.configOptions(cmd),
				Command:       args,
				Commit:        commit,
				Push:          push,
				Verbose:       verbose,
			})
		},
	}
	addScanFlags(cmd)
	cmd.Flags().Bool("commit", false, "Commit the artifacts after the run")
	cmd.Flags().Bool("push", false, "Commit and push the artifacts after the run")
	cmd.Flags().BoolP("verbose", "v", false, "Log step durations and debug output")
	return cmd
}
