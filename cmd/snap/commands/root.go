// Package commands implements the CLI commands for snap.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/snap/internal/app"
	"go.trai.ch/snap/internal/build"
	"go.trai.ch/snap/internal/core/domain"
)

// CLI represents the command line interface for snap.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	configPath string
	jsonLogs   bool
	outputMode string
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Index(ctx context.Context, opts app.IndexOptions) error
	History(ctx context.Context, opts app.HistoryOptions) error
	SetJSONLogs(enable bool)
	SetOutputMode(mode string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "snap",
		Short:         "Record execution timings and snapshot a workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.ConfigFileName, "Path to the snap configuration file")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().StringVarP(&c.outputMode, "output", "o", "auto", "Output style: auto, pretty, or plain")
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		c.app.SetJSONLogs(c.jsonLogs)
		return c.app.SetOutputMode(c.outputMode)
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newIndexCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// configOptions collects the flags shared by every command that reads the config.
func (c *CLI) configOptions(cmd *cobra.Command) app.ConfigOptions {
	opts := app.ConfigOptions{Path: c.configPath}
	if f := cmd.Flags().Lookup("dir"); f != nil && f.Changed {
		opts.Dir = f.Value.String()
	}
	if f := cmd.Flags().Lookup("project"); f != nil && f.Changed {
		opts.Project = f.Value.String()
	}
	if f := cmd.Flags().Lookup("sort"); f != nil && f.Changed {
		sorted, _ := cmd.Flags().GetBool("sort")
		opts.Sort = &sorted
	}
	return opts
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("dir", "d", "", "Directory to index (overrides the config)")
	cmd.Flags().StringP("project", "p", "", "Project name recorded in the manifest (overrides the config)")
	cmd.Flags().Bool("sort", true, "Sort manifest entries by name")
}
