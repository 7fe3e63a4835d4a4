// Package commands implements the CLI commands for taskrun.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/taskrun/internal/adapters/config"
	"go.trai.ch/taskrun/internal/app"
	"go.trai.ch/taskrun/internal/build"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for taskrun.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command

	configPath string
	dir        string
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "taskrun [pipelines or tasks...]",
		Short: "Lint, test and build a browser library",
		Long: "Runs the named pipelines or tasks in order. Without arguments the\n" +
			"default pipeline runs: jshint, test, build, compare_size.",
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.changeDir,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), args, c.runOptions())
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", config.DefaultFilename, "Settings file, optional")
	rootCmd.PersistentFlags().StringVarP(&c.dir, "dir", "C", "", "Change to this directory before doing anything")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newTasksCmd())
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

// SetOutput sets the writer commands print to. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func (c *CLI) runOptions() app.RunOptions {
	return app.RunOptions{ConfigPath: c.configPath}
}

func (c *CLI) changeDir(_ *cobra.Command, _ []string) error {
	if c.dir == "" {
		return nil
	}
	if err := os.Chdir(c.dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to change directory"), "dir", c.dir)
	}
	return nil
}
