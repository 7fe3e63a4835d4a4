package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the registered tasks and pipelines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.app.Configure(c.runOptions())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			_, _ = fmt.Fprintln(w, "Tasks:")
			for task := range cfg.Registry().Tasks() {
				_, _ = fmt.Fprintf(w, "  %s\t%s\n", task.Name, task.Plugin)
			}

			_, _ = fmt.Fprintln(w, "\nPipelines:")
			for p := range cfg.Registry().Pipelines() {
				_, _ = fmt.Fprintf(w, "  %s\t%s\n", p.Name, strings.Join(p.Steps, ", "))
			}

			return w.Flush()
		},
	}
}
