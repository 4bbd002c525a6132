package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps [targets...]",
		Short: "Print the steps a build would run, without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := c.app.Steps(cmd.Context(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, action := range actions {
				_, _ = fmt.Fprintln(out, action.Target)
				for _, step := range action.Steps {
					_, _ = fmt.Fprintf(out, "  %s\n", step)
				}
			}
			return nil
		},
	}
}
