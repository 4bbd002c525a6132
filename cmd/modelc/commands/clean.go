package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/modelc/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated outputs and recorded build info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Clean(cmd.Context(), app.CleanOptions{All: all})
		},
	}
	cmd.Flags().Bool("all", false, "Also remove the artifact cache")
	return cmd
}
