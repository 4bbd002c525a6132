package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRuleKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rulekey [targets...]",
		Short: "Print the rule keys of the specified targets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			withFields, _ := cmd.Flags().GetBool("fields")
			keys, err := c.app.RuleKeys(cmd.Context(), args, withFields)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, key := range keys {
				_, _ = fmt.Fprintf(out, "%s %s\n", key.Key, key.Target)
				for _, field := range key.Fields {
					_, _ = fmt.Fprintf(out, "  %s = %s\n", field.Key, field.Value)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("fields", false, "Also print the fields each key is computed from")
	return cmd
}
