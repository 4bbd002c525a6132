package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/modelc/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Build the specified targets and their dependencies",
		Long: "Build the specified targets and their dependencies.\n\n" +
			"Targets are fully qualified (//App:Model#core-data-model,iphoneos), " +
			"rule names selecting every platform flavor (//App:Model) or \"all\".",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			noCache, _ := cmd.Flags().GetBool("no-cache")
			jobs, _ := cmd.Flags().GetInt("jobs")
			stepJobs, _ := cmd.Flags().GetInt("step-jobs")
			progressLog, _ := cmd.Flags().GetString("progress-log")
			interactive, _ := cmd.Flags().GetBool("tui")
			return c.app.Run(cmd.Context(), args, app.RunOptions{
				NoCache:     noCache,
				Jobs:        jobs,
				StepJobs:    stepJobs,
				ProgressLog: progressLog,
				Interactive: interactive,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the build cache and force execution")
	cmd.Flags().IntP("jobs", "j", 0, "Number of actions to build in parallel (default: number of CPUs)")
	cmd.Flags().Int("step-jobs", 1, "Number of compile steps of one action to run in parallel")
	cmd.Flags().String("progress-log", "", "Write build progress as JSON lines to this file")
	cmd.Flags().Bool("tui", false, "Show live progress in the terminal")
	return cmd
}
