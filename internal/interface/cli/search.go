package cli

import (
	"github.com/spf13/cobra"

	"omnikit/internal/omni"
)

func newSearchCmd() *cobra.Command {
	var opts omni.SearchOptions
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search incomplete tasks by name and note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().SearchTasks(cmd.Context(), args[0], opts))
		},
	}
	cmd.Flags().IntVar(&opts.Limit, "limit", 100, "maximum tasks to return")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "tasks to skip")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show productivity counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().ProductivityStats(cmd.Context()))
		},
	}
}

func newLinkCmd() *cobra.Command {
	var forProject bool
	cmd := &cobra.Command{
		Use:   "link <id>",
		Short: "Print a deep link that opens OmniFocus on an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if forProject {
				return printOutcome(cmd.OutOrStdout(), omni.ProjectLink(args[0]))
			}
			return printOutcome(cmd.OutOrStdout(), omni.TaskLink(args[0]))
		},
	}
	cmd.Flags().BoolVar(&forProject, "project", false, "treat the id as a project id")
	return cmd
}
