package cli

import "github.com/spf13/cobra"

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Mutate many tasks in one call",
		Long: `Batch commands take task ids as arguments, partition them into
bounded chunks, and run one script per chunk against OmniFocus. A bad item
is reported per-item without aborting the rest.`,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "complete <id>...",
		Short: "Mark many tasks complete",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().CompleteTasks(cmd.Context(), args))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>...",
		Short: "Delete many tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().DeleteTasks(cmd.Context(), args))
		},
	})

	var moveProject string
	move := &cobra.Command{
		Use:   "move <id>...",
		Short: "Move many tasks into a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().MoveTasks(cmd.Context(), args, moveProject))
		},
	}
	move.Flags().StringVar(&moveProject, "project", "", "destination project id")
	_ = move.MarkFlagRequired("project")
	cmd.AddCommand(move)

	var tagName string
	tag := &cobra.Command{
		Use:   "tag <id>...",
		Short: "Add a tag to many tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().AddTagToTasks(cmd.Context(), args, tagName))
		},
	}
	tag.Flags().StringVar(&tagName, "name", "", "tag name (created when absent)")
	_ = tag.MarkFlagRequired("name")
	cmd.AddCommand(tag)

	return cmd
}
