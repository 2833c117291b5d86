package cli

import (
	"github.com/spf13/cobra"

	"omnikit/internal/omni"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Create, inspect, and mutate tasks",
	}
	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskGetCmd())
	cmd.AddCommand(newTaskEditCmd())
	cmd.AddCommand(newTaskCompleteCmd())
	cmd.AddCommand(newTaskRmCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var req omni.CreateTaskRequest
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a task in the inbox or a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Name = args[0]
			return printOutcome(cmd.OutOrStdout(), newClient().CreateTask(cmd.Context(), req))
		},
	}
	cmd.Flags().StringVar(&req.Note, "note", "", "task note")
	cmd.Flags().StringVar(&req.ProjectID, "project", "", "project id (default: inbox)")
	cmd.Flags().StringVar(&req.DueDate, "due", "", "due date")
	cmd.Flags().StringVar(&req.DeferDate, "defer", "", "defer date")
	cmd.Flags().BoolVar(&req.Flagged, "flagged", false, "flag the task")
	cmd.Flags().IntVar(&req.EstimatedMinutes, "estimate", 0, "estimated minutes")
	cmd.Flags().StringSliceVar(&req.Tags, "tag", nil, "tag name (repeatable)")
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var opts omni.ListTasksOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().ListTasks(cmd.Context(), opts))
		},
	}
	cmd.Flags().BoolVar(&opts.IncludeCompleted, "all", false, "include completed tasks")
	cmd.Flags().StringVar(&opts.ProjectID, "project", "", "limit to a project id")
	cmd.Flags().IntVar(&opts.Limit, "limit", 100, "maximum tasks to return")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "tasks to skip")
	return cmd
}

func newTaskGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().GetTask(cmd.Context(), args[0]))
		},
	}
}

func newTaskEditCmd() *cobra.Command {
	var (
		name, note, due, deferDate string
		flagged                    bool
		estimate                   int
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task fields; empty --due/--defer clears the date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req omni.UpdateTaskRequest
			// Only flags the caller set become part of the update.
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("note") {
				req.Note = &note
			}
			if cmd.Flags().Changed("due") {
				req.DueDate = &due
			}
			if cmd.Flags().Changed("defer") {
				req.DeferDate = &deferDate
			}
			if cmd.Flags().Changed("flagged") {
				req.Flagged = &flagged
			}
			if cmd.Flags().Changed("estimate") {
				req.EstimatedMinutes = &estimate
			}
			return printOutcome(cmd.OutOrStdout(), newClient().UpdateTask(cmd.Context(), args[0], req))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&note, "note", "", "new note")
	cmd.Flags().StringVar(&due, "due", "", "new due date")
	cmd.Flags().StringVar(&deferDate, "defer", "", "new defer date")
	cmd.Flags().BoolVar(&flagged, "flagged", false, "set flagged state")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "new estimated minutes (0 clears)")
	return cmd
}

func newTaskCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark one task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().CompleteTask(cmd.Context(), args[0]))
		},
	}
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().DeleteTask(cmd.Context(), args[0]))
		},
	}
}
