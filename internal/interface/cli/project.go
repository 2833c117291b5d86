package cli

import (
	"github.com/spf13/cobra"

	"omnikit/internal/omni"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Create, inspect, and mutate projects",
	}
	cmd.AddCommand(newProjectAddCmd())
	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectEditCmd())
	cmd.AddCommand(newProjectRmCmd())
	return cmd
}

func newProjectAddCmd() *cobra.Command {
	var req omni.CreateProjectRequest
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Name = args[0]
			return printOutcome(cmd.OutOrStdout(), newClient().CreateProject(cmd.Context(), req))
		},
	}
	cmd.Flags().StringVar(&req.Note, "note", "", "project note")
	cmd.Flags().StringVar(&req.FolderID, "folder", "", "folder id (default: document root)")
	cmd.Flags().BoolVar(&req.Sequential, "sequential", false, "tasks complete in order")
	return cmd
}

func newProjectListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().ListProjects(cmd.Context(), limit, offset))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum projects to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "projects to skip")
	return cmd
}

func newProjectEditCmd() *cobra.Command {
	var (
		name, note string
		sequential bool
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit project fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req omni.UpdateProjectRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("note") {
				req.Note = &note
			}
			if cmd.Flags().Changed("sequential") {
				req.Sequential = &sequential
			}
			return printOutcome(cmd.OutOrStdout(), newClient().UpdateProject(cmd.Context(), args[0], req))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&note, "note", "", "new note")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "tasks complete in order")
	return cmd
}

func newProjectRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete one project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcome(cmd.OutOrStdout(), newClient().DeleteProject(cmd.Context(), args[0]))
		},
	}
}
