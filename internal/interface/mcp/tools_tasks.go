package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"omnikit/internal/omni"
)

func registerTaskTools(s *server.MCPServer, client *omni.Client) {
	s.AddTool(mcp.NewTool("add_task",
		mcp.WithDescription("Create a task in the inbox or inside a project"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Task name")),
		mcp.WithString("note", mcp.Description("Task note")),
		mcp.WithString("project_id", mcp.Description("Project id; omit for the inbox")),
		mcp.WithString("due_date", mcp.Description("Due date string")),
		mcp.WithString("defer_date", mcp.Description("Defer date string")),
		mcp.WithBoolean("flagged", mcp.Description("Flag the task")),
		mcp.WithNumber("estimated_minutes", mcp.Description("Estimated minutes")),
		mcp.WithArray("tags", mcp.Description("Tag names, created when absent"),
			mcp.Items(map[string]any{"type": "string"})),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.CreateTask(ctx, omni.CreateTaskRequest{
			Name:             name,
			Note:             req.GetString("note", ""),
			ProjectID:        req.GetString("project_id", ""),
			DueDate:          req.GetString("due_date", ""),
			DeferDate:        req.GetString("defer_date", ""),
			Flagged:          req.GetBool("flagged", false),
			EstimatedMinutes: req.GetInt("estimated_minutes", 0),
			Tags:             req.GetStringSlice("tags", nil),
		}))
	})

	s.AddTool(mcp.NewTool("update_task",
		mcp.WithDescription("Edit task fields; omitted fields stay unchanged, empty dates clear"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Task id")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("note", mcp.Description("New note")),
		mcp.WithString("due_date", mcp.Description("New due date, empty clears")),
		mcp.WithString("defer_date", mcp.Description("New defer date, empty clears")),
		mcp.WithBoolean("flagged", mcp.Description("New flagged state")),
		mcp.WithNumber("estimated_minutes", mcp.Description("New estimate, 0 clears")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var update omni.UpdateTaskRequest
		args := req.GetArguments()
		if _, ok := args["name"]; ok {
			v := req.GetString("name", "")
			update.Name = &v
		}
		if _, ok := args["note"]; ok {
			v := req.GetString("note", "")
			update.Note = &v
		}
		if _, ok := args["due_date"]; ok {
			v := req.GetString("due_date", "")
			update.DueDate = &v
		}
		if _, ok := args["defer_date"]; ok {
			v := req.GetString("defer_date", "")
			update.DeferDate = &v
		}
		if _, ok := args["flagged"]; ok {
			v := req.GetBool("flagged", false)
			update.Flagged = &v
		}
		if _, ok := args["estimated_minutes"]; ok {
			v := req.GetInt("estimated_minutes", 0)
			update.EstimatedMinutes = &v
		}
		return outcomeResult(client.UpdateTask(ctx, id, update))
	})

	s.AddTool(mcp.NewTool("get_task",
		mcp.WithDescription("Fetch one task by id"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Task id")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.GetTask(ctx, id))
	})

	s.AddTool(mcp.NewTool("complete_task",
		mcp.WithDescription("Mark one task complete"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Task id")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.CompleteTask(ctx, id))
	})

	s.AddTool(mcp.NewTool("remove_task",
		mcp.WithDescription("Delete one task"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Task id")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.DeleteTask(ctx, id))
	})

	s.AddTool(mcp.NewTool("list_tasks",
		mcp.WithDescription("List tasks, optionally scoped to a project"),
		mcp.WithBoolean("include_completed", mcp.Description("Include completed tasks")),
		mcp.WithString("project_id", mcp.Description("Limit to a project id")),
		mcp.WithNumber("limit", mcp.Description("Maximum tasks to return, default 100")),
		mcp.WithNumber("offset", mcp.Description("Tasks to skip")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return outcomeResult(client.ListTasks(ctx, omni.ListTasksOptions{
			IncludeCompleted: req.GetBool("include_completed", false),
			ProjectID:        req.GetString("project_id", ""),
			Limit:            req.GetInt("limit", 100),
			Offset:           req.GetInt("offset", 0),
		}))
	})

	s.AddTool(mcp.NewTool("search_tasks",
		mcp.WithDescription("Search incomplete tasks by name and note"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search text")),
		mcp.WithNumber("limit", mcp.Description("Maximum tasks to return, default 100")),
		mcp.WithNumber("offset", mcp.Description("Tasks to skip")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.SearchTasks(ctx, query, omni.SearchOptions{
			Limit:  req.GetInt("limit", 100),
			Offset: req.GetInt("offset", 0),
		}))
	})
}
