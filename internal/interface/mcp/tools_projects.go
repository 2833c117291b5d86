package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"omnikit/internal/omni"
)

func registerProjectTools(s *server.MCPServer, client *omni.Client) {
	s.AddTool(mcp.NewTool("add_project",
		mcp.WithDescription("Create a project at the document root or inside a folder"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Project name")),
		mcp.WithString("note", mcp.Description("Project note")),
		mcp.WithString("folder_id", mcp.Description("Folder id; omit for the document root")),
		mcp.WithBoolean("sequential", mcp.Description("Tasks complete in order")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.CreateProject(ctx, omni.CreateProjectRequest{
			Name:       name,
			Note:       req.GetString("note", ""),
			FolderID:   req.GetString("folder_id", ""),
			Sequential: req.GetBool("sequential", false),
		}))
	})

	s.AddTool(mcp.NewTool("update_project",
		mcp.WithDescription("Edit project fields; omitted fields stay unchanged"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Project id")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("note", mcp.Description("New note")),
		mcp.WithBoolean("sequential", mcp.Description("Tasks complete in order")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var update omni.UpdateProjectRequest
		args := req.GetArguments()
		if _, ok := args["name"]; ok {
			v := req.GetString("name", "")
			update.Name = &v
		}
		if _, ok := args["note"]; ok {
			v := req.GetString("note", "")
			update.Note = &v
		}
		if _, ok := args["sequential"]; ok {
			v := req.GetBool("sequential", false)
			update.Sequential = &v
		}
		return outcomeResult(client.UpdateProject(ctx, id, update))
	})

	s.AddTool(mcp.NewTool("remove_project",
		mcp.WithDescription("Delete one project and its tasks"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Project id")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.DeleteProject(ctx, id))
	})

	s.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List projects"),
		mcp.WithNumber("limit", mcp.Description("Maximum projects to return, default 100")),
		mcp.WithNumber("offset", mcp.Description("Projects to skip")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return outcomeResult(client.ListProjects(ctx,
			req.GetInt("limit", 100), req.GetInt("offset", 0)))
	})
}
