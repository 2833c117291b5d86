package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"omnikit/internal/omni"
)

// registerOrganizerTools covers folders, tags, deep links, and the
// productivity snapshot.
func registerOrganizerTools(s *server.MCPServer, client *omni.Client) {
	s.AddTool(mcp.NewTool("add_folder",
		mcp.WithDescription("Create a folder at the document root"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Folder name")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.CreateFolder(ctx, name))
	})

	s.AddTool(mcp.NewTool("list_folders",
		mcp.WithDescription("List folders"),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return outcomeResult(client.ListFolders(ctx))
	})

	s.AddTool(mcp.NewTool("add_tag",
		mcp.WithDescription("Create a tag"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Tag name")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.CreateTag(ctx, name))
	})

	s.AddTool(mcp.NewTool("remove_tag",
		mcp.WithDescription("Delete one tag; tasks keep their other tags"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Tag id")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.DeleteTag(ctx, id))
	})

	s.AddTool(mcp.NewTool("list_tags",
		mcp.WithDescription("List tags"),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return outcomeResult(client.ListTags(ctx))
	})

	s.AddTool(mcp.NewTool("task_link",
		mcp.WithDescription("Build a deep link that opens OmniFocus on a task or project"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Task or project id")),
		mcp.WithBoolean("project", mcp.Description("Treat the id as a project id")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if req.GetBool("project", false) {
			return outcomeResult(omni.ProjectLink(id))
		}
		return outcomeResult(omni.TaskLink(id))
	})

	s.AddTool(mcp.NewTool("productivity_stats",
		mcp.WithDescription("Counts of inbox, overdue, due-soon, flagged, completed-today tasks and active projects"),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return outcomeResult(client.ProductivityStats(ctx))
	})
}
