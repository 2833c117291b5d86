package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"omnikit/internal/omni"
)

func registerBatchTools(s *server.MCPServer, client *omni.Client) {
	idsArg := func() mcp.ToolOption {
		return mcp.WithArray("ids", mcp.Required(),
			mcp.Description("Task ids to process"),
			mcp.Items(map[string]any{"type": "string"}))
	}

	s.AddTool(mcp.NewTool("batch_complete_tasks",
		mcp.WithDescription("Mark many tasks complete; items succeed or fail independently"),
		idsArg(),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return outcomeResult(client.CompleteTasks(ctx, req.GetStringSlice("ids", nil)))
	})

	s.AddTool(mcp.NewTool("batch_remove_tasks",
		mcp.WithDescription("Delete many tasks; items succeed or fail independently"),
		idsArg(),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return outcomeResult(client.DeleteTasks(ctx, req.GetStringSlice("ids", nil)))
	})

	s.AddTool(mcp.NewTool("batch_move_tasks",
		mcp.WithDescription("Move many tasks into a project"),
		idsArg(),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Destination project id")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projectID, err := req.RequireString("project_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.MoveTasks(ctx, req.GetStringSlice("ids", nil), projectID))
	})

	s.AddTool(mcp.NewTool("batch_tag_tasks",
		mcp.WithDescription("Add a tag to many tasks, creating the tag when absent"),
		idsArg(),
		mcp.WithString("tag", mcp.Required(), mcp.Description("Tag name")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tag, err := req.RequireString("tag")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return outcomeResult(client.AddTagToTasks(ctx, req.GetStringSlice("ids", nil), tag))
	})
}
