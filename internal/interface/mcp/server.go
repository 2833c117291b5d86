// Package mcp wires the MCP tool server. It is a composition root: every
// tool is a thin adapter from tool arguments to one domain client call, and
// all business rules stay behind the client.
package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"omnikit/internal/bridge"
	"omnikit/internal/omni"
)

// New creates the MCP server with every tool registered.
func New(client *omni.Client, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"omnikit",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	registerTaskTools(s, client)
	registerProjectTools(s, client)
	registerOrganizerTools(s, client)
	registerBatchTools(s, client)

	return s
}

// outcomeResult renders an Outcome as the tool result. The whole outcome
// travels as JSON so the caller always sees the same discriminated shape;
// failures additionally set the error flag.
func outcomeResult[T any](out bridge.Outcome[T]) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return mcp.NewToolResultError(string(data)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

const serverInstructions = `You have access to omnikit, an OmniFocus automation server.

Tools mutate or query the user's live OmniFocus database through its
scripting interface. OmniFocus must be running on this machine.

Conventions:
- Entity ids are the opaque identifiers OmniFocus assigns; get them from
  list_tasks, list_projects, list_folders, or list_tags before mutating.
- Dates are plain date strings (for example "2026-08-30" or
  "May 1, 2026 5:00 PM"); pass an empty string to clear a date.
- Batch tools accept up to thousands of ids; items are processed in chunks
  and each item succeeds or fails independently. Check the failed list in
  the result instead of assuming all-or-nothing behavior.
- Every result is a JSON object with "success" and either "data" or
  "error". Never retry blindly on failure; read error.code first.`
