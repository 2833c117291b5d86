package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"omnikit/internal/app"
	mcpserver "omnikit/internal/interface/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.GetLogger().Info("starting MCP server (stdio)")
			s := mcpserver.New(newClient(), Version)
			return server.ServeStdio(s)
		},
	}
}
