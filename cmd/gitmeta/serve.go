// Package main provides the entry point for the gitmeta CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	gitmetamcp "github.com/gorewood/gitmeta/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run gitmeta as a Model Context Protocol (MCP) server over stdio.

This exposes git meta operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "gitmeta": {
        "command": "gitmeta",
        "args": ["serve"]
      }
    }
  }

Available tools: root, version, is_open, open, checkout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := toolRunner()
			if err != nil {
				return err
			}
			server := gitmetamcp.NewServer(buildVersion(), runner)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
