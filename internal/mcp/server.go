// Package mcp provides a Model Context Protocol server for gitmeta.
// It exposes git meta operations as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/gitmeta/internal/meta"
)

// NewServer creates an MCP server with all gitmeta tools registered.
// Every tool shells out through the given runner.
func NewServer(version string, runner meta.Runner) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gitmeta",
		Version: version,
	}, nil)
	registerTools(server, runner)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that mutate the clone.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all gitmeta tools to the server.
func registerTools(server *mcp.Server, runner meta.Runner) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "root",
		Description: "Resolve the root of the git meta clone containing a directory. Returns the clone's working directory and .git directory.",
		Annotations: readOnlyAnnotations(),
	}, handleRoot(runner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "version",
		Description: "Report the version of the external git-meta tool.",
		Annotations: readOnlyAnnotations(),
	}, handleVersion(runner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "is_open",
		Description: "Check whether a submodule is open (materialized with its own repository metadata) in the clone. Spawns no process; checks the submodule's .git marker.",
		Annotations: readOnlyAnnotations(),
	}, handleIsOpen(runner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "open",
		Description: "Open submodules in the clone, given as paths relative to the clone root. An empty list runs a bare open.",
		Annotations: writeAnnotations(),
	}, handleOpen(runner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "checkout",
		Description: "Run git meta checkout in the clone with arbitrary parameters.",
		Annotations: writeAnnotations(),
	}, handleCheckout(runner))
}
