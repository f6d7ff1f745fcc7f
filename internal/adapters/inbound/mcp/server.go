package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewPrognosticatorMCPServer creates an MCP server with the analysis tools
// and the static table resources registered.
func NewPrognosticatorMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"prognosticator",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s)
	registerResources(s)

	return s
}
