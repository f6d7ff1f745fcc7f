package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/FeMonky/Impact-Prognasticator/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the prognosticator MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio)",
		Long: "Start the MCP server using stdio transport. This lets AI assistants analyze " +
			"G-code and query the material and impact tables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewPrognosticatorMCPServer()
			return server.ServeStdio(s)
		},
	}
}
