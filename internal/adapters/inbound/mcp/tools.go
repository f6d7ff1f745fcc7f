package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/FeMonky/Impact-Prognasticator/internal/application"
	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
	"github.com/FeMonky/Impact-Prognasticator/internal/domain/gcode"
)

// registerTools registers the analysis tools on the given server. MCP
// analyses never write to the CSV log; the assistant gets the JSON result
// and decides what to keep.
func registerTools(s *server.MCPServer) {
	// 1. prognosticator_analyze — raw G-code text
	s.AddTool(
		mcplib.NewTool("prognosticator_analyze",
			mcplib.WithDescription("Analyze raw G-code text for impact resistance and return the full result as JSON"),
			mcplib.WithString("gcode",
				mcplib.Required(),
				mcplib.Description("Full G-code text, including slicer setting comments"),
			),
			mcplib.WithString("material",
				mcplib.Required(),
				mcplib.Description(fmt.Sprintf("Print material, one of %v", domain.MaterialNames())),
			),
			mcplib.WithString("impact",
				mcplib.Description(fmt.Sprintf("Impact preset (default %q), one of %v", domain.DefaultImpactLevel, domain.ImpactNames())),
			),
		),
		handleAnalyze(),
	)

	// 2. prognosticator_analyze_file — G-code file on disk
	s.AddTool(
		mcplib.NewTool("prognosticator_analyze_file",
			mcplib.WithDescription("Analyze a G-code file on disk for impact resistance"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the .gcode file"),
			),
			mcplib.WithString("material",
				mcplib.Required(),
				mcplib.Description(fmt.Sprintf("Print material, one of %v", domain.MaterialNames())),
			),
			mcplib.WithString("impact",
				mcplib.Description(fmt.Sprintf("Impact preset (default %q)", domain.DefaultImpactLevel)),
			),
		),
		handleAnalyzeFile(),
	)
}

func newService() *application.AnalyzeService {
	return application.NewAnalyzeService(gcode.New(), nil)
}

func handleAnalyze() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		content, err := request.RequireString("gcode")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		material, err := request.RequireString("material")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		impact, _ := request.GetArguments()["impact"].(string)
		if impact == "" {
			impact = domain.DefaultImpactLevel
		}

		result, err := newService().AnalyzeContent("mcp-input.gcode", content, material, impact)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleAnalyzeFile() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		material, err := request.RequireString("material")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		impact, _ := request.GetArguments()["impact"].(string)
		if impact == "" {
			impact = domain.DefaultImpactLevel
		}

		result, err := newService().AnalyzeFile(path, material, impact)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
