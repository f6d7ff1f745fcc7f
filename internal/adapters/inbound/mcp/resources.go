package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
)

// registerResources exposes the static lookup tables as MCP resources.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			"prognosticator://materials",
			"Materials",
			mcplib.WithResourceDescription("Supported print materials with tensile and impact strength"),
			mcplib.WithMIMEType("application/json"),
		),
		handleMaterialsResource(),
	)

	s.AddResource(
		mcplib.NewResource(
			"prognosticator://impacts",
			"Impact Presets",
			mcplib.WithResourceDescription("Impact presets with estimated energy in joules"),
			mcplib.WithMIMEType("application/json"),
		),
		handleImpactsResource(),
	)
}

func handleMaterialsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		var profiles []domain.MaterialProfile
		for _, name := range domain.MaterialNames() {
			m, _ := domain.LookupMaterial(name)
			profiles = append(profiles, m)
		}
		return tableContents("prognosticator://materials", profiles)
	}
}

func handleImpactsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		var scenarios []domain.ImpactScenario
		for _, name := range domain.ImpactNames() {
			s, _ := domain.LookupImpact(name)
			scenarios = append(scenarios, s)
		}
		return tableContents("prognosticator://impacts", scenarios)
	}
}

func tableContents(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling table: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
