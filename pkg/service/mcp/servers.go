package mcp

import (
	mcpmodel "github.com/donbr/raven/pkg/domain/model/mcp"
)

// Registered server names
const (
	ServerFigma              = "figma"
	ServerV0                 = "v0"
	ServerPulumi             = "pulumi"
	ServerSequentialThinking = "sequential-thinking"
	ServerPlaywright         = "playwright"
)

// defaultServers builds the built-in server table. Each call returns fresh
// values so callers cannot corrupt the table across registry instances.
func defaultServers() map[string]*mcpmodel.Server {
	return map[string]*mcpmodel.Server{
		ServerFigma: {
			Name:           ServerFigma,
			Description:    "Figma MCP Server for design context",
			Tools:          []string{"figma_get_file", "figma_get_components"},
			SafetyLevel:    mcpmodel.SafetyStandard,
			ConfigRequired: true,
			Requirements: mcpmodel.Requirements{
				RequiredEnv:       []string{"FIGMA_ACCESS_TOKEN"},
				OptionalEnv:       []string{"FIGMA_FILE_ID"},
				SetupInstructions: "Get access token from Figma Settings > Personal Access Tokens",
			},
			Fallbacks: map[string][]string{
				"figma_get_file": {
					"Create design specifications in markdown",
					"Use Mermaid diagrams for wireframes",
					"Document design manually with screenshots",
				},
			},
		},
		ServerV0: {
			Name:           ServerV0,
			Description:    "Vercel v0 MCP Server for UI generation",
			Tools:          []string{"v0_generate_ui", "v0_generate_from_image", "v0_chat_complete"},
			SafetyLevel:    mcpmodel.SafetyStandard,
			ConfigRequired: true,
			Requirements: mcpmodel.Requirements{
				RequiredEnv:       []string{"V0_API_KEY"},
				SetupInstructions: "Get API key from Vercel v0 dashboard",
			},
			Fallbacks: map[string][]string{
				"v0_generate_ui": {
					"Write component specifications",
					"Create HTML/CSS mockups",
					"Use alternative design-to-code tools (Builder.io, Anima)",
				},
			},
		},
		ServerPulumi: {
			Name:           ServerPulumi,
			Description:    "Pulumi MCP Server for infrastructure context (read-only)",
			Tools:          pulumiAllowedTools(),
			ForbiddenTools: pulumiForbiddenTools(),
			SafetyLevel:    mcpmodel.SafetyReadOnly,
			ConfigRequired: true,
			Requirements: mcpmodel.Requirements{
				RequiredEnv:       []string{"PULUMI_ORG"},
				SetupInstructions: "Authenticate via Pulumi MCP OAuth at " + PulumiEndpoint + " and set PULUMI_ORG to your organization name",
			},
		},
		ServerSequentialThinking: {
			Name:        ServerSequentialThinking,
			Description: "Advanced reasoning MCP tool",
			Tools:       []string{"sequentialthinking"},
			SafetyLevel: mcpmodel.SafetyStandard,
		},
		ServerPlaywright: {
			Name:        ServerPlaywright,
			Description: "Browser automation MCP tool",
			Tools:       []string{"browser_navigate", "browser_click", "browser_snapshot"},
			SafetyLevel: mcpmodel.SafetyStandard,
		},
	}
}
