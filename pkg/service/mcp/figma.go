package mcp

import "os"

// FigmaIntegration wraps the Figma MCP server configuration. Design context
// is fetched by agents through MCP tools; this wrapper only answers whether
// the integration is usable and how to set it up.
type FigmaIntegration struct {
	accessToken string
	fileID      string
}

// NewFigmaIntegration reads the Figma credentials from the environment
func NewFigmaIntegration() *FigmaIntegration {
	return &FigmaIntegration{
		accessToken: os.Getenv("FIGMA_ACCESS_TOKEN"),
		fileID:      os.Getenv("FIGMA_FILE_ID"),
	}
}

// IsAvailable reports whether an access token is configured
func (f *FigmaIntegration) IsAvailable() bool {
	return f.accessToken != ""
}

// FileID returns the default Figma file to pull design context from,
// empty when none is configured
func (f *FigmaIntegration) FileID() string {
	return f.fileID
}

// SetupInstructions returns a short setup guide for unconfigured installs
func (f *FigmaIntegration) SetupInstructions() []string {
	return []string{
		"Get an access token from Figma Settings > Personal Access Tokens",
		"Set the FIGMA_ACCESS_TOKEN environment variable",
		"Optionally set FIGMA_FILE_ID to the design file to analyze",
	}
}
