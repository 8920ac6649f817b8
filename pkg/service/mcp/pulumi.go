package mcp

import (
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/donbr/raven/pkg/domain/types/apperr"
)

// PulumiEndpoint is the hosted Pulumi MCP server. OAuth is handled by the
// server itself, so no API key is needed beyond the organization name.
const PulumiEndpoint = "https://mcp.ai.pulumi.com/mcp"

const defaultPulumiOrg = "donbr"

func pulumiAllowedTools() []string {
	return []string{
		"mcp__pulumi__get-stacks",
		"mcp__pulumi__resource-search",
		"mcp__pulumi__get-policy-violations",
		"mcp__pulumi__get-users",
		"mcp__pulumi__neo-get-tasks",
		"mcp__pulumi__get-type",
		"mcp__pulumi__get-resource",
		"mcp__pulumi__get-function",
		"mcp__pulumi__list-resources",
		"mcp__pulumi__list-functions",
	}
}

func pulumiForbiddenTools() []string {
	return []string{
		"mcp__pulumi__neo-bridge",
		"mcp__pulumi__neo-continue-task",
		"mcp__pulumi__deploy-to-aws",
	}
}

// PulumiIntegration wraps the Pulumi MCP server with read-only safety
// validation. It never invokes MCP tools itself; agents call them directly,
// and this wrapper decides which calls are permitted.
type PulumiIntegration struct {
	organization string
}

// NewPulumiIntegration reads the organization from PULUMI_ORG, falling back
// to the default organization
func NewPulumiIntegration() *PulumiIntegration {
	org := os.Getenv("PULUMI_ORG")
	if org == "" {
		org = defaultPulumiOrg
	}
	return &PulumiIntegration{organization: org}
}

// Organization returns the Pulumi organization used for resource queries
func (p *PulumiIntegration) Organization() string {
	return p.organization
}

// IsAvailable reports whether the Pulumi integration is configured
func (p *PulumiIntegration) IsAvailable() bool {
	return envSet("PULUMI_ORG")
}

// AllowedTools returns the whitelisted read-only tools
func (p *PulumiIntegration) AllowedTools() []string {
	return pulumiAllowedTools()
}

// ValidateTool checks a tool name against the read-only whitelist. Tools
// that would modify infrastructure are rejected unconditionally; tools the
// server does not provide are rejected as unknown.
func (p *PulumiIntegration) ValidateTool(tool string) error {
	for _, forbidden := range pulumiForbiddenTools() {
		if tool == forbidden {
			return goerr.Wrap(apperr.ErrToolForbidden, "tool modifies infrastructure, only read-only operations allowed",
				goerr.TV(apperr.ServerNameKey, ServerPulumi),
				goerr.TV(apperr.ToolNameKey, tool))
		}
	}
	for _, allowed := range pulumiAllowedTools() {
		if tool == allowed {
			return nil
		}
	}
	return goerr.Wrap(apperr.ErrToolNotAllowed, "tool is not in the read-only whitelist",
		goerr.TV(apperr.ServerNameKey, ServerPulumi),
		goerr.TV(apperr.ToolNameKey, tool))
}
