package interfaces

import (
	"context"

	"github.com/donbr/raven/pkg/domain/model/agent"
	"github.com/donbr/raven/pkg/domain/model/mcp"
	"github.com/donbr/raven/pkg/domain/model/workflow"
	"github.com/donbr/raven/pkg/domain/types"
)

// RunWorkflowRequest carries the parameters of one workflow execution.
// Params feeds prompt template placeholders such as repo_root or
// project_name; each workflow documents which keys it reads.
type RunWorkflowRequest struct {
	Workflow string            `json:"workflow"`
	Params   map[string]string `json:"params,omitempty"`
}

// AgentSearchResult is one ranked candidate from a fuzzy agent search
type AgentSearchResult struct {
	Agent *agent.Agent `json:"agent"`
	Score float64      `json:"score"`
}

// ServerSearchResult is one ranked candidate from a fuzzy server search
type ServerSearchResult struct {
	Server *mcp.Server `json:"server"`
	Score  float64     `json:"score"`
}

// WorkflowUseCases drives workflow runs
type WorkflowUseCases interface {
	// RunWorkflow executes the named workflow to completion
	RunWorkflow(ctx context.Context, req *RunWorkflowRequest) (*workflow.Run, error)

	// ListWorkflows returns the registered workflow definitions
	ListWorkflows(ctx context.Context) []*workflow.Definition

	// GetRun returns a persisted run record
	GetRun(ctx context.Context, id types.RunID) (*workflow.Run, error)

	// ListRuns returns persisted runs newest first with the total count
	ListRuns(ctx context.Context, offset, limit int) ([]*workflow.Run, int, error)
}

// CatalogUseCases serves the two-call lookup convention over the agent and
// MCP server registries: a fuzzy search returning ranked candidates, and a
// strict fetch that only accepts an exact identifier.
type CatalogUseCases interface {
	SearchAgents(ctx context.Context, query string, offset, limit int) ([]*AgentSearchResult, int, error)
	GetAgent(ctx context.Context, agentID string) (*agent.Agent, error)

	SearchServers(ctx context.Context, query string, offset, limit int) ([]*ServerSearchResult, int, error)
	GetServer(ctx context.Context, name string) (*mcp.Server, error)
	GetServerRequirements(ctx context.Context, name string) (*mcp.Requirements, error)
}
