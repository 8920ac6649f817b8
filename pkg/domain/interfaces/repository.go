package interfaces

import (
	"context"

	"github.com/donbr/raven/pkg/domain/model/agent"
	"github.com/donbr/raven/pkg/domain/model/workflow"
	"github.com/donbr/raven/pkg/domain/types"
)

// AgentRegistry resolves agent definitions loaded from JSON descriptors
type AgentRegistry interface {
	// GetAgent returns the agent with the exact ID
	GetAgent(ctx context.Context, agentID string) (*agent.Agent, error)

	// ListAgents returns all agents, optionally filtered by domain
	ListAgents(ctx context.Context, domain string) ([]*agent.Agent, error)

	// Reload discards the cache and re-discovers descriptors
	Reload(ctx context.Context) error
}

// RunRepository manages workflow run persistence
type RunRepository interface {
	PutRun(ctx context.Context, run *workflow.Run) error
	GetRun(ctx context.Context, id types.RunID) (*workflow.Run, error)

	// ListRuns returns runs newest first with the total count
	ListRuns(ctx context.Context, offset, limit int) ([]*workflow.Run, int, error)
}
