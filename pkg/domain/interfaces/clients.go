package interfaces

import (
	"context"
)

// AgentResponse is the result of one agent invocation
type AgentResponse struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// AgentClient executes a single prompt against an LLM-backed agent.
// Each call is an independent session seeded with the agent's system prompt.
type AgentClient interface {
	Generate(ctx context.Context, systemPrompt, prompt string) (*AgentResponse, error)
}
