package llm

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/types/apperr"
)

// Client implements interfaces.AgentClient on top of a gollem LLM client.
// Each Generate call opens a fresh session seeded with the agent's system
// prompt, so phases never leak conversation state into each other.
type Client struct {
	llm gollem.LLMClient
}

// NewClient creates an agent client backed by the given LLM client
func NewClient(llmClient gollem.LLMClient) *Client {
	return &Client{llm: llmClient}
}

// Generate executes a single prompt and returns the response text with
// estimated token counts. The provider SDKs behind gollem do not expose
// usage uniformly, so tokens are estimated at four bytes per token.
func (c *Client) Generate(ctx context.Context, systemPrompt, prompt string) (*interfaces.AgentResponse, error) {
	session, err := c.llm.NewSession(ctx, gollem.WithSessionSystemPrompt(systemPrompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session",
			goerr.T(apperr.ErrTagLLMError))
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate content",
			goerr.T(apperr.ErrTagLLMError))
	}

	text := strings.Join(resp.Texts, "\n")

	return &interfaces.AgentResponse{
		Text:         text,
		InputTokens:  estimateTokens(systemPrompt) + estimateTokens(prompt),
		OutputTokens: estimateTokens(text),
	}, nil
}

func estimateTokens(s string) int {
	return (len(s) + 3) / 4
}

// Ensure Client implements AgentClient interface
var _ interfaces.AgentClient = (*Client)(nil)
