package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/model/agent"
	"github.com/donbr/raven/pkg/domain/model/mcp"
	"github.com/donbr/raven/pkg/domain/types/apperr"
)

// SearchAgents performs a fuzzy search over the agent registry and returns
// ranked candidates. An empty query matches everything. The strict
// counterpart is GetAgent, which only accepts an exact ID.
func (uc *UseCases) SearchAgents(ctx context.Context, query string, offset, limit int) ([]*interfaces.AgentSearchResult, int, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, 0, err
	}

	all, err := uc.agents.ListAgents(ctx, "")
	if err != nil {
		return nil, 0, goerr.Wrap(err, "failed to list agents for search")
	}

	var results []*interfaces.AgentSearchResult
	for _, a := range all {
		score := matchScore(query, a.AgentID, a.Name, a.Description, a.Domain)
		if score <= 0 {
			continue
		}
		results = append(results, &interfaces.AgentSearchResult{Agent: a, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Agent.AgentID < results[j].Agent.AgentID
	})

	total := len(results)
	page := paginate(results, offset, limit)
	return page, total, nil
}

// GetAgent is the strict fetch: it resolves an exact agent ID or fails.
// Callers with an imprecise name should use SearchAgents first.
func (uc *UseCases) GetAgent(ctx context.Context, agentID string) (*agent.Agent, error) {
	if err := agent.ValidateAgentID(agentID); err != nil {
		return nil, err
	}
	return uc.agents.GetAgent(ctx, agentID)
}

// SearchServers performs a fuzzy search over the MCP server registry
func (uc *UseCases) SearchServers(ctx context.Context, query string, offset, limit int) ([]*interfaces.ServerSearchResult, int, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, 0, err
	}

	var results []*interfaces.ServerSearchResult
	for _, srv := range uc.mcpRegistry.Servers() {
		score := matchScore(query, srv.Name, srv.Description, "", "")
		if score <= 0 {
			continue
		}
		results = append(results, &interfaces.ServerSearchResult{Server: srv, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Server.Name < results[j].Server.Name
	})

	total := len(results)
	page := paginate(results, offset, limit)
	return page, total, nil
}

// GetServer resolves an exact MCP server name or fails
func (uc *UseCases) GetServer(ctx context.Context, name string) (*mcp.Server, error) {
	return uc.mcpRegistry.GetServer(name)
}

// GetServerRequirements returns setup requirements for a server, nil when
// the server needs no configuration
func (uc *UseCases) GetServerRequirements(ctx context.Context, name string) (*mcp.Requirements, error) {
	return uc.mcpRegistry.GetRequirements(name)
}

// matchScore ranks how well a query matches an entry. Exact ID matches rank
// above prefix matches, prefix above substring, substring above matches in
// descriptive fields. Zero means no match.
func matchScore(query, id, name, description, domain string) float64 {
	if query == "" {
		return 1.0
	}
	q := strings.ToLower(query)
	lid := strings.ToLower(id)

	switch {
	case lid == q:
		return 1.0
	case strings.HasPrefix(lid, q):
		return 0.9
	case strings.Contains(lid, q):
		return 0.8
	}
	if strings.Contains(strings.ToLower(name), q) {
		return 0.7
	}
	if strings.Contains(strings.ToLower(description), q) {
		return 0.5
	}
	if strings.ToLower(domain) == q {
		return 0.4
	}
	return 0
}

func validatePage(offset, limit int) error {
	if offset < 0 {
		return goerr.New("offset must be non-negative",
			goerr.T(apperr.ErrTagInvalidInput),
			goerr.V("offset", offset))
	}
	if limit < 0 {
		return goerr.New("limit must be non-negative",
			goerr.T(apperr.ErrTagInvalidInput),
			goerr.V("limit", limit))
	}
	return nil
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
