package mcp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	mcpmodel "github.com/donbr/raven/pkg/domain/model/mcp"
	"github.com/donbr/raven/pkg/domain/types/apperr"
	"github.com/donbr/raven/pkg/service/mcp"
)

func newRegistry(t *testing.T) *mcp.Registry {
	t.Helper()
	registry, err := mcp.New(context.Background())
	gt.NoError(t, err).Required()
	return registry
}

func TestRegistry_Servers(t *testing.T) {
	registry := newRegistry(t)

	servers := registry.Servers()
	gt.A(t, servers).Length(5)

	// Sorted by name
	gt.Equal(t, servers[0].Name, "figma")
	gt.Equal(t, servers[1].Name, "playwright")
	gt.Equal(t, servers[2].Name, "pulumi")
	gt.Equal(t, servers[3].Name, "sequential-thinking")
	gt.Equal(t, servers[4].Name, "v0")
}

func TestRegistry_GetServer(t *testing.T) {
	registry := newRegistry(t)

	srv, err := registry.GetServer("pulumi")
	gt.NoError(t, err).Required()
	gt.Equal(t, srv.SafetyLevel, mcpmodel.SafetyReadOnly)
	gt.True(t, srv.HasTool("mcp__pulumi__get-stacks"))
	gt.True(t, srv.IsForbidden("mcp__pulumi__deploy-to-aws"))

	_, err = registry.GetServer("jira")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, apperr.ErrServerNotFound))
}

func TestRegistry_DisjointToolSets(t *testing.T) {
	registry := newRegistry(t)

	// Every registered server must keep its allowed and forbidden sets
	// disjoint, otherwise the permission check would be order-dependent
	for _, srv := range registry.Servers() {
		gt.NoError(t, mcpmodel.ValidateServer(srv))
		for _, tool := range srv.Tools {
			gt.False(t, srv.IsForbidden(tool))
		}
	}
}

func TestRegistry_Availability(t *testing.T) {
	t.Setenv("FIGMA_ACCESS_TOKEN", "figd_test_token")
	t.Setenv("V0_API_KEY", "")
	t.Setenv("PULUMI_ORG", "")

	registry := newRegistry(t)

	gt.True(t, registry.IsServerAvailable("figma"))
	gt.False(t, registry.IsServerAvailable("v0"))
	gt.False(t, registry.IsServerAvailable("pulumi"))
	gt.True(t, registry.IsServerAvailable("sequential-thinking"))
	gt.False(t, registry.IsServerAvailable("playwright"))
	gt.False(t, registry.IsServerAvailable("unknown"))
}

func TestRegistry_Refresh(t *testing.T) {
	t.Setenv("PULUMI_ORG", "")
	registry := newRegistry(t)
	gt.False(t, registry.IsServerAvailable("pulumi"))

	t.Setenv("PULUMI_ORG", "acme")
	gt.NoError(t, registry.Refresh(context.Background()))
	gt.True(t, registry.IsServerAvailable("pulumi"))
}

func TestRegistry_ValidateTool(t *testing.T) {
	registry := newRegistry(t)

	t.Run("allowed tool passes", func(t *testing.T) {
		gt.NoError(t, registry.ValidateTool("pulumi", "mcp__pulumi__resource-search"))
	})

	t.Run("forbidden tool rejected", func(t *testing.T) {
		for _, tool := range []string{
			"mcp__pulumi__neo-bridge",
			"mcp__pulumi__neo-continue-task",
			"mcp__pulumi__deploy-to-aws",
		} {
			err := registry.ValidateTool("pulumi", tool)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, apperr.ErrToolForbidden))
		}
	})

	t.Run("unknown tool rejected", func(t *testing.T) {
		err := registry.ValidateTool("pulumi", "mcp__pulumi__delete-stack")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, apperr.ErrToolNotAllowed))
	})

	t.Run("unknown server rejected", func(t *testing.T) {
		err := registry.ValidateTool("notion", "search")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, apperr.ErrServerNotFound))
	})
}

func TestRegistry_ValidateToolAvailability(t *testing.T) {
	t.Setenv("FIGMA_ACCESS_TOKEN", "figd_test_token")
	t.Setenv("V0_API_KEY", "")

	registry := newRegistry(t)

	gt.True(t, registry.ValidateToolAvailability("figma_get_file"))
	gt.True(t, registry.ValidateToolAvailability("sequentialthinking"))
	gt.False(t, registry.ValidateToolAvailability("v0_generate_ui"))
	gt.False(t, registry.ValidateToolAvailability("no_such_tool"))
}

func TestRegistry_GetRequirements(t *testing.T) {
	registry := newRegistry(t)

	reqs, err := registry.GetRequirements("figma")
	gt.NoError(t, err).Required()
	gt.V(t, reqs).NotNil()
	gt.A(t, reqs.RequiredEnv).Length(1)
	gt.Equal(t, reqs.RequiredEnv[0], "FIGMA_ACCESS_TOKEN")

	// No configuration needed
	reqs, err = registry.GetRequirements("sequential-thinking")
	gt.NoError(t, err).Required()
	gt.V(t, reqs).Nil()

	_, err = registry.GetRequirements("unknown")
	gt.Error(t, err)
}

func TestRegistry_FallbackOptions(t *testing.T) {
	registry := newRegistry(t)

	alts := registry.FallbackOptions("v0_generate_ui")
	gt.A(t, alts).Length(3)

	// Repeated lookups return the same alternatives in the same order
	for i := 0; i < 20; i++ {
		gt.Equal(t, registry.FallbackOptions("v0_generate_ui"), alts)
	}

	alts = registry.FallbackOptions("no_such_tool")
	gt.A(t, alts).Length(1)
	gt.Equal(t, alts[0], "Manual implementation required")
}
