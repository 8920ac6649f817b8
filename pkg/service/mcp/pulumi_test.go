package mcp_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/donbr/raven/pkg/domain/types/apperr"
	"github.com/donbr/raven/pkg/service/mcp"
)

func TestPulumiIntegration_ValidateTool(t *testing.T) {
	integration := mcp.NewPulumiIntegration()

	t.Run("every whitelisted tool passes", func(t *testing.T) {
		for _, tool := range integration.AllowedTools() {
			gt.NoError(t, integration.ValidateTool(tool))
		}
	})

	t.Run("forbidden tools rejected", func(t *testing.T) {
		for _, tool := range []string{
			"mcp__pulumi__neo-bridge",
			"mcp__pulumi__neo-continue-task",
			"mcp__pulumi__deploy-to-aws",
		} {
			err := integration.ValidateTool(tool)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, apperr.ErrToolForbidden))
		}
	})

	t.Run("unknown tools rejected as not allowed", func(t *testing.T) {
		err := integration.ValidateTool("mcp__pulumi__delete-stack")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, apperr.ErrToolNotAllowed))
		gt.False(t, errors.Is(err, apperr.ErrToolForbidden))
	})
}

func TestPulumiIntegration_Organization(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		t.Setenv("PULUMI_ORG", "")
		integration := mcp.NewPulumiIntegration()
		gt.Equal(t, integration.Organization(), "donbr")
		gt.False(t, integration.IsAvailable())
	})

	t.Run("reads from environment", func(t *testing.T) {
		t.Setenv("PULUMI_ORG", "acme-corp")
		integration := mcp.NewPulumiIntegration()
		gt.Equal(t, integration.Organization(), "acme-corp")
		gt.True(t, integration.IsAvailable())
	})
}

func TestFigmaIntegration(t *testing.T) {
	t.Run("unavailable without token", func(t *testing.T) {
		t.Setenv("FIGMA_ACCESS_TOKEN", "")
		integration := mcp.NewFigmaIntegration()
		gt.False(t, integration.IsAvailable())
		gt.True(t, len(integration.SetupInstructions()) > 0)
	})

	t.Run("available with token", func(t *testing.T) {
		t.Setenv("FIGMA_ACCESS_TOKEN", "figd_test_token")
		t.Setenv("FIGMA_FILE_ID", "abc123")
		integration := mcp.NewFigmaIntegration()
		gt.True(t, integration.IsAvailable())
		gt.Equal(t, integration.FileID(), "abc123")
	})
}
