package mcp_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/donbr/raven/pkg/domain/model/mcp"
)

func TestValidateServer(t *testing.T) {
	validServer := func() *mcp.Server {
		return &mcp.Server{
			Name:        "pulumi",
			Description: "Infrastructure state queries",
			Tools: []string{
				"mcp__pulumi__pulumi-registry-list-resources",
				"mcp__pulumi__pulumi-registry-get-resource",
			},
			ForbiddenTools: []string{
				"mcp__pulumi__deploy-to-aws",
			},
			SafetyLevel:    mcp.SafetyReadOnly,
			ConfigRequired: true,
		}
	}

	testCases := []struct {
		name      string
		mutate    func(s *mcp.Server)
		shouldErr bool
		errMsg    string
	}{
		{
			name:      "valid server",
			mutate:    func(s *mcp.Server) {},
			shouldErr: false,
		},
		{
			name:      "empty name",
			mutate:    func(s *mcp.Server) { s.Name = "" },
			shouldErr: true,
			errMsg:    "server name cannot be empty",
		},
		{
			name:      "invalid safety level",
			mutate:    func(s *mcp.Server) { s.SafetyLevel = "dangerous" },
			shouldErr: true,
			errMsg:    "invalid safety level",
		},
		{
			name: "tool in both allowed and forbidden sets",
			mutate: func(s *mcp.Server) {
				s.Tools = append(s.Tools, "mcp__pulumi__deploy-to-aws")
			},
			shouldErr: true,
			errMsg:    "both allowed and forbidden",
		},
		{
			name: "duplicate tool name",
			mutate: func(s *mcp.Server) {
				s.Tools = append(s.Tools, s.Tools[0])
			},
			shouldErr: true,
			errMsg:    "duplicate tool name",
		},
		{
			name:      "empty tool name",
			mutate:    func(s *mcp.Server) { s.Tools = append(s.Tools, "") },
			shouldErr: true,
			errMsg:    "tool name cannot be empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := validServer()
			tc.mutate(s)
			err := mcp.ValidateServer(s)
			if tc.shouldErr {
				gt.Error(t, err)
				if tc.errMsg != "" {
					gt.True(t, strings.Contains(err.Error(), tc.errMsg))
				}
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestServerToolSets(t *testing.T) {
	s := &mcp.Server{
		Name:           "pulumi",
		Tools:          []string{"mcp__pulumi__pulumi-registry-list-resources"},
		ForbiddenTools: []string{"mcp__pulumi__neo-bridge"},
		SafetyLevel:    mcp.SafetyReadOnly,
	}

	gt.True(t, s.HasTool("mcp__pulumi__pulumi-registry-list-resources"))
	gt.False(t, s.HasTool("mcp__pulumi__neo-bridge"))
	gt.True(t, s.IsForbidden("mcp__pulumi__neo-bridge"))
	gt.False(t, s.IsForbidden("mcp__pulumi__pulumi-registry-list-resources"))
}
