package mcp

import (
	"github.com/m-mizutani/goerr/v2"
)

// ValidateServer validates a server descriptor. The allowed and forbidden
// tool sets must not overlap: a tool that appears in both would make the
// permission check order-dependent.
func ValidateServer(s *Server) error {
	if s.Name == "" {
		return goerr.Wrap(ErrInvalidServer, "server name cannot be empty")
	}

	if !s.SafetyLevel.IsValid() {
		return goerr.Wrap(ErrInvalidServer, "invalid safety level",
			goerr.V("safety_level", s.SafetyLevel.String()))
	}

	forbidden := make(map[string]struct{}, len(s.ForbiddenTools))
	for _, t := range s.ForbiddenTools {
		if t == "" {
			return goerr.Wrap(ErrInvalidServer, "forbidden tool name cannot be empty",
				goerr.V("server", s.Name))
		}
		forbidden[t] = struct{}{}
	}

	seen := make(map[string]struct{}, len(s.Tools))
	for _, t := range s.Tools {
		if t == "" {
			return goerr.Wrap(ErrInvalidServer, "tool name cannot be empty",
				goerr.V("server", s.Name))
		}
		if _, ok := forbidden[t]; ok {
			return goerr.Wrap(ErrInvalidServer, "tool appears in both allowed and forbidden sets",
				goerr.V("server", s.Name),
				goerr.V("tool", t))
		}
		if _, ok := seen[t]; ok {
			return goerr.Wrap(ErrInvalidServer, "duplicate tool name",
				goerr.V("server", s.Name),
				goerr.V("tool", t))
		}
		seen[t] = struct{}{}
	}

	return nil
}
