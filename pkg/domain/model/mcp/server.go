package mcp

// SafetyLevel classifies how much a server is allowed to mutate
type SafetyLevel string

const (
	SafetyReadOnly     SafetyLevel = "read_only"
	SafetyStandard     SafetyLevel = "standard"
	SafetyUnrestricted SafetyLevel = "unrestricted"
)

// String returns the string representation of the safety level
func (s SafetyLevel) String() string {
	return string(s)
}

// IsValid checks if the safety level is valid
func (s SafetyLevel) IsValid() bool {
	switch s {
	case SafetyReadOnly, SafetyStandard, SafetyUnrestricted:
		return true
	default:
		return false
	}
}

// Server describes an MCP server integration: which tools it exposes, which
// tools are explicitly forbidden, and what configuration it needs before the
// orchestrators may use it. Tools and ForbiddenTools are disjoint sets.
type Server struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Tools          []string    `json:"tools"`
	ForbiddenTools []string    `json:"forbidden_tools,omitempty"`
	SafetyLevel    SafetyLevel `json:"safety_level"`
	ConfigRequired bool        `json:"config_required"`

	Requirements Requirements `json:"requirements"`

	// Fallbacks maps a tool name to manual alternatives usable when the
	// server is unavailable.
	Fallbacks map[string][]string `json:"fallbacks,omitempty"`
}

// Requirements lists what must be configured for a server to become available
type Requirements struct {
	RequiredEnv       []string `json:"required_env,omitempty"`
	OptionalEnv       []string `json:"optional_env,omitempty"`
	SetupInstructions string   `json:"setup_instructions,omitempty"`
}

// HasTool reports whether the tool is in the allowed set
func (s *Server) HasTool(name string) bool {
	for _, t := range s.Tools {
		if t == name {
			return true
		}
	}
	return false
}

// IsForbidden reports whether the tool is in the forbidden set
func (s *Server) IsForbidden(name string) bool {
	for _, t := range s.ForbiddenTools {
		if t == name {
			return true
		}
	}
	return false
}
