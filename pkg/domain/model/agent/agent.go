package agent

import (
	"github.com/donbr/raven/pkg/domain/types"
)

// Agent is a declarative agent definition loaded from a JSON descriptor.
// Descriptors live under a per-domain directory, one file per agent:
// <agents-dir>/<domain>/<agent_id>.json
type Agent struct {
	AgentID     string             `json:"agent_id"`
	Domain      string             `json:"domain"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Prompt      string             `json:"prompt"`
	Tools       []string           `json:"tools,omitempty"`
	Provider    types.LLMProvider  `json:"provider,omitempty"`
	Model       string             `json:"model,omitempty"`
	Version     string             `json:"version,omitempty"`
}

const (
	// DefaultVersion is applied when a descriptor omits the version field
	DefaultVersion = "1.0.0"
)

// ApplyDefaults fills optional descriptor fields with their defaults
func (a *Agent) ApplyDefaults() {
	if a.Version == "" {
		a.Version = DefaultVersion
	}
	if a.Provider == "" {
		a.Provider = types.LLMProviderClaude
	}
	if a.Model == "" {
		a.Model = a.Provider.DefaultModel()
	}
}

// HasTool reports whether the agent definition lists the tool
func (a *Agent) HasTool(name string) bool {
	for _, t := range a.Tools {
		if t == name {
			return true
		}
	}
	return false
}
