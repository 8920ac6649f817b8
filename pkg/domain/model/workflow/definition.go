package workflow

import (
	"strings"
)

// Definition is an ordered catalog of phases that together produce a set of
// markdown artifacts for one analysis domain.
type Definition struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AgentIDs    []string `json:"agent_ids"`
	Phases      []Phase  `json:"phases"`

	// RequiresPriorRun marks workflows that audit the output of an earlier
	// run instead of analyzing a repository directly.
	RequiresPriorRun bool `json:"requires_prior_run,omitempty"`
}

// Phase is a single step of a workflow: one prompt to one agent producing
// one or more artifacts. Optional phases are skipped, not failed, when
// their required MCP server is unavailable.
type Phase struct {
	Number         int      `json:"number"`
	Name           string   `json:"name"`
	AgentID        string   `json:"agent_id"`
	PromptTemplate string   `json:"prompt_template"`
	Artifacts      []string `json:"artifacts"`
	Optional       bool     `json:"optional,omitempty"`
	RequiresServer string   `json:"requires_server,omitempty"`

	// ContextArtifacts names artifacts from earlier phases (or from the
	// prior run, under a "prior/" prefix) whose content is appended to the
	// rendered prompt so the agent can build on previous analysis.
	ContextArtifacts []string `json:"context_artifacts,omitempty"`
}

// RenderPrompt substitutes {placeholder} occurrences in the phase prompt
// template with the given parameter values. Unknown placeholders are left
// untouched so a missing parameter is visible in the rendered prompt.
func (p *Phase) RenderPrompt(params map[string]string) string {
	prompt := p.PromptTemplate
	for k, v := range params {
		prompt = strings.ReplaceAll(prompt, "{"+k+"}", v)
	}
	return prompt
}

// ExpectedArtifacts returns all artifact keys the workflow should produce,
// excluding optional phases when skipOptional is set.
func (d *Definition) ExpectedArtifacts(skipOptional bool) []string {
	var keys []string
	for _, p := range d.Phases {
		if skipOptional && p.Optional {
			continue
		}
		keys = append(keys, p.Artifacts...)
	}
	return keys
}
