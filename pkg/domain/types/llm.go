package types

// LLMProvider represents the type of LLM provider
type LLMProvider string

const (
	// LLMProviderOpenAI represents OpenAI provider
	LLMProviderOpenAI LLMProvider = "openai"
	// LLMProviderClaude represents Claude/Anthropic provider
	LLMProviderClaude LLMProvider = "claude"
	// LLMProviderGemini represents Google Gemini provider
	LLMProviderGemini LLMProvider = "gemini"
)

// String returns the string representation of the provider
func (p LLMProvider) String() string {
	return string(p)
}

// IsValid checks if the provider is valid
func (p LLMProvider) IsValid() bool {
	switch p {
	case LLMProviderOpenAI, LLMProviderClaude, LLMProviderGemini:
		return true
	default:
		return false
	}
}

// DefaultModel returns the model used when an agent definition omits one
func (p LLMProvider) DefaultModel() string {
	switch p {
	case LLMProviderOpenAI:
		return "gpt-4o"
	case LLMProviderClaude:
		return "claude-sonnet-4-0"
	case LLMProviderGemini:
		return "gemini-2.0-flash"
	default:
		return ""
	}
}

// LLMProviderFromString converts a string to LLMProvider
func LLMProviderFromString(s string) LLMProvider {
	switch s {
	case "openai", "OPENAI", "OpenAI":
		return LLMProviderOpenAI
	case "claude", "CLAUDE", "Claude":
		return LLMProviderClaude
	case "gemini", "GEMINI", "Gemini":
		return LLMProviderGemini
	default:
		return LLMProvider(s)
	}
}
