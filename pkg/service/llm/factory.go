package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/claude"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/donbr/raven/pkg/domain/model/llm"
	"github.com/donbr/raven/pkg/domain/types"
	"github.com/donbr/raven/pkg/utils/logging"
)

// Credential holds authentication information for an LLM provider
type Credential struct {
	APIKey    string
	ProjectID string // Gemini
	Location  string // Gemini
}

// configured reports whether the credential carries everything the provider
// needs to build a client
func (c Credential) configured(provider types.LLMProvider) bool {
	switch provider {
	case types.LLMProviderOpenAI, types.LLMProviderClaude:
		return c.APIKey != ""
	case types.LLMProviderGemini:
		return c.ProjectID != "" && c.Location != ""
	default:
		return false
	}
}

// Factory creates LLM clients for workflow agents. Clients are cached per
// provider/model pair so every phase that shares an agent reuses one client.
type Factory struct {
	config        *llm.ProvidersConfig
	credentials   map[types.LLMProvider]Credential
	defaultClient gollem.LLMClient
	clients       map[string]gollem.LLMClient
}

// NewFactory creates a new LLM factory. The default provider's client is
// built eagerly so a run fails at startup, not mid-workflow, when keys are
// missing or invalid.
func NewFactory(config *llm.ProvidersConfig, credentials map[types.LLMProvider]Credential) (*Factory, error) {
	logger := logging.Default()

	f := &Factory{
		config:      config,
		credentials: credentials,
		clients:     make(map[string]gollem.LLMClient),
	}

	readyProviders := make([]string, 0, len(credentials))
	for providerType, cred := range credentials {
		if cred.configured(providerType) {
			readyProviders = append(readyProviders, string(providerType))
		}
	}

	if config.Defaults.Provider != "" && config.Defaults.Model != "" {
		providerType := types.LLMProviderFromString(config.Defaults.Provider)
		cred, exists := credentials[providerType]
		if !exists || !cred.configured(providerType) {
			return nil, goerr.New("credentials for the default provider are not configured",
				goerr.V("provider", config.Defaults.Provider))
		}

		defaultClient, err := f.CreateClient(context.Background(), config.Defaults.Provider, config.Defaults.Model)
		if err != nil {
			logger.Error("failed to create default LLM client",
				slog.String("provider", config.Defaults.Provider),
				slog.String("model", config.Defaults.Model),
				slog.String("error", err.Error()),
			)
			return nil, goerr.Wrap(err, "failed to create default LLM client, check API keys and configuration")
		}
		f.defaultClient = defaultClient
	}

	logger.Info("LLM factory initialized",
		slog.Any("ready_providers", readyProviders),
		slog.String("default_client", fmt.Sprintf("%s:%s", config.Defaults.Provider, config.Defaults.Model)),
	)

	return f, nil
}

// CreateClient creates an LLM client for the provider/model pair. The pair
// must appear in the providers configuration.
func (f *Factory) CreateClient(ctx context.Context, provider, model string) (gollem.LLMClient, error) {
	if !f.config.ValidateProviderModel(provider, model) {
		return nil, goerr.New("invalid provider/model combination", goerr.V("provider", provider), goerr.V("model", model))
	}

	cacheKey := fmt.Sprintf("%s:%s", provider, model)
	if client, exists := f.clients[cacheKey]; exists {
		return client, nil
	}

	providerType := types.LLMProviderFromString(provider)
	cred, exists := f.credentials[providerType]
	if !exists {
		return nil, goerr.New("no credentials configured for provider", goerr.V("provider", provider))
	}
	if !cred.configured(providerType) {
		return nil, goerr.New("incomplete credentials for provider", goerr.V("provider", provider))
	}

	var client gollem.LLMClient
	var err error

	switch providerType {
	case types.LLMProviderGemini:
		client, err = gemini.New(ctx, cred.ProjectID, cred.Location, gemini.WithModel(model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client")
		}

	case types.LLMProviderClaude:
		client, err = claude.New(ctx, cred.APIKey, claude.WithModel(model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Claude client")
		}

	case types.LLMProviderOpenAI:
		client, err = openai.New(ctx, cred.APIKey, openai.WithModel(model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create OpenAI client")
		}

	default:
		return nil, goerr.New("unsupported provider", goerr.V("provider", provider))
	}

	f.clients[cacheKey] = client

	return client, nil
}

// GetDefaultClient returns the default LLM client
func (f *Factory) GetDefaultClient() gollem.LLMClient {
	return f.defaultClient
}

// GetFallbackClient returns the fallback LLM client if enabled
func (f *Factory) GetFallbackClient(ctx context.Context) (gollem.LLMClient, error) {
	if !f.config.Fallback.Enabled {
		return nil, goerr.New("fallback is not enabled")
	}

	if f.config.Fallback.Provider == "" || f.config.Fallback.Model == "" {
		return nil, goerr.New("fallback provider/model not configured")
	}

	return f.CreateClient(ctx, f.config.Fallback.Provider, f.config.Fallback.Model)
}

// GetConfig returns the providers configuration
func (f *Factory) GetConfig() *llm.ProvidersConfig {
	return f.config
}
