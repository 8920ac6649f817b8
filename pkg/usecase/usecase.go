package usecase

import (
	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/model/llm"
	"github.com/donbr/raven/pkg/domain/model/workflow"
	transcriptstore "github.com/donbr/raven/pkg/repository/storage"
	mcpservice "github.com/donbr/raven/pkg/service/mcp"
)

// UseCases holds all use cases
type UseCases struct {
	agents      interfaces.AgentRegistry
	runs        interfaces.RunRepository
	storage     interfaces.StorageAdapter
	transcripts *transcriptstore.Client
	agentClient interfaces.AgentClient
	llmConfig   *llm.ProvidersConfig
	mcpRegistry *mcpservice.Registry
	workflows   map[string]*workflow.Definition
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithAgentRegistry sets the agent registry
func WithAgentRegistry(registry interfaces.AgentRegistry) Option {
	return func(uc *UseCases) {
		uc.agents = registry
	}
}

// WithRunRepository sets the run repository
func WithRunRepository(repo interfaces.RunRepository) Option {
	return func(uc *UseCases) {
		uc.runs = repo
	}
}

// WithStorage sets the artifact storage adapter
func WithStorage(storage interfaces.StorageAdapter) Option {
	return func(uc *UseCases) {
		uc.storage = storage
	}
}

// WithAgentClient sets the LLM-backed agent client
func WithAgentClient(client interfaces.AgentClient) Option {
	return func(uc *UseCases) {
		uc.agentClient = client
	}
}

// WithLLMConfig sets the provider configuration used for cost accounting
func WithLLMConfig(config *llm.ProvidersConfig) Option {
	return func(uc *UseCases) {
		uc.llmConfig = config
	}
}

// WithMCPRegistry sets the MCP server registry
func WithMCPRegistry(registry *mcpservice.Registry) Option {
	return func(uc *UseCases) {
		uc.mcpRegistry = registry
	}
}

// New creates a new UseCases instance with the built-in workflow catalog
func New(opts ...Option) *UseCases {
	uc := &UseCases{
		workflows: defaultWorkflows(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.storage != nil {
		uc.transcripts = transcriptstore.New(uc.storage)
	}
	return uc
}

// Ensure UseCases implements required interfaces
var (
	_ interfaces.WorkflowUseCases = (*UseCases)(nil)
	_ interfaces.CatalogUseCases  = (*UseCases)(nil)
)
