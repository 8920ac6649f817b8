package apperr

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/donbr/raven/pkg/domain/types"
)

// Domain entity related keys
var (
	RunIDKey    = goerr.NewTypedKey[types.RunID]("run_id")
	AgentIDKey  = goerr.NewTypedKey[string]("agent_id")
	DomainKey   = goerr.NewTypedKey[string]("domain")
	WorkflowKey = goerr.NewTypedKey[string]("workflow")
	PhaseKey    = goerr.NewTypedKey[int]("phase")
)

// Tool and integration related keys
var (
	ServerNameKey = goerr.NewTypedKey[string]("server_name")
	ToolNameKey   = goerr.NewTypedKey[string]("tool_name")
	EnvVarKey     = goerr.NewTypedKey[string]("env_var")
)

// Processing related keys
var (
	RequestIDKey  = goerr.NewTypedKey[string]("request_id")
	ArtifactKey   = goerr.NewTypedKey[string]("artifact")
	StorageKeyKey = goerr.NewTypedKey[string]("storage_key")
	OperationKey  = goerr.NewTypedKey[string]("operation")
	ErrorCountKey = goerr.NewTypedKey[int]("error_count")
)

// LLM related keys
var (
	LLMProviderKey = goerr.NewTypedKey[string]("llm_provider")
	LLMModelKey    = goerr.NewTypedKey[string]("llm_model")
	TokenCountKey  = goerr.NewTypedKey[int]("token_count")
)

// Firestore related keys
var (
	CollectionKey = goerr.NewTypedKey[string]("collection")
	DocumentIDKey = goerr.NewTypedKey[string]("document_id")
	ProjectIDKey  = goerr.NewTypedKey[string]("project_id")
)
