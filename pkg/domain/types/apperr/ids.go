package apperr

import "github.com/m-mizutani/goerr/v2"

// Agent related errors
var (
	ErrAgentNotFound = goerr.New("agent not found",
		goerr.T(ErrTagAgentNotFound)).ID("ERR_AGENT_NOT_FOUND")

	ErrInvalidAgentID = goerr.New("invalid agent ID format",
		goerr.T(ErrTagValidation)).ID("ERR_INVALID_AGENT_ID")
)

// Workflow related errors
var (
	ErrWorkflowNotFound = goerr.New("workflow not found",
		goerr.T(ErrTagWorkflowNotFound)).ID("ERR_WORKFLOW_NOT_FOUND")

	ErrRunNotFound = goerr.New("run not found",
		goerr.T(ErrTagRunNotFound)).ID("ERR_RUN_NOT_FOUND")

	ErrPhaseFailed = goerr.New("phase execution failed",
		goerr.T(ErrTagInternal)).ID("ERR_PHASE_FAILED")

	ErrArtifactNotFound = goerr.New("artifact not found",
		goerr.T(ErrTagArtifactNotFound)).ID("ERR_ARTIFACT_NOT_FOUND")
)

// Tool and integration related errors
var (
	ErrServerNotFound = goerr.New("MCP server not found",
		goerr.T(ErrTagServerNotFound)).ID("ERR_SERVER_NOT_FOUND")

	ErrToolForbidden = goerr.New("tool is forbidden",
		goerr.T(ErrTagToolForbidden)).ID("ERR_TOOL_FORBIDDEN")

	ErrToolNotAllowed = goerr.New("tool is not in the allowed set",
		goerr.T(ErrTagForbidden)).ID("ERR_TOOL_NOT_ALLOWED")

	ErrServerUnavailable = goerr.New("MCP server is not available",
		goerr.T(ErrTagServerUnavailable)).ID("ERR_SERVER_UNAVAILABLE")
)

// LLM related errors
var (
	ErrLLMNotConfigured = goerr.New("LLM not configured",
		goerr.T(ErrTagInternal)).ID("ERR_LLM_NOT_CONFIGURED")

	ErrLLMProviderNotSupported = goerr.New("LLM provider not supported",
		goerr.T(ErrTagValidation)).ID("ERR_LLM_PROVIDER_NOT_SUPPORTED")

	ErrLLMAPIFailed = goerr.New("LLM API call failed",
		goerr.T(ErrTagLLMError)).ID("ERR_LLM_API_FAILED")
)

// Firestore related errors
var (
	ErrFirestoreConnection = goerr.New("Firestore connection failed",
		goerr.T(ErrTagFirestore)).ID("ERR_FIRESTORE_CONNECTION")

	ErrFirestoreOperationFailed = goerr.New("Firestore operation failed",
		goerr.T(ErrTagFirestore)).ID("ERR_FIRESTORE_OP_FAILED")
)
