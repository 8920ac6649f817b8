package apperr

import "github.com/m-mizutani/goerr/v2"

// NotFound errors (HTTP 404)
var (
	ErrTagNotFound         = goerr.NewTag("not_found")
	ErrTagAgentNotFound    = goerr.NewTag("agent_not_found")
	ErrTagServerNotFound   = goerr.NewTag("server_not_found")
	ErrTagRunNotFound      = goerr.NewTag("run_not_found")
	ErrTagWorkflowNotFound = goerr.NewTag("workflow_not_found")
	ErrTagArtifactNotFound = goerr.NewTag("artifact_not_found")
)

// Validation errors (HTTP 400)
var (
	ErrTagValidation    = goerr.NewTag("validation")
	ErrTagInvalidInput  = goerr.NewTag("invalid_input")
	ErrTagInvalidFormat = goerr.NewTag("invalid_format")
	ErrTagRequiredField = goerr.NewTag("required_field")
)

// Permission errors (HTTP 401/403)
var (
	ErrTagUnauthorized  = goerr.NewTag("unauthorized")
	ErrTagForbidden     = goerr.NewTag("forbidden")
	ErrTagToolForbidden = goerr.NewTag("tool_forbidden")
)

// External service errors (HTTP 502/503)
var (
	ErrTagExternal          = goerr.NewTag("external")
	ErrTagLLMError          = goerr.NewTag("llm_error")
	ErrTagFirestore         = goerr.NewTag("firestore")
	ErrTagStorage           = goerr.NewTag("storage")
	ErrTagServerUnavailable = goerr.NewTag("server_unavailable")
)

// System errors (HTTP 500)
var (
	ErrTagInternal  = goerr.NewTag("internal")
	ErrTagTimeout   = goerr.NewTag("timeout")
	ErrTagRateLimit = goerr.NewTag("rate_limit")
)
