package apperr

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// HTTPStatusFromError returns the appropriate HTTP status code based on error tags
func HTTPStatusFromError(err error) int {
	switch {
	// 404 Not Found
	case goerr.HasTag(err, ErrTagNotFound),
		goerr.HasTag(err, ErrTagAgentNotFound),
		goerr.HasTag(err, ErrTagServerNotFound),
		goerr.HasTag(err, ErrTagRunNotFound),
		goerr.HasTag(err, ErrTagWorkflowNotFound),
		goerr.HasTag(err, ErrTagArtifactNotFound):
		return http.StatusNotFound

	// 400 Bad Request
	case goerr.HasTag(err, ErrTagValidation),
		goerr.HasTag(err, ErrTagInvalidInput),
		goerr.HasTag(err, ErrTagInvalidFormat),
		goerr.HasTag(err, ErrTagRequiredField):
		return http.StatusBadRequest

	// 401 Unauthorized
	case goerr.HasTag(err, ErrTagUnauthorized):
		return http.StatusUnauthorized

	// 403 Forbidden
	case goerr.HasTag(err, ErrTagForbidden),
		goerr.HasTag(err, ErrTagToolForbidden):
		return http.StatusForbidden

	// 408 Request Timeout
	case goerr.HasTag(err, ErrTagTimeout):
		return http.StatusRequestTimeout

	// 429 Too Many Requests
	case goerr.HasTag(err, ErrTagRateLimit):
		return http.StatusTooManyRequests

	// 502 Bad Gateway
	case goerr.HasTag(err, ErrTagExternal),
		goerr.HasTag(err, ErrTagLLMError),
		goerr.HasTag(err, ErrTagFirestore),
		goerr.HasTag(err, ErrTagStorage):
		return http.StatusBadGateway

	// 503 Service Unavailable
	case goerr.HasTag(err, ErrTagServerUnavailable):
		return http.StatusServiceUnavailable

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// CodeFromError returns the API error code for the error. The codes form a
// fixed vocabulary shared by all HTTP responses so that clients can branch
// on them without parsing messages.
func CodeFromError(err error) string {
	code, _ := classifyError(err)
	return code
}

// HintFromError returns the recovery hint for the error code: a short,
// actionable sentence telling the caller what to do next.
func HintFromError(err error) string {
	_, hint := classifyError(err)
	return hint
}

// classifyError maps error tags to the code vocabulary and recovery hints.
// Specific tags must be checked before their generic fallbacks (agent_not_found
// before not_found, tool_forbidden before forbidden).
func classifyError(err error) (string, string) {
	switch {
	case goerr.HasTag(err, ErrTagAgentNotFound):
		return "agent_not_found",
			"The agent ID did not resolve. Call the search endpoint with a query to list candidate IDs, then retry with an exact ID."
	case goerr.HasTag(err, ErrTagServerNotFound):
		return "server_not_found",
			"The server name did not resolve. Call the server search endpoint to list registered names, then retry with an exact name."
	case goerr.HasTag(err, ErrTagRunNotFound):
		return "run_not_found",
			"No run with this ID exists. List runs to find valid run IDs."
	case goerr.HasTag(err, ErrTagWorkflowNotFound):
		return "workflow_not_found",
			"No workflow is registered under this name. List workflows for the supported names."
	case goerr.HasTag(err, ErrTagArtifactNotFound):
		return "artifact_not_found",
			"The artifact key does not exist in storage. Verify the run completed the producing phase."
	case goerr.HasTag(err, ErrTagNotFound):
		return "not_found",
			"The requested resource does not exist. Use a search or list call to discover valid identifiers."
	case goerr.HasTag(err, ErrTagRequiredField):
		return "required_field",
			"A required field is missing. Check the request against the API documentation."
	case goerr.HasTag(err, ErrTagInvalidFormat):
		return "invalid_format",
			"A field has an invalid format. Check the request against the API documentation."
	case goerr.HasTag(err, ErrTagInvalidInput):
		return "invalid_input",
			"The request parameters are invalid. Correct them and retry."
	case goerr.HasTag(err, ErrTagValidation):
		return "validation",
			"The request failed validation. Correct the reported field and retry."
	case goerr.HasTag(err, ErrTagToolForbidden):
		return "tool_forbidden",
			"This tool is explicitly forbidden for safety. Use one of the allowed tools listed for the server."
	case goerr.HasTag(err, ErrTagForbidden):
		return "forbidden",
			"The operation is not permitted. Check the allowed tool list for the server."
	case goerr.HasTag(err, ErrTagUnauthorized):
		return "unauthorized",
			"Authentication failed. Check credentials and retry."
	case goerr.HasTag(err, ErrTagTimeout):
		return "timeout",
			"The operation timed out. Retry with a smaller request or later."
	case goerr.HasTag(err, ErrTagRateLimit):
		return "rate_limit",
			"Rate limited. Back off and retry after a delay."
	case goerr.HasTag(err, ErrTagLLMError):
		return "llm_error",
			"The LLM provider call failed. Check provider status and API keys, then retry."
	case goerr.HasTag(err, ErrTagFirestore):
		return "firestore",
			"The database operation failed. Retry later."
	case goerr.HasTag(err, ErrTagStorage):
		return "storage",
			"The storage operation failed. Retry later."
	case goerr.HasTag(err, ErrTagExternal):
		return "external",
			"An upstream service failed. Retry later."
	case goerr.HasTag(err, ErrTagServerUnavailable):
		return "server_unavailable",
			"The MCP server is not configured. Fetch its requirements endpoint for setup instructions."
	default:
		return "internal",
			"Retry later. If the problem persists, check the server logs."
	}
}
