package mcp

import "github.com/m-mizutani/goerr/v2"

// Error definitions for MCP server operations
var (
	// ErrServerNotFound is returned when a requested server is not registered
	ErrServerNotFound = goerr.New("MCP server not found")

	// ErrServerAlreadyExists is returned when registering a server with an existing name
	ErrServerAlreadyExists = goerr.New("MCP server already exists")

	// ErrInvalidServer is returned when a server descriptor fails validation
	ErrInvalidServer = goerr.New("invalid MCP server definition")
)
