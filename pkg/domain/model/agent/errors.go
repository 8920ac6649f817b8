package agent

import "github.com/m-mizutani/goerr/v2"

// Error definitions for agent-related operations
var (
	// ErrAgentNotFound is returned when a requested agent cannot be found
	ErrAgentNotFound = goerr.New("agent not found")

	// ErrAgentAlreadyExists is returned when registering an agent with an existing ID
	ErrAgentAlreadyExists = goerr.New("agent already exists")

	// ErrInvalidAgentID is returned when an invalid agent ID is provided
	ErrInvalidAgentID = goerr.New("invalid agent ID")

	// ErrInvalidDefinition is returned when a descriptor fails validation
	ErrInvalidDefinition = goerr.New("invalid agent definition")
)
