package types

import (
	"context"

	"github.com/google/uuid"
)

// RunID identifies a single workflow run.
type RunID string

func NewRunID(ctx context.Context) RunID {
	return RunID(newUUID(ctx))
}

func (id RunID) String() string {
	return string(id)
}

// IsValid checks if the RunID is valid
func (id RunID) IsValid() bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(string(id))
	return err == nil
}
