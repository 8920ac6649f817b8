package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/model/workflow"
	"github.com/donbr/raven/pkg/domain/types"
	"github.com/donbr/raven/pkg/domain/types/apperr"
)

// Client is an in-memory implementation of RunRepository
type Client struct {
	mu   sync.RWMutex
	runs map[types.RunID]*workflow.Run
}

// New creates a new in-memory client
func New() *Client {
	return &Client{
		runs: make(map[types.RunID]*workflow.Run),
	}
}

// PutRun stores a run record, overwriting any existing record with the same ID
func (c *Client) PutRun(ctx context.Context, run *workflow.Run) error {
	if run == nil {
		return goerr.New("run cannot be nil")
	}
	if !run.ID.IsValid() {
		return goerr.New("invalid run ID", goerr.TV(apperr.RunIDKey, run.ID))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Deep copy to avoid external modifications
	runCopy := *run
	runCopy.Phases = append([]workflow.PhaseRecord(nil), run.Phases...)
	c.runs[run.ID] = &runCopy

	return nil
}

// GetRun retrieves a run record by ID
func (c *Client) GetRun(ctx context.Context, id types.RunID) (*workflow.Run, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	run, exists := c.runs[id]
	if !exists {
		return nil, goerr.Wrap(apperr.ErrRunNotFound, "run not found",
			goerr.TV(apperr.RunIDKey, id))
	}

	// Return a copy to avoid external modifications
	runCopy := *run
	runCopy.Phases = append([]workflow.PhaseRecord(nil), run.Phases...)
	return &runCopy, nil
}

// ListRuns returns runs sorted by start time (newest first) with the total count
func (c *Client) ListRuns(ctx context.Context, offset, limit int) ([]*workflow.Run, int, error) {
	if offset < 0 {
		return nil, 0, goerr.New("offset must be non-negative", goerr.V("offset", offset))
	}
	if limit < 0 {
		return nil, 0, goerr.New("limit must be non-negative", goerr.V("limit", limit))
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]*workflow.Run, 0, len(c.runs))
	for _, run := range c.runs {
		runCopy := *run
		runCopy.Phases = append([]workflow.PhaseRecord(nil), run.Phases...)
		all = append(all, &runCopy)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].StartedAt.After(all[j].StartedAt) })

	total := len(all)
	if offset >= total {
		return []*workflow.Run{}, total, nil
	}

	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return all[offset:end], total, nil
}

// Ensure Client implements RunRepository interface
var _ interfaces.RunRepository = (*Client)(nil)
