package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/model/workflow"
	"github.com/donbr/raven/pkg/domain/types"
	"github.com/donbr/raven/pkg/domain/types/apperr"
	"github.com/donbr/raven/pkg/repository/database/memory"
)

func newTestRun(ctx context.Context, name string, startedAt time.Time) *workflow.Run {
	return &workflow.Run{
		ID:           types.NewRunID(ctx),
		Workflow:     name,
		OutputPrefix: workflow.NewOutputPrefix(name, startedAt),
		Status:       workflow.RunStatusCompleted,
		StartedAt:    startedAt,
		FinishedAt:   startedAt.Add(10 * time.Minute),
		Phases: []workflow.PhaseRecord{
			{Number: 1, Name: "Component Inventory", AgentID: "analyzer", Status: workflow.PhaseStatusCompleted, CostUSD: 0.5},
		},
		TotalCostUSD: 0.5,
	}
}

func TestRunRepository_PutAndGet(t *testing.T) {
	ctx := context.Background()
	var repo interfaces.RunRepository = memory.New()

	run := newTestRun(ctx, "architecture", time.Now())
	gt.NoError(t, repo.PutRun(ctx, run)).Required()

	retrieved, err := repo.GetRun(ctx, run.ID)
	gt.NoError(t, err).Required()
	gt.Equal(t, retrieved.ID, run.ID)
	gt.Equal(t, retrieved.Workflow, "architecture")
	gt.Equal(t, retrieved.OutputPrefix, run.OutputPrefix)
	gt.A(t, retrieved.Phases).Length(1)
}

func TestRunRepository_GetNotFound(t *testing.T) {
	ctx := context.Background()
	var repo interfaces.RunRepository = memory.New()

	_, err := repo.GetRun(ctx, types.NewRunID(ctx))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, apperr.ErrRunNotFound))
}

func TestRunRepository_PutInvalidID(t *testing.T) {
	ctx := context.Background()
	var repo interfaces.RunRepository = memory.New()

	err := repo.PutRun(ctx, &workflow.Run{ID: "not-a-uuid", Workflow: "ux"})
	gt.Error(t, err)
}

func TestRunRepository_ListRuns(t *testing.T) {
	ctx := context.Background()
	var repo interfaces.RunRepository = memory.New()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		run := newTestRun(ctx, "architecture", base.Add(time.Duration(i)*time.Hour))
		gt.NoError(t, repo.PutRun(ctx, run)).Required()
	}

	t.Run("newest first", func(t *testing.T) {
		runs, total, err := repo.ListRuns(ctx, 0, 0)
		gt.NoError(t, err).Required()
		gt.Equal(t, total, 5)
		gt.A(t, runs).Length(5)
		gt.True(t, runs[0].StartedAt.After(runs[4].StartedAt))
	})

	t.Run("pagination", func(t *testing.T) {
		runs, total, err := repo.ListRuns(ctx, 2, 2)
		gt.NoError(t, err).Required()
		gt.Equal(t, total, 5)
		gt.A(t, runs).Length(2)
	})

	t.Run("offset beyond total", func(t *testing.T) {
		runs, total, err := repo.ListRuns(ctx, 10, 2)
		gt.NoError(t, err).Required()
		gt.Equal(t, total, 5)
		gt.A(t, runs).Length(0)
	})

	t.Run("negative offset rejected", func(t *testing.T) {
		_, _, err := repo.ListRuns(ctx, -1, 2)
		gt.Error(t, err)
	})
}

func TestRunRepository_CopyOnWrite(t *testing.T) {
	ctx := context.Background()
	var repo interfaces.RunRepository = memory.New()

	run := newTestRun(ctx, "review", time.Now())
	gt.NoError(t, repo.PutRun(ctx, run)).Required()

	// Mutating the original after Put must not affect the stored record
	run.Status = workflow.RunStatusFailed
	run.Phases[0].Name = "mutated"

	retrieved, err := repo.GetRun(ctx, run.ID)
	gt.NoError(t, err).Required()
	gt.Equal(t, retrieved.Status, workflow.RunStatusCompleted)
	gt.Equal(t, retrieved.Phases[0].Name, "Component Inventory")
}
