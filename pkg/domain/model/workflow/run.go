package workflow

import (
	"fmt"
	"time"

	"github.com/donbr/raven/pkg/domain/types"
)

// RunStatus represents the lifecycle state of a workflow run
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// PhaseStatus represents the outcome of a single phase
type PhaseStatus string

const (
	PhaseStatusCompleted PhaseStatus = "completed"
	PhaseStatusSkipped   PhaseStatus = "skipped"
	PhaseStatusFailed    PhaseStatus = "failed"
)

// PhaseRecord is the persisted outcome of one executed phase
type PhaseRecord struct {
	Number       int           `json:"number" firestore:"number"`
	Name         string        `json:"name" firestore:"name"`
	AgentID      string        `json:"agent_id" firestore:"agent_id"`
	Status       PhaseStatus   `json:"status" firestore:"status"`
	ArtifactKeys []string      `json:"artifact_keys,omitempty" firestore:"artifact_keys,omitempty"`
	InputTokens  int           `json:"input_tokens" firestore:"input_tokens"`
	OutputTokens int           `json:"output_tokens" firestore:"output_tokens"`
	CostUSD      float64       `json:"cost_usd" firestore:"cost_usd"`
	Duration     time.Duration `json:"duration" firestore:"duration"`
}

// Run is the persisted record of one workflow execution
type Run struct {
	ID           types.RunID   `json:"id" firestore:"id"`
	Workflow     string        `json:"workflow" firestore:"workflow"`
	OutputPrefix string        `json:"output_prefix" firestore:"output_prefix"`
	Status       RunStatus     `json:"status" firestore:"status"`
	Phases       []PhaseRecord `json:"phases" firestore:"phases"`
	TotalCostUSD float64       `json:"total_cost_usd" firestore:"total_cost_usd"`
	Error        string        `json:"error,omitempty" firestore:"error,omitempty"`
	StartedAt    time.Time     `json:"started_at" firestore:"started_at"`
	FinishedAt   time.Time     `json:"finished_at,omitempty" firestore:"finished_at,omitempty"`
}

// NewOutputPrefix builds the storage prefix for a run: {workflow}_{timestamp}.
// All artifacts of the run are stored under this prefix.
func NewOutputPrefix(workflow string, t time.Time) string {
	return fmt.Sprintf("%s_%s", workflow, t.Format("20060102_150405"))
}

// AddPhase appends a phase record and accumulates its cost
func (r *Run) AddPhase(rec PhaseRecord) {
	r.Phases = append(r.Phases, rec)
	r.TotalCostUSD += rec.CostUSD
}

// CompletedPhases returns the names of phases that completed successfully
func (r *Run) CompletedPhases() []string {
	var names []string
	for _, p := range r.Phases {
		if p.Status == PhaseStatusCompleted {
			names = append(names, p.Name)
		}
	}
	return names
}

// CostBreakdown maps phase name to its cost for summary reporting
func (r *Run) CostBreakdown() map[string]float64 {
	breakdown := make(map[string]float64, len(r.Phases))
	for _, p := range r.Phases {
		if p.Status == PhaseStatusCompleted {
			breakdown[p.Name] = p.CostUSD
		}
	}
	return breakdown
}
