package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/model/agent"
	"github.com/donbr/raven/pkg/domain/model/workflow"
	"github.com/donbr/raven/pkg/domain/types"
	"github.com/donbr/raven/pkg/domain/types/apperr"
	transcriptstore "github.com/donbr/raven/pkg/repository/storage"
	"github.com/donbr/raven/pkg/utils/async"
)

// RunWorkflow executes the named workflow phase by phase, storing each
// artifact under the run's output prefix and recording per-phase cost.
// A failed run is persisted with its partial results before the error is
// returned, so the run record is returned alongside the error.
func (uc *UseCases) RunWorkflow(ctx context.Context, req *interfaces.RunWorkflowRequest) (*workflow.Run, error) {
	logger := ctxlog.From(ctx)

	def, exists := uc.workflows[req.Workflow]
	if !exists {
		return nil, goerr.Wrap(apperr.ErrWorkflowNotFound, "unknown workflow",
			goerr.TV(apperr.WorkflowKey, req.Workflow))
	}
	if uc.agentClient == nil {
		return nil, goerr.Wrap(apperr.ErrLLMNotConfigured, "agent client is not configured")
	}
	if uc.storage == nil {
		return nil, goerr.New("artifact storage is not configured")
	}

	startedAt := time.Now()
	run := &workflow.Run{
		ID:           types.NewRunID(ctx),
		Workflow:     def.Name,
		OutputPrefix: workflow.NewOutputPrefix(def.Name, startedAt),
		Status:       workflow.RunStatusRunning,
		StartedAt:    startedAt,
	}

	params := make(map[string]string, len(req.Params)+1)
	for k, v := range req.Params {
		params[k] = v
	}
	if params["project_name"] == "" {
		params["project_name"] = params["repo_root"]
	}

	// Artifact contents produced so far, keyed relative to the run prefix.
	// Prior-run documents are loaded under "prior/".
	artifacts := make(map[string]string)

	if def.RequiresPriorRun {
		if err := uc.loadPriorArtifacts(ctx, params, artifacts); err != nil {
			return nil, err
		}
	}

	logger.Info("starting workflow run",
		"run_id", run.ID,
		"workflow", def.Name,
		"output_prefix", run.OutputPrefix,
		"phases", len(def.Phases))

	for _, phase := range def.Phases {
		if uc.shouldSkipPhase(&phase) {
			logger.Info("skipping optional phase, required MCP server unavailable",
				"phase", phase.Number,
				"name", phase.Name,
				"server", phase.RequiresServer)
			run.AddPhase(workflow.PhaseRecord{
				Number:  phase.Number,
				Name:    phase.Name,
				AgentID: phase.AgentID,
				Status:  workflow.PhaseStatusSkipped,
			})
			continue
		}

		rec, err := uc.executePhase(ctx, run, &phase, params, artifacts)
		if err != nil {
			run.AddPhase(workflow.PhaseRecord{
				Number:  phase.Number,
				Name:    phase.Name,
				AgentID: phase.AgentID,
				Status:  workflow.PhaseStatusFailed,
			})
			run.Status = workflow.RunStatusFailed
			run.Error = err.Error()
			run.FinishedAt = time.Now()
			uc.persistRun(ctx, run)

			return run, goerr.Wrap(err, "workflow run failed",
				goerr.TV(apperr.RunIDKey, run.ID),
				goerr.TV(apperr.WorkflowKey, def.Name),
				goerr.TV(apperr.PhaseKey, phase.Number))
		}
		run.AddPhase(*rec)
	}

	if err := uc.verifyArtifacts(ctx, run, def); err != nil {
		run.Status = workflow.RunStatusFailed
		run.Error = err.Error()
		run.FinishedAt = time.Now()
		uc.persistRun(ctx, run)
		return run, err
	}

	run.Status = workflow.RunStatusCompleted
	run.FinishedAt = time.Now()
	uc.persistRun(ctx, run)

	logger.Info("workflow run completed",
		"run_id", run.ID,
		"workflow", def.Name,
		"completed_phases", len(run.CompletedPhases()),
		"total_cost_usd", run.TotalCostUSD,
		"duration", run.FinishedAt.Sub(run.StartedAt))
	for _, name := range sortedPhaseNames(run.CostBreakdown()) {
		logger.Debug("phase cost", "phase", name, "cost_usd", run.CostBreakdown()[name])
	}

	return run, nil
}

// GetRun returns a persisted run record
func (uc *UseCases) GetRun(ctx context.Context, id types.RunID) (*workflow.Run, error) {
	if uc.runs == nil {
		return nil, goerr.Wrap(apperr.ErrRunNotFound, "run repository is not configured")
	}
	return uc.runs.GetRun(ctx, id)
}

// ListRuns returns persisted runs newest first with the total count
func (uc *UseCases) ListRuns(ctx context.Context, offset, limit int) ([]*workflow.Run, int, error) {
	if uc.runs == nil {
		return []*workflow.Run{}, 0, nil
	}
	return uc.runs.ListRuns(ctx, offset, limit)
}

func (uc *UseCases) shouldSkipPhase(phase *workflow.Phase) bool {
	if !phase.Optional || phase.RequiresServer == "" {
		return false
	}
	if uc.mcpRegistry == nil {
		return true
	}
	return !uc.mcpRegistry.IsServerAvailable(phase.RequiresServer)
}

func (uc *UseCases) executePhase(ctx context.Context, run *workflow.Run, phase *workflow.Phase, params map[string]string, artifacts map[string]string) (*workflow.PhaseRecord, error) {
	logger := ctxlog.From(ctx)
	logger.Info("executing phase",
		"run_id", run.ID,
		"phase", phase.Number,
		"name", phase.Name,
		"agent_id", phase.AgentID)

	agentDef, err := uc.agents.GetAgent(ctx, phase.AgentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve phase agent",
			goerr.TV(apperr.AgentIDKey, phase.AgentID))
	}

	prompt := phase.RenderPrompt(params)
	prompt += renderContext(phase.ContextArtifacts, artifacts)

	phaseStart := time.Now()
	resp, err := uc.agentClient.Generate(ctx, agentDef.Prompt, prompt)
	if err != nil {
		return nil, goerr.Wrap(apperr.ErrPhaseFailed, "agent generation failed",
			goerr.TV(apperr.PhaseKey, phase.Number),
			goerr.TV(apperr.AgentIDKey, phase.AgentID),
			goerr.V("cause", err.Error()))
	}

	var storageKeys []string
	for _, artifact := range phase.Artifacts {
		key := run.OutputPrefix + "/" + artifact
		if err := uc.storage.Put(ctx, key, []byte(resp.Text)); err != nil {
			return nil, goerr.Wrap(err, "failed to store artifact",
				goerr.TV(apperr.ArtifactKey, artifact),
				goerr.TV(apperr.StorageKeyKey, key))
		}
		storageKeys = append(storageKeys, key)
		artifacts[artifact] = resp.Text
	}

	uc.saveTranscript(ctx, run, phase, prompt, resp)

	return &workflow.PhaseRecord{
		Number:       phase.Number,
		Name:         phase.Name,
		AgentID:      phase.AgentID,
		Status:       workflow.PhaseStatusCompleted,
		ArtifactKeys: storageKeys,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		CostUSD:      uc.estimateCost(agentDef, resp),
		Duration:     time.Since(phaseStart),
	}, nil
}

// verifyArtifacts confirms every expected artifact was actually written.
// Optional phases that were skipped are excluded from the expectation.
func (uc *UseCases) verifyArtifacts(ctx context.Context, run *workflow.Run, def *workflow.Definition) error {
	skipped := make(map[int]bool)
	for _, rec := range run.Phases {
		if rec.Status == workflow.PhaseStatusSkipped {
			skipped[rec.Number] = true
		}
	}

	for _, phase := range def.Phases {
		if skipped[phase.Number] {
			continue
		}
		for _, artifact := range phase.Artifacts {
			key := run.OutputPrefix + "/" + artifact
			data, err := uc.storage.Get(ctx, key)
			if err != nil {
				return goerr.Wrap(err, "expected artifact is missing",
					goerr.TV(apperr.RunIDKey, run.ID),
					goerr.TV(apperr.ArtifactKey, artifact),
					goerr.TV(apperr.StorageKeyKey, key))
			}
			if len(data) == 0 {
				return goerr.Wrap(apperr.ErrArtifactNotFound, "expected artifact is empty",
					goerr.TV(apperr.RunIDKey, run.ID),
					goerr.TV(apperr.ArtifactKey, artifact),
					goerr.TV(apperr.StorageKeyKey, key))
			}
		}
	}
	return nil
}

// loadPriorArtifacts resolves the prior run this review builds on. The
// prefix comes from the prior_run parameter, or the newest stored run of a
// documentation workflow when the parameter is absent.
func (uc *UseCases) loadPriorArtifacts(ctx context.Context, params map[string]string, artifacts map[string]string) error {
	prefix := params["prior_run"]
	if prefix == "" {
		found, err := uc.latestRunPrefix(ctx)
		if err != nil {
			return err
		}
		prefix = found
		params["prior_run"] = prefix
	}

	keys, err := uc.storage.List(ctx, prefix+"/")
	if err != nil {
		return goerr.Wrap(err, "failed to list prior run artifacts",
			goerr.V("prior_run", prefix))
	}

	loaded := 0
	for _, key := range keys {
		rel := strings.TrimPrefix(key, prefix+"/")
		if !strings.HasPrefix(rel, "docs/") && rel != "README.md" {
			continue
		}
		data, err := uc.storage.Get(ctx, key)
		if err != nil {
			return goerr.Wrap(err, "failed to load prior run artifact",
				goerr.TV(apperr.StorageKeyKey, key))
		}
		artifacts["prior/"+rel] = string(data)
		loaded++
	}

	if loaded == 0 {
		return goerr.Wrap(apperr.ErrArtifactNotFound, "prior run has no documentation to review",
			goerr.V("prior_run", prefix))
	}
	return nil
}

// latestRunPrefix scans stored artifacts for the newest documentation run.
// Prefixes embed a sortable timestamp, so the lexicographic maximum per
// workflow is the most recent.
func (uc *UseCases) latestRunPrefix(ctx context.Context) (string, error) {
	var latest string
	for _, wf := range []string{"workspace", "architecture"} {
		keys, err := uc.storage.List(ctx, wf+"_")
		if err != nil {
			return "", goerr.Wrap(err, "failed to scan for prior runs")
		}
		for _, key := range keys {
			prefix, _, found := strings.Cut(key, "/")
			if !found {
				continue
			}
			if prefix > latest {
				latest = prefix
			}
		}
	}

	if latest == "" {
		return "", goerr.Wrap(apperr.ErrRunNotFound, "no prior documentation run found, run the architecture or workspace workflow first")
	}
	return latest, nil
}

func (uc *UseCases) estimateCost(agentDef *agent.Agent, resp *interfaces.AgentResponse) float64 {
	if uc.llmConfig == nil {
		return 0
	}
	model, ok := uc.llmConfig.GetModel(agentDef.Provider.String(), agentDef.Model)
	if !ok {
		return 0
	}
	return model.EstimateCost(resp.InputTokens, resp.OutputTokens)
}

// saveTranscript records the phase exchange in the background. A transcript
// is diagnostic data, so a failure to save one never fails the run.
func (uc *UseCases) saveTranscript(ctx context.Context, run *workflow.Run, phase *workflow.Phase, prompt string, resp *interfaces.AgentResponse) {
	if uc.transcripts == nil {
		return
	}

	transcript := &transcriptstore.Transcript{
		Phase:        phase.Number,
		AgentID:      phase.AgentID,
		Prompt:       prompt,
		Output:       resp.Text,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		CompletedAt:  time.Now(),
	}
	prefix := run.OutputPrefix

	async.Dispatch(ctx, func(ctx context.Context) error {
		if err := uc.transcripts.SaveTranscript(ctx, prefix, transcript); err != nil {
			return goerr.Wrap(err, "failed to save phase transcript",
				goerr.TV(apperr.RunIDKey, run.ID),
				goerr.TV(apperr.PhaseKey, phase.Number))
		}
		return nil
	})
}

func (uc *UseCases) persistRun(ctx context.Context, run *workflow.Run) {
	if uc.runs == nil {
		return
	}
	if err := uc.runs.PutRun(ctx, run); err != nil {
		ctxlog.From(ctx).Error("failed to persist workflow run",
			"run_id", run.ID,
			"error", err)
	}
}

func renderContext(contextArtifacts []string, artifacts map[string]string) string {
	var sb strings.Builder
	for _, key := range contextArtifacts {
		content, ok := artifacts[key]
		if !ok {
			continue
		}
		sb.WriteString("\n\n## ")
		sb.WriteString(key)
		sb.WriteString("\n\n")
		sb.WriteString(content)
	}
	return sb.String()
}

func sortedPhaseNames(breakdown map[string]float64) []string {
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
