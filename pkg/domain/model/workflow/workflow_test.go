package workflow_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/donbr/raven/pkg/domain/model/workflow"
)

func TestRenderPrompt(t *testing.T) {
	phase := &workflow.Phase{
		Number:         1,
		Name:           "Component Inventory",
		AgentID:        "analyzer",
		PromptTemplate: "Analyze {repo_root} and write results to {output_dir}/docs. Leave {unknown} alone.",
	}

	prompt := phase.RenderPrompt(map[string]string{
		"repo_root":  "/src/app",
		"output_dir": "architecture_20250101_120000",
	})

	gt.Equal(t, prompt, "Analyze /src/app and write results to architecture_20250101_120000/docs. Leave {unknown} alone.")
}

func TestExpectedArtifacts(t *testing.T) {
	def := &workflow.Definition{
		Name: "architecture",
		Phases: []workflow.Phase{
			{Number: 1, Artifacts: []string{"docs/01_component_inventory.md"}},
			{Number: 2, Artifacts: []string{"diagrams/02_architecture_diagrams.md"}},
			{Number: 3, Optional: true, Artifacts: []string{"docs/06_infrastructure_topology.md"}},
		},
	}

	all := def.ExpectedArtifacts(false)
	gt.A(t, all).Length(3)

	required := def.ExpectedArtifacts(true)
	gt.A(t, required).Length(2)
	gt.Equal(t, required[0], "docs/01_component_inventory.md")
	gt.Equal(t, required[1], "diagrams/02_architecture_diagrams.md")
}

func TestNewOutputPrefix(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	gt.Equal(t, workflow.NewOutputPrefix("architecture", ts), "architecture_20250314_092653")
}

func TestRunCostAccounting(t *testing.T) {
	run := &workflow.Run{Workflow: "ux", Status: workflow.RunStatusRunning}

	run.AddPhase(workflow.PhaseRecord{
		Number: 1, Name: "User Research", Status: workflow.PhaseStatusCompleted, CostUSD: 0.25,
	})
	run.AddPhase(workflow.PhaseRecord{
		Number: 2, Name: "Information Architecture", Status: workflow.PhaseStatusSkipped,
	})
	run.AddPhase(workflow.PhaseRecord{
		Number: 3, Name: "Visual Design", Status: workflow.PhaseStatusCompleted, CostUSD: 0.5,
	})

	gt.Equal(t, run.TotalCostUSD, 0.75)

	completed := run.CompletedPhases()
	gt.A(t, completed).Length(2)
	gt.Equal(t, completed[0], "User Research")

	breakdown := run.CostBreakdown()
	gt.Equal(t, len(breakdown), 2)
	gt.Equal(t, breakdown["Visual Design"], 0.5)
}
