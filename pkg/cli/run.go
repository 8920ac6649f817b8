package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/donbr/raven/pkg/cli/config"
	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/model/workflow"
	llmservice "github.com/donbr/raven/pkg/service/llm"
	mcpservice "github.com/donbr/raven/pkg/service/mcp"
	"github.com/donbr/raven/pkg/usecase"
)

func cmdRun() *cli.Command {
	var (
		repoRoot      string
		projectName   string
		workspaceRoot string
		priorRun      string
		agentsCfg     config.Agents
		storageCfg    config.Storage
		firestoreCfg  config.Firestore
		llmCfg        config.LLMConfig
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "repo-root",
			Aliases:     []string{"r"},
			Sources:     cli.EnvVars("RAVEN_REPO_ROOT"),
			Usage:       "Repository to analyze",
			Destination: &repoRoot,
		},
		&cli.StringFlag{
			Name:        "project-name",
			Sources:     cli.EnvVars("RAVEN_PROJECT_NAME"),
			Usage:       "Project name used in prompts (default: repo root)",
			Destination: &projectName,
		},
		&cli.StringFlag{
			Name:        "workspace-root",
			Sources:     cli.EnvVars("RAVEN_WORKSPACE_ROOT"),
			Usage:       "Workspace directory for multi-repo workflows",
			Destination: &workspaceRoot,
		},
		&cli.StringFlag{
			Name:        "prior-run",
			Usage:       "Output prefix of the run to review (default: newest stored run)",
			Destination: &priorRun,
		},
	}
	flags = append(flags, agentsCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, firestoreCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)

	return &cli.Command{
		Name:      "run",
		Aliases:   []string{"r"},
		Usage:     "Execute a workflow (architecture, ux, review, workspace)",
		ArgsUsage: "<workflow>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := ctxlog.From(ctx)

			workflowName := cmd.Args().First()
			if workflowName == "" {
				return goerr.New("workflow name is required, one of: architecture, ux, review, workspace")
			}

			if err := storageCfg.Validate(); err != nil {
				return err
			}
			storageAdapter, cleanup, err := storageCfg.CreateAdapter(ctx)
			if err != nil {
				return err
			}
			if cleanup != nil {
				defer cleanup()
			}

			providersConfig, err := llmCfg.LoadAndValidate()
			if err != nil {
				return err
			}
			factory, err := llmCfg.BuildFactory(ctx, providersConfig)
			if err != nil {
				return err
			}
			agentClient := llmservice.NewClient(factory.GetDefaultClient())

			runRepo, closeRepo, err := newRunRepository(ctx, &firestoreCfg)
			if err != nil {
				return err
			}
			if closeRepo != nil {
				defer closeRepo()
			}

			mcpRegistry, err := mcpservice.New(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(
				usecase.WithAgentRegistry(agentsCfg.Configure()),
				usecase.WithRunRepository(runRepo),
				usecase.WithStorage(storageAdapter),
				usecase.WithAgentClient(agentClient),
				usecase.WithLLMConfig(providersConfig),
				usecase.WithMCPRegistry(mcpRegistry),
			)

			params := map[string]string{}
			if repoRoot != "" {
				params["repo_root"] = repoRoot
			}
			if projectName != "" {
				params["project_name"] = projectName
			}
			if workspaceRoot != "" {
				params["workspace_root"] = workspaceRoot
			}
			if priorRun != "" {
				params["prior_run"] = priorRun
			}

			run, err := uc.RunWorkflow(ctx, &interfaces.RunWorkflowRequest{
				Workflow: workflowName,
				Params:   params,
			})
			if run != nil {
				printRunSummary(run)
			}
			if err != nil {
				logger.Error("workflow run failed", "error", err)
				return err
			}
			return nil
		},
	}
}

func printRunSummary(run *workflow.Run) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	fmt.Println()
	bold.Printf("Run %s (%s)\n", run.ID, run.Workflow)
	fmt.Printf("Output prefix: %s\n", run.OutputPrefix)

	switch run.Status {
	case workflow.RunStatusCompleted:
		green.Printf("Status: %s\n", run.Status)
	case workflow.RunStatusFailed:
		red.Printf("Status: %s\n", run.Status)
		if run.Error != "" {
			fmt.Printf("Error: %s\n", run.Error)
		}
	default:
		fmt.Printf("Status: %s\n", run.Status)
	}

	for _, phase := range run.Phases {
		marker := "  -"
		switch phase.Status {
		case workflow.PhaseStatusSkipped:
			yellow.Printf("%s phase %d: %s (skipped)\n", marker, phase.Number, phase.Name)
			continue
		case workflow.PhaseStatusFailed:
			red.Printf("%s phase %d: %s (failed)\n", marker, phase.Number, phase.Name)
			continue
		}
		fmt.Printf("%s phase %d: %s ($%.4f, %s)\n",
			marker, phase.Number, phase.Name, phase.CostUSD, phase.Duration.Round(time.Millisecond))
		for _, key := range phase.ArtifactKeys {
			fmt.Printf("      %s\n", key)
		}
	}

	breakdown := run.CostBreakdown()
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println(strings.Repeat("-", 40))
	for _, name := range names {
		fmt.Printf("  %s: $%.4f\n", name, breakdown[name])
	}
	bold.Printf("Total cost: $%.4f\n", run.TotalCostUSD)
}
