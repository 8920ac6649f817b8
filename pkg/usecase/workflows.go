package usecase

import (
	"context"
	"sort"

	"github.com/donbr/raven/pkg/domain/model/workflow"
	mcpservice "github.com/donbr/raven/pkg/service/mcp"
)

// ListWorkflows returns the registered workflow definitions sorted by name
func (uc *UseCases) ListWorkflows(ctx context.Context) []*workflow.Definition {
	defs := make([]*workflow.Definition, 0, len(uc.workflows))
	for _, def := range uc.workflows {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

func defaultWorkflows() map[string]*workflow.Definition {
	defs := []*workflow.Definition{
		architectureWorkflow(),
		uxWorkflow(),
		reviewWorkflow(),
		workspaceWorkflow(),
	}

	m := make(map[string]*workflow.Definition, len(defs))
	for _, def := range defs {
		m[def.Name] = def
	}
	return m
}

// architectureWorkflow documents a single repository: components, diagrams,
// data flows, and API surface, with an optional Pulumi-backed infrastructure
// phase when the MCP server is configured.
func architectureWorkflow() *workflow.Definition {
	return &workflow.Definition{
		Name:        "architecture",
		Description: "Repository architecture analysis and documentation",
		AgentIDs:    []string{"analyzer", "doc-writer"},
		Phases: []workflow.Phase{
			{
				Number:  1,
				Name:    "Component Inventory",
				AgentID: "analyzer",
				PromptTemplate: `Analyze the repository at {repo_root} and produce a complete component inventory:
1. Every package/module with its responsibility
2. Entry points and their roles
3. Key classes, functions, and data structures
4. Configuration surfaces and external integrations

Format the result as a markdown document with one section per component.`,
				Artifacts: []string{"docs/01_component_inventory.md"},
			},
			{
				Number:  2,
				Name:    "Architecture Diagrams",
				AgentID: "analyzer",
				PromptTemplate: `Create Mermaid architecture diagrams for the repository at {repo_root}:
1. A high-level component diagram showing major modules and their relationships
2. A layered view separating interface, domain, and infrastructure concerns

Build on the component inventory provided below.`,
				Artifacts:        []string{"diagrams/02_architecture_diagrams.md"},
				ContextArtifacts: []string{"docs/01_component_inventory.md"},
			},
			{
				Number:  3,
				Name:    "Data Flows",
				AgentID: "analyzer",
				PromptTemplate: `Document the data flows of the repository at {repo_root}:
1. How data enters the system (APIs, files, events)
2. How it is transformed and where state lives
3. Sequence diagrams (Mermaid) for the two or three most important flows`,
				Artifacts:        []string{"docs/03_data_flows.md"},
				ContextArtifacts: []string{"docs/01_component_inventory.md"},
			},
			{
				Number:  4,
				Name:    "API Reference",
				AgentID: "doc-writer",
				PromptTemplate: `Write an API reference for the repository at {repo_root}:
1. Public functions and methods with signatures and descriptions
2. Input/output types and error conditions
3. Usage examples for the main entry points`,
				Artifacts:        []string{"docs/04_api_reference.md"},
				ContextArtifacts: []string{"docs/01_component_inventory.md"},
			},
			{
				Number:  5,
				Name:    "Synthesis",
				AgentID: "doc-writer",
				PromptTemplate: `Create a synthesis README for the architecture documentation of {project_name}.
Summarize the system in two or three paragraphs, then index the documents
produced in the earlier phases with a one-line description each.`,
				Artifacts: []string{"README.md"},
				ContextArtifacts: []string{
					"docs/01_component_inventory.md",
					"diagrams/02_architecture_diagrams.md",
					"docs/03_data_flows.md",
					"docs/04_api_reference.md",
				},
			},
			{
				Number:  6,
				Name:    "Infrastructure Topology",
				AgentID: "analyzer",
				PromptTemplate: `Document the deployed infrastructure of {project_name} using the Pulumi MCP tools.
Use only read-only operations: get-stacks, resource-search, list-resources.
Produce:
1. A stack inventory with resource counts
2. A Mermaid deployment diagram of the cloud topology
3. Notable policy violations, if any`,
				Artifacts: []string{
					"docs/06_infrastructure_topology.md",
					"diagrams/06_infrastructure_diagram.md",
				},
				Optional:       true,
				RequiresServer: mcpservice.ServerPulumi,
			},
		},
	}
}

// uxWorkflow produces a design package: research, information architecture,
// visual design, prototypes, API contracts, and a design system.
func uxWorkflow() *workflow.Definition {
	return &workflow.Definition{
		Name:        "ux",
		Description: "UX research and design system generation",
		AgentIDs:    []string{"ux-researcher", "ui-designer", "interaction-designer", "design-system-architect"},
		Phases: []workflow.Phase{
			{
				Number:  1,
				Name:    "UX Research",
				AgentID: "ux-researcher",
				PromptTemplate: `Conduct UX research for {project_name}:
1. User personas with goals and pain points
2. Jobs-to-be-done for each persona
3. Key user journeys as Mermaid flowcharts`,
				Artifacts: []string{"research/user_research.md"},
			},
			{
				Number:  2,
				Name:    "Information Architecture",
				AgentID: "ux-researcher",
				PromptTemplate: `Based on the user research below, create the information architecture for {project_name}:
1. Site map / navigation hierarchy
2. Content inventory per screen
3. User flow diagrams for the primary tasks`,
				Artifacts:        []string{"ia/information_architecture.md"},
				ContextArtifacts: []string{"research/user_research.md"},
			},
			{
				Number:  3,
				Name:    "Visual Design",
				AgentID: "ui-designer",
				PromptTemplate: `Based on the information architecture below, create visual design specifications for {project_name}:
1. Color palette, typography, and spacing scale
2. Screen-by-screen layout descriptions
3. Component states and variants`,
				Artifacts:        []string{"design/visual_design.md"},
				ContextArtifacts: []string{"ia/information_architecture.md"},
			},
			{
				Number:  4,
				Name:    "Interactive Prototypes",
				AgentID: "interaction-designer",
				PromptTemplate: `Based on the visual designs below, specify interactive prototypes for {project_name}:
1. Interaction patterns per component (hover, focus, loading, error)
2. Transition and animation specifications
3. Responsive behavior breakpoints`,
				Artifacts:        []string{"prototypes/interactive_prototypes.md"},
				ContextArtifacts: []string{"design/visual_design.md"},
			},
			{
				Number:  5,
				Name:    "API Contract Design",
				AgentID: "interaction-designer",
				PromptTemplate: `Based on the prototypes below, define the API contracts the UI of {project_name} needs:
1. Endpoint list with methods and paths
2. Request/response schemas
3. Error responses and loading states per screen`,
				Artifacts:        []string{"api_contracts/api_specifications.md"},
				ContextArtifacts: []string{"prototypes/interactive_prototypes.md"},
			},
			{
				Number:  6,
				Name:    "Design System Documentation",
				AgentID: "design-system-architect",
				PromptTemplate: `Consolidate the design work below into a design system for {project_name}:
1. Design tokens (color, type, spacing) in a reference table
2. Component library documentation
3. Usage guidelines and accessibility notes`,
				Artifacts: []string{"design_system/design_system.md"},
				ContextArtifacts: []string{
					"design/visual_design.md",
					"prototypes/interactive_prototypes.md",
					"api_contracts/api_specifications.md",
				},
			},
		},
	}
}

// reviewWorkflow audits the artifacts of a prior documentation run instead
// of analyzing a repository directly.
func reviewWorkflow() *workflow.Definition {
	return &workflow.Definition{
		Name:             "review",
		Description:      "Accuracy audit and gap analysis of a prior documentation run",
		AgentIDs:         []string{"accuracy-auditor", "gap-analyst", "adr-compliance-checker", "strategy-advisor"},
		RequiresPriorRun: true,
		Phases: []workflow.Phase{
			{
				Number:  1,
				Name:    "Accuracy Audit",
				AgentID: "accuracy-auditor",
				PromptTemplate: `Audit the documentation from run {prior_run} against the source at {repo_root}.
For each factual claim, verify it and classify as VERIFIED, INACCURATE, or UNVERIFIABLE.
Produce a table of findings with file and line references.`,
				Artifacts: []string{"review/01_accuracy_audit.md"},
				ContextArtifacts: []string{
					"prior/docs/01_component_inventory.md",
					"prior/docs/03_data_flows.md",
					"prior/docs/04_api_reference.md",
				},
			},
			{
				Number:  2,
				Name:    "Gap Analysis",
				AgentID: "gap-analyst",
				PromptTemplate: `Find gaps between the documentation from run {prior_run} and the source at {repo_root}:
1. Public functionality documented but missing from source, or vice versa
2. Undocumented configuration and error behavior
3. A gap register with severity ratings`,
				Artifacts: []string{"review/02_gap_analysis.md"},
				ContextArtifacts: []string{
					"prior/docs/01_component_inventory.md",
					"prior/docs/04_api_reference.md",
				},
			},
			{
				Number:  3,
				Name:    "ADR Compliance",
				AgentID: "adr-compliance-checker",
				PromptTemplate: `Check the implementation at {repo_root} against its architecture decision records.
Produce a compliance matrix: one row per ADR, with status COMPLIANT, PARTIAL, or VIOLATED and supporting evidence.`,
				Artifacts: []string{"review/03_adr_compliance.md"},
			},
			{
				Number:  4,
				Name:    "Strategy Backlog",
				AgentID: "strategy-advisor",
				PromptTemplate: `From the audit findings below, produce a prioritized action backlog:
1. P0-P3 items with effort estimates
2. Rationale linking each item to a finding
3. Suggested sequencing`,
				Artifacts: []string{"review/04_strategy_backlog.md"},
				ContextArtifacts: []string{
					"review/01_accuracy_audit.md",
					"review/02_gap_analysis.md",
					"review/03_adr_compliance.md",
				},
			},
			{
				Number:  5,
				Name:    "Review Summary",
				AgentID: "strategy-advisor",
				PromptTemplate: `Write a review README with the overall verdict on the documentation quality of run {prior_run}.
Summarize the audit in one paragraph, then index the review documents with one line each.`,
				Artifacts: []string{"README.md"},
				ContextArtifacts: []string{
					"review/01_accuracy_audit.md",
					"review/02_gap_analysis.md",
					"review/03_adr_compliance.md",
					"review/04_strategy_backlog.md",
				},
			},
		},
	}
}

// workspaceWorkflow documents a multi-repository workspace, adding
// dependency mapping, migration tracking, and cross-repo synthesis on top of
// the single-repo analysis phases.
func workspaceWorkflow() *workflow.Definition {
	return &workflow.Definition{
		Name:        "workspace",
		Description: "Multi-repository workspace analysis and synthesis",
		AgentIDs:    []string{"workspace-analyzer", "dependency-mapper", "migration-tracker", "synthesis-writer"},
		Phases: []workflow.Phase{
			{
				Number:  1,
				Name:    "Component Inventory",
				AgentID: "workspace-analyzer",
				PromptTemplate: `Analyze the repository at {repo_root} within the workspace {workspace_root}.
Produce a complete component inventory: packages, entry points, key types, and integrations.`,
				Artifacts: []string{"docs/01_component_inventory.md"},
			},
			{
				Number:  2,
				Name:    "Architecture Diagrams",
				AgentID: "workspace-analyzer",
				PromptTemplate: `Create Mermaid architecture diagrams for {repo_root}, building on the component inventory below.`,
				Artifacts:        []string{"diagrams/02_architecture_diagrams.md"},
				ContextArtifacts: []string{"docs/01_component_inventory.md"},
			},
			{
				Number:  3,
				Name:    "Data Flows",
				AgentID: "workspace-analyzer",
				PromptTemplate: `Document the data flows of {repo_root}: inputs, transformations, state, and sequence diagrams for the main flows.`,
				Artifacts:        []string{"docs/03_data_flows.md"},
				ContextArtifacts: []string{"docs/01_component_inventory.md"},
			},
			{
				Number:  4,
				Name:    "API Reference",
				AgentID: "workspace-analyzer",
				PromptTemplate: `Write an API reference for {repo_root}: public surface, types, error conditions, and usage examples.`,
				Artifacts:        []string{"docs/04_api_reference.md"},
				ContextArtifacts: []string{"docs/01_component_inventory.md"},
			},
			{
				Number:  5,
				Name:    "Dependency Map",
				AgentID: "dependency-mapper",
				PromptTemplate: `Map the dependencies of {repo_root} on the other repositories in {workspace_root}:
1. Declared dependencies and integration patterns
2. Runtime coupling (APIs called, data shared)
3. A dependency table with direction and strength`,
				Artifacts: []string{"docs/05_dependency_map.md"},
			},
			{
				Number:  6,
				Name:    "Workspace Topology",
				AgentID: "dependency-mapper",
				PromptTemplate: `From the dependency map below, draw a Mermaid topology diagram of the workspace {workspace_root} with {repo_root} highlighted.`,
				Artifacts:        []string{"diagrams/06_workspace_topology.md"},
				ContextArtifacts: []string{"docs/05_dependency_map.md"},
			},
			{
				Number:  7,
				Name:    "Migration Status",
				AgentID: "migration-tracker",
				PromptTemplate: `Assess the migration status of {repo_root} within the program tracked in {workspace_root}:
1. Current wave and completion state
2. Blockers and at-risk items
3. Next migration steps`,
				Artifacts: []string{"docs/07_migration_status.md"},
			},
			{
				Number:  8,
				Name:    "Cross-Repo Synthesis",
				AgentID: "synthesis-writer",
				PromptTemplate: `Synthesize the analysis below into a cross-repository view of how {repo_root} fits into {workspace_root}: role, contracts, and shared concerns.`,
				Artifacts: []string{"docs/08_cross_repo_synthesis.md"},
				ContextArtifacts: []string{
					"docs/01_component_inventory.md",
					"docs/03_data_flows.md",
					"docs/05_dependency_map.md",
					"docs/07_migration_status.md",
				},
			},
			{
				Number:  9,
				Name:    "Optimization Recommendations",
				AgentID: "synthesis-writer",
				PromptTemplate: `From the analysis below, produce optimization recommendations for {repo_root}:
1. Quick wins with high impact
2. Structural improvements
3. Workspace-level consolidation opportunities`,
				Artifacts: []string{"docs/09_optimization_recommendations.md"},
				ContextArtifacts: []string{
					"docs/05_dependency_map.md",
					"docs/07_migration_status.md",
					"docs/08_cross_repo_synthesis.md",
				},
			},
			{
				Number:  10,
				Name:    "Final README",
				AgentID: "synthesis-writer",
				PromptTemplate: `Write a concise executive README for the workspace analysis of {repo_root}.
Open with the repository's role in the workspace, then index every document produced with a one-line description.`,
				Artifacts: []string{"README.md"},
				ContextArtifacts: []string{
					"docs/08_cross_repo_synthesis.md",
					"docs/09_optimization_recommendations.md",
				},
			},
		},
	}
}
