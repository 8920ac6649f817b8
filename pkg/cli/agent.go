package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/donbr/raven/pkg/cli/config"
)

func cmdAgent() *cli.Command {
	var agentsCfg config.Agents
	var domain string

	listFlags := append(agentsCfg.Flags(),
		&cli.StringFlag{
			Name:        "domain",
			Aliases:     []string{"d"},
			Usage:       "Filter agents by domain (architecture, ux, review, workspace)",
			Destination: &domain,
		},
	)

	return &cli.Command{
		Name:    "agent",
		Aliases: []string{"a"},
		Usage:   "Inspect registered agents",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List registered agents",
				Flags: listFlags,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					registry := agentsCfg.Configure()
					all, err := registry.ListAgents(ctx, domain)
					if err != nil {
						return err
					}

					bold := color.New(color.Bold)
					for _, a := range all {
						bold.Printf("%s", a.AgentID)
						fmt.Printf("  (%s, %s/%s)\n", a.Domain, a.Provider, a.Model)
						if a.Description != "" {
							fmt.Printf("    %s\n", a.Description)
						}
					}
					fmt.Printf("\n%d agents\n", len(all))
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Show one agent definition",
				ArgsUsage: "<agent_id>",
				Flags:     agentsCfg.Flags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					agentID := cmd.Args().First()
					if agentID == "" {
						return goerr.New("agent ID is required")
					}

					registry := agentsCfg.Configure()
					a, err := registry.GetAgent(ctx, agentID)
					if err != nil {
						return err
					}

					bold := color.New(color.Bold)
					bold.Printf("%s (v%s)\n", a.AgentID, a.Version)
					fmt.Printf("Name:        %s\n", a.Name)
					fmt.Printf("Domain:      %s\n", a.Domain)
					fmt.Printf("Provider:    %s\n", a.Provider)
					fmt.Printf("Model:       %s\n", a.Model)
					if len(a.Tools) > 0 {
						fmt.Printf("Tools:       %s\n", strings.Join(a.Tools, ", "))
					}
					if a.Description != "" {
						fmt.Printf("Description: %s\n", a.Description)
					}
					fmt.Printf("\n%s\n", a.Prompt)
					return nil
				},
			},
		},
	}
}
