package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	mcpservice "github.com/donbr/raven/pkg/service/mcp"
)

func cmdMCP() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Inspect MCP server integrations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List registered MCP servers and their availability",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					registry, err := mcpservice.New(ctx)
					if err != nil {
						return err
					}

					bold := color.New(color.Bold)
					green := color.New(color.FgGreen)
					yellow := color.New(color.FgYellow)

					for _, srv := range registry.Servers() {
						bold.Printf("%s", srv.Name)
						fmt.Printf("  [%s]", srv.SafetyLevel)
						if registry.IsServerAvailable(srv.Name) {
							green.Println("  available")
						} else {
							yellow.Println("  unavailable")
						}
						fmt.Printf("    %s\n", srv.Description)
					}
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Show one MCP server definition",
				ArgsUsage: "<name>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return goerr.New("server name is required")
					}

					registry, err := mcpservice.New(ctx)
					if err != nil {
						return err
					}
					srv, err := registry.GetServer(name)
					if err != nil {
						return err
					}

					bold := color.New(color.Bold)
					bold.Printf("%s\n", srv.Name)
					fmt.Printf("Description:  %s\n", srv.Description)
					fmt.Printf("Safety level: %s\n", srv.SafetyLevel)
					fmt.Printf("Available:    %t\n", registry.IsServerAvailable(srv.Name))
					fmt.Printf("Tools:        %s\n", strings.Join(srv.Tools, ", "))
					if len(srv.ForbiddenTools) > 0 {
						color.New(color.FgRed).Printf("Forbidden:    %s\n", strings.Join(srv.ForbiddenTools, ", "))
					}
					return nil
				},
			},
			{
				Name:      "requirements",
				Usage:     "Show setup requirements of an MCP server",
				ArgsUsage: "<name>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return goerr.New("server name is required")
					}

					registry, err := mcpservice.New(ctx)
					if err != nil {
						return err
					}
					reqs, err := registry.GetRequirements(name)
					if err != nil {
						return err
					}
					if reqs == nil {
						fmt.Printf("%s needs no configuration\n", name)
						return nil
					}

					if len(reqs.RequiredEnv) > 0 {
						fmt.Printf("Required env: %s\n", strings.Join(reqs.RequiredEnv, ", "))
					}
					if len(reqs.OptionalEnv) > 0 {
						fmt.Printf("Optional env: %s\n", strings.Join(reqs.OptionalEnv, ", "))
					}
					if reqs.SetupInstructions != "" {
						fmt.Printf("Setup:        %s\n", reqs.SetupInstructions)
					}
					return nil
				},
			},
		},
	}
}
