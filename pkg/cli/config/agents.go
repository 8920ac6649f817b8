package config

import (
	"github.com/urfave/cli/v3"

	"github.com/donbr/raven/pkg/repository/agents"
)

// Agents contains configuration for the agent descriptor registry
type Agents struct {
	Dir string
}

// Flags returns CLI flags for agent registry configuration
func (a *Agents) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "agents-dir",
			Sources:     cli.EnvVars("RAVEN_AGENTS_DIR"),
			Usage:       "Directory of agent descriptor JSON files (default: built-in agents)",
			Destination: &a.Dir,
		},
	}
}

// Configure builds the agent registry: descriptors from the configured
// directory, or the embedded default set when no directory is given
func (a *Agents) Configure() *agents.Registry {
	if a.Dir != "" {
		return agents.New(a.Dir)
	}
	return agents.NewDefault()
}
