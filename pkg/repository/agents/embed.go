package agents

import "embed"

//go:embed defaults
var defaultAgentsFS embed.FS
