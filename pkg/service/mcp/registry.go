package mcp

import (
	"context"
	"os"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	mcpmodel "github.com/donbr/raven/pkg/domain/model/mcp"
	"github.com/donbr/raven/pkg/domain/types/apperr"
)

// Registry holds the known MCP server integrations and their runtime
// availability. Availability is derived from the environment (credentials
// present or not) and cached until Refresh is called.
type Registry struct {
	mu        sync.RWMutex
	servers   map[string]*mcpmodel.Server
	available map[string]bool
}

// New builds the registry from the built-in server table, validates every
// descriptor, and probes availability once.
func New(ctx context.Context) (*Registry, error) {
	r := &Registry{
		servers:   defaultServers(),
		available: make(map[string]bool),
	}

	for name, srv := range r.servers {
		if err := mcpmodel.ValidateServer(srv); err != nil {
			return nil, goerr.Wrap(err, "invalid MCP server definition",
				goerr.TV(apperr.ServerNameKey, name))
		}
	}

	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

// Refresh re-probes availability of every registered server concurrently
func (r *Registry) Refresh(ctx context.Context) error {
	r.mu.RLock()
	names := make([]string, 0, len(r.servers))
	for name := range r.servers {
		names = append(names, name)
	}
	r.mu.RUnlock()

	var resultMu sync.Mutex
	results := make(map[string]bool, len(names))

	eg, _ := errgroup.WithContext(ctx)
	for _, name := range names {
		eg.Go(func() error {
			ok := probeServer(name)
			resultMu.Lock()
			results[name] = ok
			resultMu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return goerr.Wrap(err, "failed to probe MCP servers")
	}

	r.mu.Lock()
	r.available = results
	r.mu.Unlock()

	return nil
}

// Servers returns all registered servers sorted by name
func (r *Registry) Servers() []*mcpmodel.Server {
	r.mu.RLock()
	defer r.mu.RUnlock()

	servers := make([]*mcpmodel.Server, 0, len(r.servers))
	for _, srv := range r.servers {
		servers = append(servers, srv)
	}
	sort.Slice(servers, func(i, j int) bool { return servers[i].Name < servers[j].Name })
	return servers
}

// GetServer retrieves a server descriptor by exact name
func (r *Registry) GetServer(name string) (*mcpmodel.Server, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	srv, exists := r.servers[name]
	if !exists {
		return nil, goerr.Wrap(apperr.ErrServerNotFound, "unknown MCP server",
			goerr.TV(apperr.ServerNameKey, name))
	}
	return srv, nil
}

// IsServerAvailable reports whether the named server can be used right now.
// Unknown servers are reported as unavailable rather than as an error so
// optional workflow phases can degrade without special-casing.
func (r *Registry) IsServerAvailable(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.available[name]
}

// ServerTools returns the allowed tool list for a server, or an empty list
// for unknown servers
func (r *Registry) ServerTools(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	srv, exists := r.servers[name]
	if !exists {
		return nil
	}
	return append([]string(nil), srv.Tools...)
}

// ValidateToolAvailability reports whether any available server exposes the
// given tool in its allowed set
func (r *Registry) ValidateToolAvailability(tool string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name, srv := range r.servers {
		if srv.HasTool(tool) && r.available[name] {
			return true
		}
	}
	return false
}

// ValidateTool checks a tool against a server's allowed and forbidden sets.
// A forbidden tool is always an error regardless of availability.
func (r *Registry) ValidateTool(serverName, tool string) error {
	srv, err := r.GetServer(serverName)
	if err != nil {
		return err
	}

	if srv.IsForbidden(tool) {
		return goerr.Wrap(apperr.ErrToolForbidden, "tool modifies external state and is blocked",
			goerr.TV(apperr.ServerNameKey, serverName),
			goerr.TV(apperr.ToolNameKey, tool))
	}
	if !srv.HasTool(tool) {
		return goerr.Wrap(apperr.ErrToolNotAllowed, "tool is not provided by this server",
			goerr.TV(apperr.ServerNameKey, serverName),
			goerr.TV(apperr.ToolNameKey, tool))
	}

	return nil
}

// GetRequirements returns the configuration requirements for a server.
// Servers that need no configuration return nil.
func (r *Registry) GetRequirements(name string) (*mcpmodel.Requirements, error) {
	srv, err := r.GetServer(name)
	if err != nil {
		return nil, err
	}

	if !srv.ConfigRequired {
		return nil, nil
	}
	reqs := srv.Requirements
	return &reqs, nil
}

// FallbackOptions returns manual alternatives for a tool when its server is
// unavailable. Servers are scanned in name order so the result is stable
// even if two servers register the same tool name.
func (r *Registry) FallbackOptions(tool string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.servers))
	for name := range r.servers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if alts, ok := r.servers[name].Fallbacks[tool]; ok {
			return append([]string(nil), alts...)
		}
	}
	return []string{"Manual implementation required"}
}

// probeServer derives availability from the environment. Servers that need
// credentials are available only when the credentials are set; the reasoning
// server needs nothing and is always on; the browser server needs a live
// browser session this process cannot verify, so it stays off.
func probeServer(name string) bool {
	switch name {
	case ServerFigma:
		return envSet("FIGMA_ACCESS_TOKEN")
	case ServerV0:
		return envSet("V0_API_KEY")
	case ServerPulumi:
		return envSet("PULUMI_ORG")
	case ServerSequentialThinking:
		return true
	case ServerPlaywright:
		return false
	default:
		return false
	}
}

func envSet(key string) bool {
	v, ok := os.LookupEnv(key)
	return ok && v != ""
}
