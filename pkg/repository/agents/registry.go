package agents

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/model/agent"
	"github.com/donbr/raven/pkg/domain/types/apperr"
)

// Registry loads agent definitions from JSON descriptors laid out as
// <root>/<domain>/<agent_id>.json. Directories whose name starts with "_"
// are skipped so template or disabled sets can live next to active ones.
// Definitions are cached after the first discovery.
type Registry struct {
	fsys fs.FS

	mu     sync.RWMutex
	agents map[string]*agent.Agent
	loaded bool
}

// New creates a registry over a directory of agent descriptors
func New(dir string) *Registry {
	return &Registry{fsys: os.DirFS(dir)}
}

// NewWithFS creates a registry over an arbitrary filesystem. Used for the
// embedded default agent set and for tests.
func NewWithFS(fsys fs.FS) *Registry {
	return &Registry{fsys: fsys}
}

// NewDefault creates a registry over the embedded default agent set
func NewDefault() *Registry {
	sub, err := fs.Sub(defaultAgentsFS, "defaults")
	if err != nil {
		// The embedded tree is fixed at build time, so this cannot fail
		panic(err)
	}
	return &Registry{fsys: sub}
}

// GetAgent returns the agent with the exact ID
func (r *Registry) GetAgent(ctx context.Context, agentID string) (*agent.Agent, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.agents[agentID]
	if !ok {
		return nil, goerr.Wrap(apperr.ErrAgentNotFound, "agent not registered",
			goerr.TV(apperr.AgentIDKey, agentID))
	}
	return a, nil
}

// ListAgents returns all agents sorted by ID, optionally filtered by domain
func (r *Registry) ListAgents(ctx context.Context, domain string) ([]*agent.Agent, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*agent.Agent
	for _, a := range r.agents {
		if domain != "" && a.Domain != domain {
			continue
		}
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AgentID < result[j].AgentID })

	return result, nil
}

// Reload discards the cache and re-discovers descriptors
func (r *Registry) Reload(ctx context.Context) error {
	r.mu.Lock()
	r.loaded = false
	r.agents = nil
	r.mu.Unlock()

	return r.ensureLoaded(ctx)
}

func (r *Registry) ensureLoaded(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return nil
	}

	agents := make(map[string]*agent.Agent)

	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return goerr.Wrap(err, "failed to read agents directory")
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), "_") {
			continue
		}
		if err := r.loadDomain(ctx, agents, entry.Name()); err != nil {
			return err
		}
	}

	r.agents = agents
	r.loaded = true

	ctxlog.From(ctx).Debug("agent registry loaded", "agents", len(agents))
	return nil
}

func (r *Registry) loadDomain(ctx context.Context, agents map[string]*agent.Agent, domain string) error {
	files, err := fs.ReadDir(r.fsys, domain)
	if err != nil {
		return goerr.Wrap(err, "failed to read agent domain directory",
			goerr.TV(apperr.DomainKey, domain))
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		data, err := fs.ReadFile(r.fsys, path.Join(domain, f.Name()))
		if err != nil {
			return goerr.Wrap(err, "failed to read agent descriptor",
				goerr.TV(apperr.DomainKey, domain),
				goerr.V("file", f.Name()))
		}

		var a agent.Agent
		if err := json.Unmarshal(data, &a); err != nil {
			return goerr.Wrap(err, "failed to parse agent descriptor",
				goerr.T(apperr.ErrTagInvalidFormat),
				goerr.V("file", path.Join(domain, f.Name())))
		}

		if a.AgentID == "" {
			a.AgentID = strings.TrimSuffix(f.Name(), ".json")
		}
		if a.Domain == "" {
			a.Domain = domain
		}
		a.ApplyDefaults()

		if err := agent.ValidateAgent(&a); err != nil {
			return goerr.Wrap(err, "invalid agent descriptor",
				goerr.V("file", path.Join(domain, f.Name())))
		}

		if _, exists := agents[a.AgentID]; exists {
			return goerr.Wrap(agent.ErrAgentAlreadyExists, "duplicate agent ID",
				goerr.TV(apperr.AgentIDKey, a.AgentID))
		}
		agents[a.AgentID] = &a
	}

	return nil
}

// Ensure Registry implements AgentRegistry interface
var _ interfaces.AgentRegistry = (*Registry)(nil)
