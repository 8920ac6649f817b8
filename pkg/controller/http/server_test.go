package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/donbr/raven/pkg/controller/http"
	"github.com/donbr/raven/pkg/domain/model/workflow"
	"github.com/donbr/raven/pkg/domain/types"
	"github.com/donbr/raven/pkg/repository/agents"
	memrepo "github.com/donbr/raven/pkg/repository/database/memory"
	mcpservice "github.com/donbr/raven/pkg/service/mcp"
	"github.com/donbr/raven/pkg/usecase"
)

type envelope struct {
	Items  json.RawMessage `json:"items"`
	Total  int             `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Hint    string `json:"hint"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*httpctrl.Server, *memrepo.Client) {
	t.Helper()

	registry, err := mcpservice.New(context.Background())
	gt.NoError(t, err).Required()

	runs := memrepo.New()
	uc := usecase.New(
		usecase.WithAgentRegistry(agents.NewDefault()),
		usecase.WithMCPRegistry(registry),
		usecase.WithRunRepository(runs),
	)

	return httpctrl.New(
		httpctrl.WithWorkflowUseCases(uc),
		httpctrl.WithCatalogUseCases(uc),
	), runs
}

func doRequest(t *testing.T, server *httpctrl.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, "/health")
	gt.Equal(t, rec.Code, http.StatusOK)
	gt.Equal(t, rec.Body.String(), "OK")
}

func TestServer_SearchAgents(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/agents?q=analyzer&limit=10")
	gt.Equal(t, rec.Code, http.StatusOK)

	var resp envelope
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.True(t, resp.Total >= 2)
	gt.Equal(t, resp.Limit, 10)
	gt.Equal(t, resp.Offset, 0)

	var items []struct {
		Agent struct {
			AgentID string `json:"agent_id"`
		} `json:"agent"`
		Score float64 `json:"score"`
	}
	gt.NoError(t, json.Unmarshal(resp.Items, &items)).Required()
	gt.Equal(t, items[0].Agent.AgentID, "analyzer")
	gt.Equal(t, items[0].Score, 1.0)
}

func TestServer_SearchAgents_InvalidPagination(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/agents?offset=-1")
	gt.Equal(t, rec.Code, http.StatusBadRequest)

	var resp apiError
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Equal(t, resp.Error.Code, "invalid_input")
}

func TestServer_GetAgent(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/agents/gap-analyst")
	gt.Equal(t, rec.Code, http.StatusOK)

	var a struct {
		AgentID string `json:"agent_id"`
		Domain  string `json:"domain"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a)).Required()
	gt.Equal(t, a.AgentID, "gap-analyst")
	gt.Equal(t, a.Domain, "review")
}

func TestServer_GetAgent_NotFound(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/agents/gap")
	gt.Equal(t, rec.Code, http.StatusNotFound)

	var resp apiError
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Equal(t, resp.Error.Code, "agent_not_found")

	// The hint points at the fuzzy search endpoint
	gt.S(t, resp.Error.Hint).Contains("search")
}

func TestServer_SearchServers(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/mcp/servers?q=pulumi")
	gt.Equal(t, rec.Code, http.StatusOK)

	var resp envelope
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Equal(t, resp.Total, 1)
}

func TestServer_GetServerRequirements(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/mcp/servers/figma/requirements")
	gt.Equal(t, rec.Code, http.StatusOK)

	var resp struct {
		Server         string `json:"server"`
		ConfigRequired bool   `json:"config_required"`
		Requirements   *struct {
			RequiredEnv []string `json:"required_env"`
		} `json:"requirements"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Equal(t, resp.Server, "figma")
	gt.True(t, resp.ConfigRequired)
	gt.V(t, resp.Requirements).NotNil()
	gt.Equal(t, resp.Requirements.RequiredEnv[0], "FIGMA_ACCESS_TOKEN")

	rec = doRequest(t, server, "/api/v1/mcp/servers/playwright/requirements")
	gt.Equal(t, rec.Code, http.StatusOK)
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.False(t, resp.ConfigRequired)
}

func TestServer_GetServer_NotFound(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/mcp/servers/vercel")
	gt.Equal(t, rec.Code, http.StatusNotFound)

	var resp apiError
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Equal(t, resp.Error.Code, "server_not_found")
}

func TestServer_ListWorkflows(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/workflows")
	gt.Equal(t, rec.Code, http.StatusOK)

	var resp envelope
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Equal(t, resp.Total, 4)
}

func TestServer_Runs(t *testing.T) {
	ctx := context.Background()
	server, runs := newTestServer(t)

	run := &workflow.Run{
		ID:           types.NewRunID(ctx),
		Workflow:     "architecture",
		OutputPrefix: workflow.NewOutputPrefix("architecture", time.Now()),
		Status:       workflow.RunStatusCompleted,
		StartedAt:    time.Now(),
	}
	gt.NoError(t, runs.PutRun(ctx, run)).Required()

	rec := doRequest(t, server, "/api/v1/runs")
	gt.Equal(t, rec.Code, http.StatusOK)
	var resp envelope
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Equal(t, resp.Total, 1)

	rec = doRequest(t, server, "/api/v1/runs/"+run.ID.String())
	gt.Equal(t, rec.Code, http.StatusOK)

	t.Run("invalid run id", func(t *testing.T) {
		rec := doRequest(t, server, "/api/v1/runs/not-a-uuid")
		gt.Equal(t, rec.Code, http.StatusBadRequest)
		var resp apiError
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Equal(t, resp.Error.Code, "invalid_format")
	})

	t.Run("unknown run id", func(t *testing.T) {
		rec := doRequest(t, server, "/api/v1/runs/"+types.NewRunID(ctx).String())
		gt.Equal(t, rec.Code, http.StatusNotFound)
		var resp apiError
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Equal(t, resp.Error.Code, "run_not_found")
	})
}
