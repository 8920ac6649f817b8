package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/model/mcp"
	"github.com/donbr/raven/pkg/domain/types/apperr"
)

const defaultPageLimit = 20

// listResponse is the uniform pagination envelope of every list endpoint
type listResponse struct {
	Items  any `json:"items"`
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// parsePage reads offset/limit query parameters with defaults
func parsePage(r *http.Request) (int, int, error) {
	offset := 0
	limit := defaultPageLimit

	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, goerr.New("offset must be a non-negative integer",
				goerr.T(apperr.ErrTagInvalidInput),
				goerr.V("offset", v))
		}
		offset = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, goerr.New("limit must be a non-negative integer",
				goerr.T(apperr.ErrTagInvalidInput),
				goerr.V("limit", v))
		}
		limit = n
	}

	return offset, limit, nil
}

func searchAgentsHandler(catalog interfaces.CatalogUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePage(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		results, total, err := catalog.SearchAgents(r.Context(), r.URL.Query().Get("q"), offset, limit)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, listResponse{
			Items:  results,
			Total:  total,
			Offset: offset,
			Limit:  limit,
		})
	}
}

func getAgentHandler(catalog interfaces.CatalogUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentID := chi.URLParam(r, "agent_id")

		a, err := catalog.GetAgent(r.Context(), agentID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, a)
	}
}

func searchServersHandler(catalog interfaces.CatalogUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePage(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		results, total, err := catalog.SearchServers(r.Context(), r.URL.Query().Get("q"), offset, limit)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, listResponse{
			Items:  results,
			Total:  total,
			Offset: offset,
			Limit:  limit,
		})
	}
}

func getServerHandler(catalog interfaces.CatalogUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		srv, err := catalog.GetServer(r.Context(), name)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, srv)
	}
}

// serverRequirementsResponse reports what a server needs before use.
// Servers without configuration return config_required=false and no
// requirements block.
type serverRequirementsResponse struct {
	Server         string            `json:"server"`
	ConfigRequired bool              `json:"config_required"`
	Requirements   *mcp.Requirements `json:"requirements,omitempty"`
}

func getServerRequirementsHandler(catalog interfaces.CatalogUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		reqs, err := catalog.GetServerRequirements(r.Context(), name)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, serverRequirementsResponse{
			Server:         name,
			ConfigRequired: reqs != nil,
			Requirements:   reqs,
		})
	}
}
