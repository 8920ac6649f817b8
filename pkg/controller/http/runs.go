package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/types"
	"github.com/donbr/raven/pkg/domain/types/apperr"
)

func listWorkflowsHandler(workflows interfaces.WorkflowUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := workflows.ListWorkflows(r.Context())

		respondJSON(w, r, http.StatusOK, listResponse{
			Items:  defs,
			Total:  len(defs),
			Offset: 0,
			Limit:  len(defs),
		})
	}
}

func listRunsHandler(workflows interfaces.WorkflowUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePage(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		runs, total, err := workflows.ListRuns(r.Context(), offset, limit)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, listResponse{
			Items:  runs,
			Total:  total,
			Offset: offset,
			Limit:  limit,
		})
	}
}

func getRunHandler(workflows interfaces.WorkflowUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RunID(chi.URLParam(r, "run_id"))
		if !id.IsValid() {
			handleError(w, r, goerr.New("invalid run ID format",
				goerr.T(apperr.ErrTagInvalidFormat),
				goerr.TV(apperr.RunIDKey, id)))
			return
		}

		run, err := workflows.GetRun(r.Context(), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, run)
	}
}
