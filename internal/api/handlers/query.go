package handlers

import (
	"net/http"

	"github.com/YahelOmesi/Variable-Elimination/internal/batch"
	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"github.com/YahelOmesi/Variable-Elimination/internal/service"
)

type QueryHandler struct {
	svc *service.InferenceService
}

func NewQueryHandler(svc *service.InferenceService) *QueryHandler {
	return &QueryHandler{svc: svc}
}

type queryRequest struct {
	Query string `json:"query" validate:"required"`
}

type batchRequest struct {
	Queries []string `json:"queries" validate:"required,min=1,max=1000,dive,required"`
}

type batchLine struct {
	Query  string `json:"query"`
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// Query answers one query. A query-level failure still returns the
// recorded run alongside the error.
func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	id, err := networkID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid network id")
		return
	}

	var req queryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	run, err := h.svc.Query(r.Context(), id, req.Query)
	if err != nil {
		if run != nil && domain.IsQueryError(err) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error(), "run": run})
			return
		}
		writeServiceError(w, err, "failed to answer query")
		return
	}

	writeJSON(w, http.StatusOK, run)
}

func (h *QueryHandler) Batch(w http.ResponseWriter, r *http.Request) {
	id, err := networkID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid network id")
		return
	}

	var req batchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcomes, err := h.svc.Batch(r.Context(), id, req.Queries)
	if err != nil {
		writeServiceError(w, err, "failed to evaluate batch")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": batchLines(outcomes)})
}

func (h *QueryHandler) Compare(w http.ResponseWriter, r *http.Request) {
	id, err := networkID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid network id")
		return
	}

	var req batchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cmp, err := h.svc.Compare(r.Context(), id, req.Queries)
	if err != nil {
		writeServiceError(w, err, "failed to compare algorithms")
		return
	}

	writeJSON(w, http.StatusOK, cmp)
}

func (h *QueryHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := networkID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid network id")
		return
	}

	runs, err := h.svc.History(r.Context(), id, limitParam(r))
	if err != nil {
		writeServiceError(w, err, "failed to list runs")
		return
	}
	if runs == nil {
		runs = []domain.Run{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func batchLines(outcomes []batch.Outcome) []batchLine {
	lines := make([]batchLine, len(outcomes))
	for i, o := range outcomes {
		lines[i] = batchLine{Query: o.Line, Output: o.Output()}
		if o.Err != nil {
			lines[i].Error = o.Err.Error()
		}
	}
	return lines
}
