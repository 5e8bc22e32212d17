package handlers

import (
	"net/http"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"github.com/YahelOmesi/Variable-Elimination/internal/service"
)

type NetworkHandler struct {
	svc *service.NetworkService
}

func NewNetworkHandler(svc *service.NetworkService) *NetworkHandler {
	return &NetworkHandler{svc: svc}
}

type createNetworkRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Format string `json:"format" validate:"required,netformat"`
	Source string `json:"source" validate:"required"`
}

func (h *NetworkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNetworkRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.svc.Create(r.Context(), req.Name, domain.NetworkFormat(req.Format), req.Source)
	if err != nil {
		writeServiceError(w, err, "failed to create network")
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *NetworkHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context(), limitParam(r))
	if err != nil {
		writeServiceError(w, err, "failed to list networks")
		return
	}
	if recs == nil {
		recs = []domain.NetworkRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"networks": recs})
}

func (h *NetworkHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := networkID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid network id")
		return
	}

	rec, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to get network")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *NetworkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := networkID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid network id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "failed to delete network")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
