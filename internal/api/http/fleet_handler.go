package http

import (
	"net/http"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/service"
)

type FleetHandler struct {
	fleetSvc service.FleetService
}

func NewFleetHandler(fleetSvc service.FleetService) *FleetHandler {
	return &FleetHandler{fleetSvc: fleetSvc}
}

func (h *FleetHandler) CreateModel(w http.ResponseWriter, r *http.Request) {
	var model domain.Model
	if err := decodeJSON(r, &model); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.fleetSvc.CreateModel(r.Context(), &model); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, model)
}

func (h *FleetHandler) UpdateModel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid model id")
		return
	}

	var model domain.Model
	if err := decodeJSON(r, &model); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	model.ID = id

	if err := h.fleetSvc.UpdateModel(r.Context(), &model); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, model)
}

func (h *FleetHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.fleetSvc.ListModels(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"models": models})
}

func (h *FleetHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var unit domain.Unit
	if err := decodeJSON(r, &unit); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.fleetSvc.CreateUnit(r.Context(), &unit); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, unit)
}

func (h *FleetHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid unit id")
		return
	}

	unit, err := h.fleetSvc.GetUnit(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *FleetHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid unit id")
		return
	}

	var unit domain.Unit
	if err := decodeJSON(r, &unit); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	unit.ID = id

	if err := h.fleetSvc.UpdateUnit(r.Context(), &unit); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *FleetHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.fleetSvc.ListUnits(r.Context(), r.URL.Query().Get("status"), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"units": units, "count": len(units)})
}
