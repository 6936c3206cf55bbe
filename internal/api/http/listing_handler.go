package http

import (
	"net/http"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/service"
)

// CareerHandler serves the careers page and its back-office management.
type CareerHandler struct {
	careerSvc service.CareerService
}

func NewCareerHandler(careerSvc service.CareerService) *CareerHandler {
	return &CareerHandler{careerSvc: careerSvc}
}

// ListPublic only ever exposes active postings.
func (h *CareerHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.careerSvc.ListJobPostings(r.Context(), string(domain.ListingStatusActive), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
}

func (h *CareerHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.careerSvc.ListJobPostings(r.Context(), r.URL.Query().Get("status"), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
}

func (h *CareerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.careerSvc.GetJobPosting(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (h *CareerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var job domain.JobPosting
	if err := decodeJSON(r, &job); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.careerSvc.CreateJobPosting(r.Context(), &job); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, job)
}

func (h *CareerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var job domain.JobPosting
	if err := decodeJSON(r, &job); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	job.ID = id

	if err := h.careerSvc.UpdateJobPosting(r.Context(), &job); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (h *CareerHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req struct {
		Status domain.ListingStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.careerSvc.SetJobPostingStatus(r.Context(), id, req.Status); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *CareerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	if err := h.careerSvc.DeleteJobPosting(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// SafariHandler mirrors CareerHandler for safari packages.
type SafariHandler struct {
	safariSvc service.SafariService
}

func NewSafariHandler(safariSvc service.SafariService) *SafariHandler {
	return &SafariHandler{safariSvc: safariSvc}
}

func (h *SafariHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	packages, err := h.safariSvc.ListPackages(r.Context(), string(domain.ListingStatusActive), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"packages": packages})
}

func (h *SafariHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.safariSvc.ListPackages(r.Context(), r.URL.Query().Get("status"), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"packages": packages})
}

func (h *SafariHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid package id")
		return
	}

	pkg, err := h.safariSvc.GetPackage(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}

func (h *SafariHandler) Create(w http.ResponseWriter, r *http.Request) {
	var pkg domain.SafariPackage
	if err := decodeJSON(r, &pkg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.safariSvc.CreatePackage(r.Context(), &pkg); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, pkg)
}

func (h *SafariHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid package id")
		return
	}

	var pkg domain.SafariPackage
	if err := decodeJSON(r, &pkg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	pkg.ID = id

	if err := h.safariSvc.UpdatePackage(r.Context(), &pkg); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}

func (h *SafariHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid package id")
		return
	}

	var req struct {
		Status domain.ListingStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.safariSvc.SetPackageStatus(r.Context(), id, req.Status); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *SafariHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid package id")
		return
	}

	if err := h.safariSvc.DeletePackage(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
