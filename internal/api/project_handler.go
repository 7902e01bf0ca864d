package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"timesheet/internal/services"
)

// ProjectHandler serves the /projects routes.
type ProjectHandler struct {
	service services.ProjectService
	log     *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service services.ProjectService, log *slog.Logger) *ProjectHandler {
	return &ProjectHandler{service: service, log: log}
}

// Register mounts the handler's routes on the mux.
func (h *ProjectHandler) Register(mux *http.ServeMux, instrument Instrumenter) {
	handle(mux, instrument, "GET /projects", h.list)
	handle(mux, instrument, "GET /projects/{id}", h.get)
	handle(mux, instrument, "POST /projects", h.create)
	handle(mux, instrument, "PUT /projects/{id}", h.update)
}

func (h *ProjectHandler) list(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, NewProjectResponses(projects))
}

func (h *ProjectHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	project, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, NewProjectResponse(*project))
}

func (h *ProjectHandler) create(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.log, err)
		return
	}

	project, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/projects/%d", project.ID))
	writeJSON(w, http.StatusCreated, NewProjectResponse(*project))
}

func (h *ProjectHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	var req ProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.log, err)
		return
	}

	project, err := h.service.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, NewProjectResponse(*project))
}
