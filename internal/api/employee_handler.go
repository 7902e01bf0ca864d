package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"timesheet/internal/services"
)

// EmployeeHandler serves the /employees routes.
type EmployeeHandler struct {
	service services.EmployeeService
	log     *slog.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service services.EmployeeService, log *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: service, log: log}
}

// Register mounts the handler's routes on the mux.
func (h *EmployeeHandler) Register(mux *http.ServeMux, instrument Instrumenter) {
	handle(mux, instrument, "GET /employees", h.list)
	handle(mux, instrument, "GET /employees/{id}", h.get)
	handle(mux, instrument, "POST /employees", h.create)
	handle(mux, instrument, "PUT /employees/{id}", h.update)
}

func (h *EmployeeHandler) list(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, NewEmployeeResponses(employees))
}

func (h *EmployeeHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	employee, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, NewEmployeeResponse(*employee))
}

func (h *EmployeeHandler) create(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.log, err)
		return
	}

	employee, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/employees/%d", employee.ID))
	writeJSON(w, http.StatusCreated, NewEmployeeResponse(*employee))
}

func (h *EmployeeHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	var req EmployeeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.log, err)
		return
	}

	employee, err := h.service.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, NewEmployeeResponse(*employee))
}
