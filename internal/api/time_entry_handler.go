package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"timesheet/internal/domain"
	"timesheet/internal/errors"
	"timesheet/internal/services"
)

// TimeEntryHandler serves the /time-entries routes.
type TimeEntryHandler struct {
	service services.TimeEntryService
	log     *slog.Logger
}

// NewTimeEntryHandler creates a new TimeEntryHandler.
func NewTimeEntryHandler(service services.TimeEntryService, log *slog.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{service: service, log: log}
}

// Register mounts the handler's routes on the mux.
func (h *TimeEntryHandler) Register(mux *http.ServeMux, instrument Instrumenter) {
	handle(mux, instrument, "GET /time-entries", h.list)
	handle(mux, instrument, "GET /time-entries/{id}", h.get)
	handle(mux, instrument, "POST /time-entries", h.create)
	handle(mux, instrument, "PUT /time-entries/{id}", h.update)
	handle(mux, instrument, "DELETE /time-entries/{id}", h.delete)
}

func (h *TimeEntryHandler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEntryFilter(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	views, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, NewTimeEntryResponses(views))
}

func (h *TimeEntryHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, NewTimeEntryResponse(*view))
}

func (h *TimeEntryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req TimeEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.log, err)
		return
	}

	view, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/time-entries/%d", view.Entry.ID))
	writeJSON(w, http.StatusCreated, NewTimeEntryResponse(*view))
}

func (h *TimeEntryHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	var req TimeEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.log, err)
		return
	}

	view, err := h.service.Update(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, NewTimeEntryResponse(*view))
}

func (h *TimeEntryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseEntryFilter reads the optional query parameters for the list route.
func parseEntryFilter(r *http.Request) (domain.EntryFilter, error) {
	var filter domain.EntryFilter
	q := r.URL.Query()

	if v := q.Get("employeeId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, errors.NewInvalidInputError("employeeId", "must be an integer")
		}
		filter.EmployeeID = &id
	}
	if v := q.Get("projectId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, errors.NewInvalidInputError("projectId", "must be an integer")
		}
		filter.ProjectID = &id
	}
	if v := q.Get("startDate"); v != "" {
		date, err := domain.ParseDate(v)
		if err != nil {
			return filter, errors.NewInvalidInputError("startDate", "must be an ISO date (YYYY-MM-DD)")
		}
		filter.StartDate = &date
	}
	if v := q.Get("endDate"); v != "" {
		date, err := domain.ParseDate(v)
		if err != nil {
			return filter, errors.NewInvalidInputError("endDate", "must be an ISO date (YYYY-MM-DD)")
		}
		filter.EndDate = &date
	}

	return filter, nil
}
