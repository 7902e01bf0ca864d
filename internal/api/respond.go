package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"timesheet/internal/errors"
)

// errorResponse is the JSON body for every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError translates an error into a status code and response body at the
// boundary. Client errors carry their message; storage faults are masked and
// logged.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	if errors.ShouldLog(err) {
		log.Error("request failed", slog.Any("error", err))
	}

	code := "unknown"
	if appErr, ok := errors.AsAppError(err); ok {
		code = appErr.Type.String()
	}

	writeJSON(w, errors.HTTPStatus(err), errorResponse{
		Error: errors.UserMessage(err),
		Code:  code,
	})
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", "must be an integer")
	}
	return id, nil
}

// decodeBody decodes a JSON request body, mapping failures to the
// malformed-request tier.
func decodeBody(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return errors.NewInvalidInputError("body", err.Error())
	}
	return nil
}
