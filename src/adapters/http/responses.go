package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"healthgraph/src/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details validation.Errors `json:"details,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to write JSON response", "error", err)
	}
}

// writeError maps service errors onto status codes. Anything that is neither a
// missing entity nor a validation failure is logged and hidden from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrEntityNotFound):
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrValidation):
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		s.logger.Error("Request failed",
			"action", action,
			"path", r.URL.Path,
			"error", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: domain.ErrUnavailableServer.Error()})
	}
}

// decodeRequest reads the JSON body into request and validates it. It writes
// the 400 response itself and returns false when the request is unusable.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, request validation.Validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return false
	}

	if err := request.Validate(); err != nil {
		var details validation.Errors
		if errors.As(err, &details) {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: domain.ErrValidation.Error(), Details: details})
			return false
		}
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}

	return true
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.healthChecker.HealthCheck(r.Context()); err != nil {
		s.logger.Error("Health check failed", "error", err)
		s.writeJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
		return
	}

	s.writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
