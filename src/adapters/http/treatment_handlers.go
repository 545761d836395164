package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) GetTreatmentByID(w http.ResponseWriter, r *http.Request) {
	treatment, err := s.treatmentService.GetTreatmentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get treatment")
		return
	}

	s.writeJSON(w, http.StatusOK, treatment)
}

// CreateTreatment generates the health snapshot synchronously, so it is the
// slowest route when an LLM is configured.
func (s *Server) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	var request CreateTreatmentRequest
	if !s.decodeRequest(w, r, &request) {
		return
	}

	treatment, err := s.treatmentService.CreateTreatment(
		r.Context(),
		request.PatientID,
		request.DoctorID,
		request.Type,
		request.FollowUpAction,
	)
	if err != nil {
		s.writeError(w, r, err, "create treatment")
		return
	}

	s.writeJSON(w, http.StatusCreated, treatment)
}

func (s *Server) GetAbstractTreatmentByID(w http.ResponseWriter, r *http.Request) {
	treatment, err := s.treatmentService.GetAbstractTreatmentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get abstract treatment")
		return
	}

	s.writeJSON(w, http.StatusOK, treatment)
}

func (s *Server) CreateAbstractTreatment(w http.ResponseWriter, r *http.Request) {
	var request CreateAbstractTreatmentRequest
	if !s.decodeRequest(w, r, &request) {
		return
	}

	treatment, err := s.treatmentService.CreateAbstractTreatment(r.Context(), request.Type)
	if err != nil {
		s.writeError(w, r, err, "create abstract treatment")
		return
	}

	s.writeJSON(w, http.StatusCreated, treatment)
}
