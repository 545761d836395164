package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) GetFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := s.facilityService.GetFacilities(r.Context())
	if err != nil {
		s.writeError(w, r, err, "get facilities")
		return
	}

	s.writeJSON(w, http.StatusOK, facilities)
}

func (s *Server) GetFacilityByID(w http.ResponseWriter, r *http.Request) {
	facility, err := s.facilityService.GetFacilityByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get facility")
		return
	}

	s.writeJSON(w, http.StatusOK, facility)
}

func (s *Server) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var request FacilityRequest
	if !s.decodeRequest(w, r, &request) {
		return
	}

	facility, err := s.facilityService.CreateFacility(r.Context(), request.ToEntity(""))
	if err != nil {
		s.writeError(w, r, err, "create facility")
		return
	}

	s.writeJSON(w, http.StatusCreated, facility)
}

func (s *Server) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	request := FacilityRequest{partial: true}
	if !s.decodeRequest(w, r, &request) {
		return
	}

	if _, err := s.facilityService.UpdateFacility(r.Context(), request.ToEntity(chi.URLParam(r, "id"))); err != nil {
		s.writeError(w, r, err, "update facility")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	if err := s.facilityService.DeleteFacility(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err, "delete facility")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetDoctorsByFacilityID(w http.ResponseWriter, r *http.Request) {
	doctors, err := s.facilityService.GetDoctorsByFacilityID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get doctors of facility")
		return
	}

	s.writeJSON(w, http.StatusOK, doctors)
}

func (s *Server) GetTreatmentsByFacilityID(w http.ResponseWriter, r *http.Request) {
	treatments, err := s.facilityService.GetTreatmentsByFacilityID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get treatments of facility")
		return
	}

	s.writeJSON(w, http.StatusOK, treatments)
}

func (s *Server) AssignDoctorToFacility(w http.ResponseWriter, r *http.Request) {
	err := s.facilityService.AssignDoctorToFacility(r.Context(), chi.URLParam(r, "doctorId"), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "assign doctor to facility")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) AssignTreatmentToFacility(w http.ResponseWriter, r *http.Request) {
	err := s.facilityService.AssignTreatmentToFacility(r.Context(), chi.URLParam(r, "treatmentId"), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "assign treatment to facility")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
