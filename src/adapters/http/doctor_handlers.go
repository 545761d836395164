package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := s.doctorService.GetDoctors(r.Context())
	if err != nil {
		s.writeError(w, r, err, "get doctors")
		return
	}

	s.writeJSON(w, http.StatusOK, doctors)
}

func (s *Server) GetDoctorByID(w http.ResponseWriter, r *http.Request) {
	doctor, err := s.doctorService.GetDoctorByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get doctor")
		return
	}

	s.writeJSON(w, http.StatusOK, doctor)
}

func (s *Server) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var request DoctorRequest
	if !s.decodeRequest(w, r, &request) {
		return
	}

	doctor, err := s.doctorService.CreateDoctor(r.Context(), request.ToEntity(""))
	if err != nil {
		s.writeError(w, r, err, "create doctor")
		return
	}

	s.writeJSON(w, http.StatusCreated, doctor)
}

func (s *Server) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	request := DoctorRequest{partial: true}
	if !s.decodeRequest(w, r, &request) {
		return
	}

	if _, err := s.doctorService.UpdateDoctor(r.Context(), request.ToEntity(chi.URLParam(r, "id"))); err != nil {
		s.writeError(w, r, err, "update doctor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	if err := s.doctorService.DeleteDoctor(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err, "delete doctor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetPatientsByDoctorID(w http.ResponseWriter, r *http.Request) {
	patients, err := s.doctorService.GetPatientsByDoctorID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get patients of doctor")
		return
	}

	s.writeJSON(w, http.StatusOK, patients)
}

func (s *Server) GetTreatmentsByDoctorID(w http.ResponseWriter, r *http.Request) {
	treatments, err := s.doctorService.GetTreatmentsByDoctorID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get treatments of doctor")
		return
	}

	s.writeJSON(w, http.StatusOK, treatments)
}

func (s *Server) AssignTreatmentToDoctor(w http.ResponseWriter, r *http.Request) {
	err := s.doctorService.AssignTreatmentToDoctor(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "treatmentId"))
	if err != nil {
		s.writeError(w, r, err, "assign treatment to doctor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
