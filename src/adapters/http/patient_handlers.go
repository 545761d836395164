package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) GetPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := s.patientService.GetPatients(r.Context())
	if err != nil {
		s.writeError(w, r, err, "get patients")
		return
	}

	s.writeJSON(w, http.StatusOK, patients)
}

func (s *Server) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	patient, err := s.patientService.GetPatientByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get patient")
		return
	}

	s.writeJSON(w, http.StatusOK, patient)
}

func (s *Server) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var request PatientRequest
	if !s.decodeRequest(w, r, &request) {
		return
	}

	patient, err := s.patientService.CreatePatient(r.Context(), request.ToEntity(""))
	if err != nil {
		s.writeError(w, r, err, "create patient")
		return
	}

	s.writeJSON(w, http.StatusCreated, patient)
}

func (s *Server) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	request := PatientRequest{partial: true}
	if !s.decodeRequest(w, r, &request) {
		return
	}

	if _, err := s.patientService.UpdatePatient(r.Context(), request.ToEntity(chi.URLParam(r, "id"))); err != nil {
		s.writeError(w, r, err, "update patient")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeletePatient(w http.ResponseWriter, r *http.Request) {
	if err := s.patientService.DeletePatient(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err, "delete patient")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetNetworkByPatientID serves the patient's two-hop neighborhood as nodes and edges.
func (s *Server) GetNetworkByPatientID(w http.ResponseWriter, r *http.Request) {
	network, err := s.patientService.GetNetworkByPatientID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get patient network")
		return
	}

	s.writeJSON(w, http.StatusOK, MapNetworkToResponse(network))
}

func (s *Server) AssignPatientToDoctor(w http.ResponseWriter, r *http.Request) {
	err := s.patientService.AssignPatientToDoctor(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "doctorId"))
	if err != nil {
		s.writeError(w, r, err, "assign patient to doctor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetTreatmentsByPatientID(w http.ResponseWriter, r *http.Request) {
	treatments, err := s.treatmentService.GetTreatmentsByPatientID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get treatments of patient")
		return
	}

	s.writeJSON(w, http.StatusOK, treatments)
}

func (s *Server) GetLatestHealthSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.treatmentService.GetLatestHealthSnapshot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get latest health snapshot")
		return
	}

	s.writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) GetHealthSnapshotTimeline(w http.ResponseWriter, r *http.Request) {
	snapshots, err := s.treatmentService.GetHealthSnapshotTimeline(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "get health snapshot timeline")
		return
	}

	s.writeJSON(w, http.StatusOK, snapshots)
}
