package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

// Server is the HTTP API over the healthcare graph.
type Server struct {
	logger           *slog.Logger
	server           *http.Server
	router           chi.Router
	port             int
	doctorService    DoctorService
	patientService   PatientService
	facilityService  FacilityService
	treatmentService TreatmentService
	healthChecker    HealthChecker
}

func NewServer(
	logger *slog.Logger,
	port int,
	doctorService DoctorService,
	patientService PatientService,
	facilityService FacilityService,
	treatmentService TreatmentService,
	healthChecker HealthChecker,
) *Server {
	server := &Server{
		router:           chi.NewRouter(),
		port:             port,
		logger:           logger,
		doctorService:    doctorService,
		patientService:   patientService,
		facilityService:  facilityService,
		treatmentService: treatmentService,
		healthChecker:    healthChecker,
	}

	server.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      server.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	server.routes()

	return server
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(requestTimeout))

	s.router.Get("/healthz", s.Health)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/doctors", func(r chi.Router) {
			r.Get("/", s.GetDoctors)
			r.Post("/", s.CreateDoctor)
			r.Get("/{id}", s.GetDoctorByID)
			r.Put("/{id}", s.UpdateDoctor)
			r.Delete("/{id}", s.DeleteDoctor)
			r.Get("/{id}/patients", s.GetPatientsByDoctorID)
			r.Get("/{id}/treatments", s.GetTreatmentsByDoctorID)
			r.Post("/{id}/treatments/{treatmentId}", s.AssignTreatmentToDoctor)
		})

		r.Route("/patients", func(r chi.Router) {
			r.Get("/", s.GetPatients)
			r.Post("/", s.CreatePatient)
			r.Get("/{id}", s.GetPatientByID)
			r.Put("/{id}", s.UpdatePatient)
			r.Delete("/{id}", s.DeletePatient)
			r.Get("/{id}/network", s.GetNetworkByPatientID)
			r.Get("/{id}/treatments", s.GetTreatmentsByPatientID)
			r.Get("/{id}/healthstate/latest", s.GetLatestHealthSnapshot)
			r.Get("/{id}/healthstate/timeline", s.GetHealthSnapshotTimeline)
			r.Post("/{id}/doctors/{doctorId}", s.AssignPatientToDoctor)
		})

		r.Route("/facilities", func(r chi.Router) {
			r.Get("/", s.GetFacilities)
			r.Post("/", s.CreateFacility)
			r.Get("/{id}", s.GetFacilityByID)
			r.Put("/{id}", s.UpdateFacility)
			r.Delete("/{id}", s.DeleteFacility)
			r.Get("/{id}/doctors", s.GetDoctorsByFacilityID)
			r.Get("/{id}/treatments", s.GetTreatmentsByFacilityID)
			r.Post("/{id}/doctors/{doctorId}", s.AssignDoctorToFacility)
			r.Post("/{id}/treatments/{treatmentId}", s.AssignTreatmentToFacility)
		})

		r.Route("/treatments", func(r chi.Router) {
			r.Post("/", s.CreateTreatment)
			r.Get("/{id}", s.GetTreatmentByID)
		})

		r.Route("/abstracttreatments", func(r chi.Router) {
			r.Post("/", s.CreateAbstractTreatment)
			r.Get("/{id}", s.GetAbstractTreatmentByID)
		})
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("Server started", "port", s.port)

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("Request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
