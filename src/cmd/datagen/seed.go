package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"healthgraph/src/domain/entities"
	"healthgraph/src/repositories"
	"healthgraph/src/services/doctors"
	"healthgraph/src/services/events"
	"healthgraph/src/services/facilities"
	"healthgraph/src/services/insights"
	"healthgraph/src/services/patients"
	"healthgraph/src/services/treatments"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	specializations = []string{"Cardiology", "Dermatology", "Neurology", "Oncology", "Orthopedics", "Pediatrics", "Psychiatry"}
	treatmentTypes  = []string{"Physiotherapy", "Chemotherapy", "Dialysis", "Vaccination", "Counseling", "Radiotherapy", "Insulin therapy"}
	followUpActions = []string{"Return in two weeks", "Repeat blood work in a month", "Start home exercises", "Reduce salt intake", "Schedule imaging"}
)

type seedOptions struct {
	doctors     int
	patients    int
	facilities  int
	treatments  int
	concurrency int
}

type seeder struct {
	doctorService    *doctors.DoctorService
	patientService   *patients.PatientService
	facilityService  *facilities.FacilityService
	treatmentService *treatments.TreatmentService
	concurrency      int
}

func newSeedCmd() *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Creates fake doctors, patients, facilities and treatments and links them",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close(context.Background())

			logger := slog.Default()
			publisher := events.NewNoopPublisher(logger)

			doctorRepository := repositories.NewDoctorRepository(client)
			patientRepository := repositories.NewPatientRepository(client)
			facilityRepository := repositories.NewFacilityRepository(client)
			treatmentRepository := repositories.NewTreatmentRepository(client)

			s := &seeder{
				doctorService:   doctors.NewDoctorService(logger, doctorRepository, treatmentRepository, publisher),
				patientService:  patients.NewPatientService(logger, patientRepository, doctorRepository, publisher),
				facilityService: facilities.NewFacilityService(logger, facilityRepository, doctorRepository, treatmentRepository, publisher),
				treatmentService: treatments.NewTreatmentService(
					logger,
					treatmentRepository,
					patientRepository,
					doctorRepository,
					insights.NewOfflineGenerator(),
					publisher,
				),
				concurrency: opts.concurrency,
			}

			return s.seed(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.doctors, "doctors", 20, "number of doctors")
	cmd.Flags().IntVar(&opts.patients, "patients", 100, "number of patients")
	cmd.Flags().IntVar(&opts.facilities, "facilities", 5, "number of facilities")
	cmd.Flags().IntVar(&opts.treatments, "treatments", 200, "number of treatments given to patients")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 8, "maximum concurrent writes")

	return cmd
}

func (s *seeder) seed(ctx context.Context, opts seedOptions) error {
	start := time.Now()

	catalog, err := fanOut(ctx, s.concurrency, len(treatmentTypes), func(ctx context.Context, i int) (entities.AbstractTreatment, error) {
		return s.treatmentService.CreateAbstractTreatment(ctx, treatmentTypes[i])
	})
	if err != nil {
		return fmt.Errorf("failed to create treatment catalog: %w", err)
	}

	facilityList, err := fanOut(ctx, s.concurrency, opts.facilities, func(ctx context.Context, _ int) (entities.Facility, error) {
		return s.facilityService.CreateFacility(ctx, fakeFacility())
	})
	if err != nil {
		return fmt.Errorf("failed to create facilities: %w", err)
	}

	doctorList, err := fanOut(ctx, s.concurrency, opts.doctors, func(ctx context.Context, _ int) (entities.Doctor, error) {
		return s.doctorService.CreateDoctor(ctx, fakeDoctor())
	})
	if err != nil {
		return fmt.Errorf("failed to create doctors: %w", err)
	}

	patientList, err := fanOut(ctx, s.concurrency, opts.patients, func(ctx context.Context, _ int) (entities.Patient, error) {
		return s.patientService.CreatePatient(ctx, fakePatient())
	})
	if err != nil {
		return fmt.Errorf("failed to create patients: %w", err)
	}

	if len(facilityList) > 0 && len(catalog) > 0 {
		if err := s.link(ctx, catalog, facilityList, doctorList, patientList); err != nil {
			return err
		}
	}

	var given []entities.Treatment
	if len(patientList) > 0 && len(doctorList) > 0 {
		given, err = fanOut(ctx, s.concurrency, opts.treatments, func(ctx context.Context, _ int) (entities.Treatment, error) {
			return s.treatmentService.CreateTreatment(
				ctx,
				pick(patientList).ID,
				pick(doctorList).ID,
				pick(treatmentTypes),
				pick(followUpActions),
			)
		})
		if err != nil {
			return fmt.Errorf("failed to create treatments: %w", err)
		}
	}

	slog.Info("Graph seeded",
		"doctors", len(doctorList),
		"patients", len(patientList),
		"facilities", len(facilityList),
		"catalog_treatments", len(catalog),
		"treatments", len(given),
		"duration", time.Since(start))

	return nil
}

// link places every doctor and catalog treatment at a facility, gives every
// doctor one or two specialties and every patient a treating doctor.
func (s *seeder) link(
	ctx context.Context,
	catalog []entities.AbstractTreatment,
	facilityList []entities.Facility,
	doctorList []entities.Doctor,
	patientList []entities.Patient,
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, treatment := range catalog {
		g.Go(func() error {
			return s.facilityService.AssignTreatmentToFacility(ctx, treatment.ID, pick(facilityList).ID)
		})
	}

	for _, doctor := range doctorList {
		g.Go(func() error {
			if err := s.facilityService.AssignDoctorToFacility(ctx, doctor.ID, pick(facilityList).ID); err != nil {
				return err
			}
			for range 1 + rand.Intn(2) {
				if err := s.doctorService.AssignTreatmentToDoctor(ctx, doctor.ID, pick(catalog).ID); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if len(doctorList) > 0 {
		for _, patient := range patientList {
			g.Go(func() error {
				return s.patientService.AssignPatientToDoctor(ctx, patient.ID, pick(doctorList).ID)
			})
		}
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to link entities: %w", err)
	}
	return nil
}

// fanOut runs create n times with at most limit calls in flight and keeps the results in call order.
func fanOut[T any](ctx context.Context, limit int, n int, create func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i := range n {
		g.Go(func() error {
			created, err := create(ctx, i)
			if err != nil {
				return err
			}
			results[i] = created
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func pick[T any](items []T) T {
	return items[rand.Intn(len(items))]
}

func fakeDoctor() entities.Doctor {
	return entities.Doctor{
		FirstName:      faker.FirstName(),
		LastName:       faker.LastName(),
		StartYear:      fmt.Sprintf("%d", 1985+rand.Intn(40)),
		Gender:         pick(entities.Genders()),
		LicenseNumber:  "LIC-" + faker.UUIDDigit()[:8],
		Specialization: pick(specializations),
	}
}

func fakePatient() entities.Patient {
	dateOfBirth, err := time.Parse("2006-01-02", faker.Date())
	if err != nil {
		dateOfBirth = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return entities.Patient{
		FirstName:        faker.FirstName(),
		LastName:         faker.LastName(),
		DateOfBirth:      dateOfBirth,
		Gender:           pick(entities.Genders()),
		HealthCardNumber: "HC-" + faker.UUIDDigit()[:10],
	}
}

func fakeFacility() entities.Facility {
	services := make([]entities.ServiceType, 0, 3)
	for range 1 + rand.Intn(3) {
		services = append(services, pick(entities.ServiceTypes()))
	}

	contacts := []entities.ContactInfo{
		{Type: "phone", Value: faker.Phonenumber()},
		{Type: "email", Value: faker.Email()},
	}

	return entities.Facility{
		Name:            faker.GetRealAddress().City + " " + pick([]string{"General Hospital", "Clinic", "Medical Center"}),
		Type:            pick(entities.FacilityTypes()),
		Capacity:        10 + rand.Intn(490),
		ServicesOffered: services,
		Contacts:        contacts,
	}
}
