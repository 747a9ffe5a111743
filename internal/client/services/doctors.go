package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/logging"
)

type doctorAPI interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	CreateDoctor(ctx context.Context, token string, d models.Doctor) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, token, id string) error
	SearchDoctors(ctx context.Context, name string) ([]models.Doctor, error)
	FilterDoctors(ctx context.Context, specialty, slot string) ([]models.Doctor, error)
	AppointmentsByDoctor(ctx context.Context, token, doctorID string) ([]models.Appointment, error)
}

type DoctorService struct {
	api doctorAPI
	log logging.Logger
}

func NewDoctorService(api doctorAPI, log logging.Logger) *DoctorService {
	return &DoctorService{api: api, log: log}
}

func (s *DoctorService) All(ctx context.Context) []models.Doctor {
	ds, err := s.api.ListDoctors(ctx)
	if err != nil {
		logDegraded(ctx, s.log, "list doctors", err)
		return []models.Doctor{}
	}
	return orEmpty(ds)
}

// Get returns nil when the doctor cannot be fetched.
func (s *DoctorService) Get(ctx context.Context, id string) *models.Doctor {
	d, err := s.api.GetDoctor(ctx, id)
	if err != nil {
		logDegraded(ctx, s.log, "get doctor", err)
		return nil
	}
	return d
}

func (s *DoctorService) Create(ctx context.Context, token string, d models.Doctor) (*models.Doctor, error) {
	created, err := s.api.CreateDoctor(ctx, token, d)
	if err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return created, nil
}

// Delete reports whether the server accepted the deletion. Failures are
// logged, not returned; the caller only needs the outcome.
func (s *DoctorService) Delete(ctx context.Context, token, id string) bool {
	if err := s.api.DeleteDoctor(ctx, token, id); err != nil {
		s.log.Warn(ctx, "delete doctor failed", "id", id, "error", err)
		return false
	}
	return true
}

func (s *DoctorService) Search(ctx context.Context, name string) []models.Doctor {
	ds, err := s.api.SearchDoctors(ctx, name)
	if err != nil {
		logDegraded(ctx, s.log, "search doctors", err)
		return []models.Doctor{}
	}
	return orEmpty(ds)
}

func (s *DoctorService) Filter(ctx context.Context, specialty, slot string) []models.Doctor {
	ds, err := s.api.FilterDoctors(ctx, specialty, slot)
	if err != nil {
		logDegraded(ctx, s.log, "filter doctors", err)
		return []models.Doctor{}
	}
	return orEmpty(ds)
}

// Appointments lists the doctor's own appointments.
func (s *DoctorService) Appointments(ctx context.Context, token, doctorID string) []models.Appointment {
	as, err := s.api.AppointmentsByDoctor(ctx, token, doctorID)
	if err != nil {
		logDegraded(ctx, s.log, "doctor appointments", err)
		return []models.Appointment{}
	}
	return orEmpty(as)
}
