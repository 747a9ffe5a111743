package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/logging"
)

type patientAPI interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	CreateAppointment(ctx context.Context, token string, a models.Appointment) (*models.Appointment, error)
	AppointmentsByPatient(ctx context.Context, token, patientID string) ([]models.Appointment, error)
	PrescriptionsByPatient(ctx context.Context, token, patientID string) ([]models.Prescription, error)
}

type PatientService struct {
	api patientAPI
	log logging.Logger
}

func NewPatientService(api patientAPI, log logging.Logger) *PatientService {
	return &PatientService{api: api, log: log}
}

func (s *PatientService) All(ctx context.Context) []models.Patient {
	ps, err := s.api.ListPatients(ctx)
	if err != nil {
		logDegraded(ctx, s.log, "list patients", err)
		return []models.Patient{}
	}
	return orEmpty(ps)
}

func (s *PatientService) Get(ctx context.Context, id string) *models.Patient {
	p, err := s.api.GetPatient(ctx, id)
	if err != nil {
		logDegraded(ctx, s.log, "get patient", err)
		return nil
	}
	return p
}

func (s *PatientService) Appointments(ctx context.Context, token, patientID string) []models.Appointment {
	as, err := s.api.AppointmentsByPatient(ctx, token, patientID)
	if err != nil {
		logDegraded(ctx, s.log, "patient appointments", err)
		return []models.Appointment{}
	}
	return orEmpty(as)
}

// BookAppointment posts a new appointment. The payload is sent as given;
// the caller fills duration, status and patient id.
func (s *PatientService) BookAppointment(ctx context.Context, token string, a models.Appointment) (*models.Appointment, error) {
	created, err := s.api.CreateAppointment(ctx, token, a)
	if err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}
	return created, nil
}

func (s *PatientService) Prescriptions(ctx context.Context, token, patientID string) []models.Prescription {
	ps, err := s.api.PrescriptionsByPatient(ctx, token, patientID)
	if err != nil {
		logDegraded(ctx, s.log, "patient prescriptions", err)
		return []models.Prescription{}
	}
	return orEmpty(ps)
}
