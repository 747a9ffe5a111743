package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/common"
)

// Login exchanges credentials for a token. A 2xx answer without a token is
// reported as ErrUnavailable, not as an *Error.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", req, &resp); err != nil {
		return models.LoginResponse{}, err
	}
	if resp.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("POST /auth/login: %w: response carries no token", common.ErrUnavailable)
	}
	return resp, nil
}

func (c *Client) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	err := c.do(ctx, http.MethodGet, "/doctors", nil, "", nil, &out)
	return out, err
}

func (c *Client) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	var out models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors/"+seg(id), nil, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDoctor requires an admin token.
func (c *Client) CreateDoctor(ctx context.Context, token string, d models.Doctor) (*models.Doctor, error) {
	var out models.Doctor
	if err := c.do(ctx, http.MethodPost, "/doctors", nil, token, d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDoctor requires an admin token.
func (c *Client) DeleteDoctor(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/doctors/"+seg(id), nil, token, nil, nil)
}

func (c *Client) SearchDoctors(ctx context.Context, name string) ([]models.Doctor, error) {
	var out []models.Doctor
	err := c.do(ctx, http.MethodGet, "/doctors/search", url.Values{"name": {name}}, "", nil, &out)
	return out, err
}

// FilterDoctors picks the endpoint by which criteria are set: both go to
// /doctors/filter, specialty alone to /doctors/specialty/{specialty}, and
// neither (or only a slot) lists every doctor.
func (c *Client) FilterDoctors(ctx context.Context, specialty, slot string) ([]models.Doctor, error) {
	var out []models.Doctor
	var err error
	switch {
	case specialty != "" && slot != "":
		q := url.Values{"specialty": {specialty}, "timeSlot": {slot}}
		err = c.do(ctx, http.MethodGet, "/doctors/filter", q, "", nil, &out)
	case specialty != "":
		err = c.do(ctx, http.MethodGet, "/doctors/specialty/"+seg(specialty), nil, "", nil, &out)
	default:
		err = c.do(ctx, http.MethodGet, "/doctors", nil, "", nil, &out)
	}
	return out, err
}

func (c *Client) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var out []models.Patient
	err := c.do(ctx, http.MethodGet, "/patients", nil, "", nil, &out)
	return out, err
}

func (c *Client) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	var out models.Patient
	if err := c.do(ctx, http.MethodGet, "/patients/"+seg(id), nil, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, token string, a models.Appointment) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments", nil, token, a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AppointmentsByPatient(ctx context.Context, token, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	err := c.do(ctx, http.MethodGet, "/appointments/patient/"+seg(patientID), nil, token, nil, &out)
	return out, err
}

func (c *Client) AppointmentsByDoctor(ctx context.Context, token, doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	err := c.do(ctx, http.MethodGet, "/appointments/doctor/"+seg(doctorID), nil, token, nil, &out)
	return out, err
}

func (c *Client) PrescriptionsByPatient(ctx context.Context, token, patientID string) ([]models.Prescription, error) {
	var out []models.Prescription
	err := c.do(ctx, http.MethodGet, "/prescriptions/patient/"+seg(patientID), nil, token, nil, &out)
	return out, err
}
