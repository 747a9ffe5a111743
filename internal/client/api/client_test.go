package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/clinicdesk/internal/client/api/apitest"
	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*Client, *apitest.Server) {
	t.Helper()
	srv := apitest.New(t)
	return New(srv.URL(), WithTimeout(5*time.Second)), srv
}

func TestLogin_OK(t *testing.T) {
	c, srv := newClient(t)
	resp, err := c.Login(context.Background(), models.LoginRequest{
		Username: apitest.Admin.Username, Password: apitest.Admin.Password, Role: "ADMIN",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ADMIN", resp.Role)
	assert.Equal(t, models.ID("1"), resp.UserID)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Empty(t, reqs[0].Authorization, "login is not authenticated")
	_, err = uuid.Parse(reqs[0].RequestID)
	assert.NoError(t, err, "every request carries a uuid request id")
}

func TestLogin_Rejected_CarriesBody(t *testing.T) {
	c, _ := newClient(t)
	_, err := c.Login(context.Background(), models.LoginRequest{Username: "x", Password: "y", Role: "ADMIN"})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Error())
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLogin_NoToken(t *testing.T) {
	for name, body := range map[string]string{"empty body": "", "empty object": "{}"} {
		t.Run(name, func(t *testing.T) {
			c, srv := newClient(t)
			srv.Fail("POST /auth/login", http.StatusOK, body)

			_, err := c.Login(context.Background(), models.LoginRequest{Username: "a", Password: "b", Role: "ADMIN"})
			require.ErrorIs(t, err, common.ErrUnavailable)
			var apiErr *Error
			assert.False(t, errors.As(err, &apiErr))
		})
	}
}

func TestTransportError_WrapsUnavailable(t *testing.T) {
	c, srv := newClient(t)
	srv.Close()

	_, err := c.ListDoctors(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
	var apiErr *Error
	assert.NotErrorAs(t, err, &apiErr)
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "boom", (&Error{StatusCode: 500, Body: "boom\n"}).Error())
	assert.Equal(t, "502 Bad Gateway", (&Error{StatusCode: 502}).Error())
}

func TestError_Unwrap(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusUnauthorized, common.ErrUnauthorized},
		{http.StatusForbidden, common.ErrUnauthorized},
		{http.StatusNotFound, common.ErrNotFound},
		{http.StatusBadRequest, common.ErrValidation},
		{http.StatusUnprocessableEntity, common.ErrValidation},
		{http.StatusServiceUnavailable, common.ErrUnavailable},
		{http.StatusConflict, nil},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, (&Error{StatusCode: tt.code}).Unwrap())
		})
	}
}

func TestDoctorReads(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	all, err := c.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(apitest.Doctors()))

	d, err := c.GetDoctor(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, "Lisa Cuddy", d.Name)

	_, err = c.GetDoctor(ctx, "999")
	assert.ErrorIs(t, err, common.ErrNotFound)

	found, err := c.SearchDoctors(ctx, "hou")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Gregory House", found[0].Name)
}

func TestFilterDoctors_EndpointShapes(t *testing.T) {
	tests := []struct {
		name      string
		specialty string
		slot      string
		wantPath  string
		wantQuery string
	}{
		{"both", "Diagnostics", "09:00-10:00", "/doctors/filter", "specialty=Diagnostics&timeSlot=09%3A00-10%3A00"},
		{"specialty only", "Oncology", "", "/doctors/specialty/Oncology", ""},
		{"neither", "", "", "/doctors", ""},
		{"slot only", "", "10:00-11:00", "/doctors", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newClient(t)
			_, err := c.FilterDoctors(context.Background(), tt.specialty, tt.slot)
			require.NoError(t, err)
			reqs := srv.Requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, tt.wantPath, reqs[0].Path)
			assert.Equal(t, tt.wantQuery, reqs[0].Query)
		})
	}
}

func TestCreateAndDeleteDoctor_SendBearer(t *testing.T) {
	c, srv := newClient(t)
	ctx := context.Background()
	token := srv.Token("ADMIN", 1, time.Hour)

	created, err := c.CreateDoctor(ctx, token, models.Doctor{
		Name: "Allison Cameron", Specialty: "Immunology", Username: "cameron", Password: "pw",
		AvailableTimes: []string{}, IsActive: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Password)

	require.NoError(t, c.DeleteDoctor(ctx, token, created.ID.String()))

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	for _, r := range reqs {
		assert.Equal(t, "Bearer "+token, r.Authorization)
	}

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(reqs[0].Body), &sent))
	assert.Equal(t, "pw", sent["password"])
	assert.Equal(t, true, sent["isActive"])
	assert.Equal(t, []any{}, sent["availableTimes"])
}

func TestCreateDoctor_RequiresAdmin(t *testing.T) {
	c, srv := newClient(t)
	_, err := c.CreateDoctor(context.Background(), srv.Token("PATIENT", 21, time.Hour), models.Doctor{Name: "X"})
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, "Access denied", err.Error())
}

func TestPatientReads(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	ps, err := c.ListPatients(ctx)
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	p, err := c.GetPatient(ctx, "21")
	require.NoError(t, err)
	assert.Equal(t, "O+", p.BloodGroup)
}

func TestAppointmentsAndPrescriptions(t *testing.T) {
	c, srv := newClient(t)
	ctx := context.Background()
	token := srv.Token("PATIENT", 21, time.Hour)

	created, err := c.CreateAppointment(ctx, token, models.Appointment{
		DoctorID: "12", PatientID: "21", AppointmentDateTime: "2025-06-01T10:00",
		DurationMinutes: models.DefaultAppointmentMinutes, Status: models.StatusScheduled,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lisa Cuddy", created.DoctorName)

	mine, err := c.AppointmentsByPatient(ctx, token, "21")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	docs, err := c.AppointmentsByDoctor(ctx, srv.Token("DOCTOR", 11, time.Hour), "11")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	rx, err := c.PrescriptionsByPatient(ctx, token, "21")
	require.NoError(t, err)
	require.Len(t, rx, 1)
	assert.Len(t, rx[0].Medications, 2)

	_, err = c.PrescriptionsByPatient(ctx, "", "21")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestForcedFailure(t *testing.T) {
	c, srv := newClient(t)
	srv.Fail("GET /doctors", http.StatusInternalServerError, "db down")

	_, err := c.ListDoctors(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "db down", apiErr.Body)
	assert.Equal(t, "/doctors", apiErr.Path)
	assert.NotEmpty(t, apiErr.RequestID)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}
