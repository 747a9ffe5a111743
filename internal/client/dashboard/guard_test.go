package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/clinicdesk/internal/client/api/apitest"
	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_NoSession_NoRequests(t *testing.T) {
	h := newHarness(t)
	for _, route := range []string{"/adminDashboard/x", "/doctorDashboard/x", "/patientDashboard/x"} {
		_, err := Open(context.Background(), route, h.deps)
		require.ErrorIs(t, err, common.ErrNoSession, route)
	}
	assert.Empty(t, h.srv.Requests())
}

func TestOpen_WrongRole(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.store.Save(ctx, models.Session{
		Token: h.srv.Token("PATIENT", 21, time.Hour), Role: models.RolePatient, UserID: "21", Username: "jane",
	}))

	_, err := Open(ctx, "/adminDashboard/whatever", h.deps)
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Empty(t, h.srv.Requests())
}

func TestOpen_ExpiredToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.store.Save(ctx, models.Session{
		Token: h.srv.Token("ADMIN", 1, -time.Minute), Role: models.RoleAdmin, UserID: "1", Username: "admin",
	}))

	_, err := Open(ctx, "/adminDashboard/x", h.deps)
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestOpen_UnknownRoute(t *testing.T) {
	h := newHarness(t)
	_, err := Open(context.Background(), "/nurseDashboard/x", h.deps)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestLogout_ClearsSession(t *testing.T) {
	h := newHarness(t)
	p := h.open(t, apitest.Patient)

	route, err := p.Handle(context.Background(), Logout{})
	require.NoError(t, err)
	assert.Equal(t, models.LoginRoute, route)

	sess, err := h.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, sess)
}
