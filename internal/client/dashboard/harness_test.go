package dashboard

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/clinicdesk/internal/client/api"
	"github.com/dmitrijs2005/clinicdesk/internal/client/api/apitest"
	"github.com/dmitrijs2005/clinicdesk/internal/client/services"
	"github.com/dmitrijs2005/clinicdesk/internal/client/session"
	"github.com/dmitrijs2005/clinicdesk/internal/client/storage"
	"github.com/dmitrijs2005/clinicdesk/internal/client/view"
	"github.com/dmitrijs2005/clinicdesk/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	alerts   []string
	confirms []string
	answer   bool
}

func (u *fakeUI) Alert(msg string) { u.alerts = append(u.alerts, msg) }

func (u *fakeUI) Confirm(msg string) bool {
	u.confirms = append(u.confirms, msg)
	return u.answer
}

type harness struct {
	srv   *apitest.Server
	store *session.Store
	auth  *services.AuthService
	ui    *fakeUI
	deps  Deps
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()
	srv := apitest.New(t)

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.Discard()
	client := api.New(srv.URL())
	store := session.NewStore(db)
	auth := services.NewAuthService(client, store, log)
	ui := &fakeUI{answer: true}

	return &harness{
		srv:   srv,
		store: store,
		auth:  auth,
		ui:    ui,
		deps: Deps{
			Doctors:  services.NewDoctorService(client, log),
			Patients: services.NewPatientService(client, log),
			Sessions: auth,
			UI:       ui,
			Theme:    view.Plain(),
			Log:      log,
		},
	}
}

// open logs in as u and opens the resulting dashboard with a clean request
// log.
func (h *harness) open(t *testing.T, u apitest.User) Page {
	t.Helper()
	ctx := context.Background()
	res := NewLogin(h.auth, logging.Discard()).Submit(ctx, u.Username, u.Password, u.Role)
	require.Empty(t, res.Message)
	p, err := Open(ctx, res.Route, h.deps)
	require.NoError(t, err)
	return p
}

func (h *harness) requestsTo(method, path string) int {
	n := 0
	for _, r := range h.srv.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}
