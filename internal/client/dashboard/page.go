package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/api"
	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/client/session"
	"github.com/dmitrijs2005/clinicdesk/internal/client/view"
	"github.com/dmitrijs2005/clinicdesk/internal/common"
	"github.com/dmitrijs2005/clinicdesk/internal/logging"
)

// UI is the blocking acknowledgment/confirmation surface.
type UI interface {
	Alert(msg string)
	Confirm(msg string) bool
}

type Doctors interface {
	All(ctx context.Context) []models.Doctor
	Get(ctx context.Context, id string) *models.Doctor
	Create(ctx context.Context, token string, d models.Doctor) (*models.Doctor, error)
	Delete(ctx context.Context, token, id string) bool
	Appointments(ctx context.Context, token, doctorID string) []models.Appointment
}

type Patients interface {
	All(ctx context.Context) []models.Patient
	Get(ctx context.Context, id string) *models.Patient
	Appointments(ctx context.Context, token, patientID string) []models.Appointment
	BookAppointment(ctx context.Context, token string, a models.Appointment) (*models.Appointment, error)
	Prescriptions(ctx context.Context, token, patientID string) []models.Prescription
}

type Sessions interface {
	session.Loader
	Logout(ctx context.Context) error
}

// Deps are shared by every page.
type Deps struct {
	Doctors  Doctors
	Patients Patients
	Sessions Sessions
	UI       UI
	Theme    *view.Theme
	Log      logging.Logger
}

// Page is an open dashboard.
type Page interface {
	Role() models.Role
	Nav() *Nav
	Dialogs() *view.Dialogs
	// Handle applies cmd and returns the route to navigate to, or "" to stay.
	Handle(ctx context.Context, cmd Command) (string, error)
	View() string
}

// Open guards route and, when the persisted session may see it, builds the
// page and loads its default section. A guard failure is returned before
// any API call; the caller redirects to models.LoginRoute.
func Open(ctx context.Context, route string, deps Deps) (Page, error) {
	role, ok := routeRole(route)
	if !ok {
		return nil, fmt.Errorf("route %q: %w", route, common.ErrNotFound)
	}
	sess, err := session.Require(ctx, deps.Sessions, role)
	if err != nil {
		return nil, err
	}

	var p interface {
		Page
		initialize(ctx context.Context)
	}
	switch role {
	case models.RoleAdmin:
		p = newAdmin(deps, sess)
	case models.RoleDoctor:
		p = newDoctor(deps, sess)
	default:
		p = newPatient(deps, sess)
	}
	p.initialize(ctx)
	return p, nil
}

// routeRole reads "/<role>Dashboard/<token>".
func routeRole(route string) (models.Role, bool) {
	parts := strings.SplitN(strings.TrimPrefix(route, "/"), "/", 2)
	return models.RoleForDashboard(parts[0])
}

// base carries what all dashboards share: the session, navigation, dialogs
// and the rendered body of the active section.
type base struct {
	deps    Deps
	sess    models.Session
	nav     *Nav
	dialogs *view.Dialogs
	body    string
}

func (b *base) Role() models.Role { return b.sess.Role }

func (b *base) Nav() *Nav { return b.nav }

func (b *base) Dialogs() *view.Dialogs { return b.dialogs }

func (b *base) theme() *view.Theme { return b.deps.Theme }

func (b *base) log() logging.Logger { return b.deps.Log }

func (b *base) View() string {
	var sb strings.Builder
	sb.WriteString(view.Header(b.theme(), b.sess))
	sb.WriteString(view.NavBar(b.theme(), b.nav.Sections(), b.nav.Active()))
	sb.WriteString("\n")
	sb.WriteString(b.body)
	return sb.String()
}

// handleShared handles commands every dashboard understands. handled is false
// when cmd is page-specific.
func (b *base) handleShared(ctx context.Context, cmd Command) (route string, handled bool, err error) {
	switch cmd.(type) {
	case Logout:
		if err := b.deps.Sessions.Logout(ctx); err != nil {
			return "", true, err
		}
		return models.LoginRoute, true, nil
	case CloseDialog:
		if id, ok := b.dialogs.Active(); ok {
			b.dialogs.CloseControl(id)
		}
		return "", true, nil
	case DismissDialog:
		if id, ok := b.dialogs.Active(); ok {
			b.dialogs.Dismiss(id)
		}
		return "", true, nil
	}
	return "", false, nil
}

func (b *base) unsupported(cmd Command) error {
	return fmt.Errorf("%T on the %s dashboard: %w", cmd, strings.ToLower(string(b.sess.Role)), common.ErrUnsupported)
}

// errorText is the human-readable part of a write failure: the server's
// body text when there is one.
func errorText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}
