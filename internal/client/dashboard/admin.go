package dashboard

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/client/view"
	"github.com/dmitrijs2005/clinicdesk/internal/common"
)

const (
	SectionDoctors       = "doctors"
	SectionPatients      = "patients"
	SectionAppointments  = "appointments"
	SectionReports       = "reports"
	SectionPrescriptions = "prescriptions"
	SectionProfile       = "profile"

	DialogAddDoctor = "addDoctor"
	DialogBooking   = "booking"
)

const (
	MsgDoctorAdded        = "Doctor added successfully!"
	MsgDoctorAddFailed    = "Error adding doctor: "
	MsgConfirmDelete      = "Are you sure you want to delete this doctor?"
	MsgDoctorDeleted      = "Doctor deleted successfully!"
	MsgDoctorDeleteFailed = "Failed to delete doctor"

	placeholderAdminAppointments = "Loading appointments..."
)

type Admin struct {
	base
	doctors  []models.Doctor
	patients []models.Patient
	filter   DoctorFilter
	form     DoctorForm
	stats    view.Stats
}

func newAdmin(deps Deps, sess models.Session) *Admin {
	return &Admin{base: base{
		deps:    deps,
		sess:    sess,
		nav:     NewNav(SectionDoctors, SectionPatients, SectionAppointments, SectionReports),
		dialogs: view.NewDialogs(DialogAddDoctor),
	}}
}

func (a *Admin) initialize(ctx context.Context) {
	a.loadDoctors(ctx)
	a.loadStatistics(ctx)
}

// Filter is the current doctor filter.
func (a *Admin) Filter() DoctorFilter { return a.filter }

// Form is the add-doctor dialog state.
func (a *Admin) Form() DoctorForm { return a.form }

func (a *Admin) Handle(ctx context.Context, cmd Command) (string, error) {
	if route, ok, err := a.handleShared(ctx, cmd); ok {
		return route, err
	}

	switch c := cmd.(type) {
	case SwitchSection:
		if err := a.nav.Switch(c.Section); err != nil {
			return "", err
		}
		a.load(ctx)
	case Refresh:
		a.load(ctx)
	case SearchDoctors:
		a.filter.Name = c.Term
		a.applyFilter()
	case SelectSpecialty:
		a.filter.Specialty = c.Specialty
		a.applyFilter()
	case SelectTimeSlot:
		a.filter.Slot = c.Slot
		a.applyFilter()
	case OpenAddDoctor:
		a.dialogs.Open(DialogAddDoctor)
	case SubmitDoctor:
		a.submitDoctor(ctx, c.Form)
	case DeleteDoctor:
		a.deleteDoctor(ctx, c.ID)
	case ViewPatient:
		return "", a.viewPatient(ctx, c.ID)
	default:
		return "", a.unsupported(cmd)
	}
	return "", nil
}

func (a *Admin) load(ctx context.Context) {
	switch a.nav.Active() {
	case SectionDoctors:
		a.loadDoctors(ctx)
	case SectionPatients:
		a.loadPatients(ctx)
	case SectionAppointments:
		a.body = placeholderAdminAppointments + "\n"
	case SectionReports:
		a.loadStatistics(ctx)
	}
}

// loadDoctors replaces the cache with a fresh list.
func (a *Admin) loadDoctors(ctx context.Context) {
	a.doctors = a.deps.Doctors.All(ctx)
	if a.nav.IsActive(SectionDoctors) {
		a.renderDoctors()
	}
}

func (a *Admin) renderDoctors() {
	a.body = Render(FromList(a.filter.Apply(a.doctors)), view.NoDoctors, func(ds []models.Doctor) string {
		return view.DoctorList(a.theme(), ds, true, false)
	})
}

// applyFilter narrows the cached list; nothing is fetched.
func (a *Admin) applyFilter() {
	if a.nav.IsActive(SectionDoctors) {
		a.renderDoctors()
	}
}

func (a *Admin) loadPatients(ctx context.Context) {
	a.patients = a.deps.Patients.All(ctx)
	a.body = Render(FromList(a.patients), view.NoPatients, func(ps []models.Patient) string {
		return view.PatientTable(a.theme(), ps)
	})
}

// loadStatistics counts doctors and patients fresh. Appointment totals have
// no backing endpoint and stay zero.
func (a *Admin) loadStatistics(ctx context.Context) {
	a.stats = view.Stats{
		Doctors:  len(a.deps.Doctors.All(ctx)),
		Patients: len(a.deps.Patients.All(ctx)),
	}
	if a.nav.IsActive(SectionReports) {
		a.body = view.StatsPanel(a.theme(), a.stats)
	}
}

// Stats are the counters from the last statistics load.
func (a *Admin) Stats() view.Stats { return a.stats }

func (a *Admin) submitDoctor(ctx context.Context, form DoctorForm) {
	a.form = form
	if _, err := a.deps.Doctors.Create(ctx, a.sess.Token, form.Doctor()); err != nil {
		a.log().Warn(ctx, "create doctor failed", "error", err)
		a.deps.UI.Alert(MsgDoctorAddFailed + errorText(err))
		return
	}
	a.dialogs.Close(DialogAddDoctor)
	a.form = DoctorForm{}
	a.loadDoctors(ctx)
	a.deps.UI.Alert(MsgDoctorAdded)
}

func (a *Admin) deleteDoctor(ctx context.Context, id string) {
	if !a.deps.UI.Confirm(MsgConfirmDelete) {
		return
	}
	if !a.deps.Doctors.Delete(ctx, a.sess.Token, id) {
		a.deps.UI.Alert(MsgDoctorDeleteFailed)
		return
	}
	a.loadDoctors(ctx)
	a.deps.UI.Alert(MsgDoctorDeleted)
}

func (a *Admin) viewPatient(ctx context.Context, id string) error {
	p := a.deps.Patients.Get(ctx, id)
	if p == nil {
		return fmt.Errorf("patient %s: %w", id, common.ErrNotFound)
	}
	a.body = view.PatientProfile(a.theme(), *p)
	return nil
}
