package dashboard

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/client/view"
	"github.com/dmitrijs2005/clinicdesk/internal/common"
)

const (
	MsgAppointmentBooked = "Appointment booked successfully!"
	MsgBookingFailed     = "Error booking appointment: "
)

type Patient struct {
	base
	doctors       []models.Doctor
	prescriptions []models.Prescription
	filter        DoctorFilter
	booking       BookingForm
}

func newPatient(deps Deps, sess models.Session) *Patient {
	return &Patient{base: base{
		deps:    deps,
		sess:    sess,
		nav:     NewNav(SectionDoctors, SectionAppointments, SectionPrescriptions, SectionProfile),
		dialogs: view.NewDialogs(DialogBooking),
	}}
}

func (p *Patient) initialize(ctx context.Context) {
	p.load(ctx)
}

// Booking is the booking dialog state, prefilled by OpenBooking.
func (p *Patient) Booking() BookingForm { return p.booking }

func (p *Patient) Filter() DoctorFilter { return p.filter }

func (p *Patient) Handle(ctx context.Context, cmd Command) (string, error) {
	if route, ok, err := p.handleShared(ctx, cmd); ok {
		return route, err
	}

	switch c := cmd.(type) {
	case SwitchSection:
		if err := p.nav.Switch(c.Section); err != nil {
			return "", err
		}
		p.load(ctx)
	case Refresh:
		p.load(ctx)
	case SearchDoctors:
		p.filter.Name = c.Term
		p.applyFilter()
	case SelectSpecialty:
		p.filter.Specialty = c.Specialty
		p.applyFilter()
	case OpenBooking:
		return "", p.openBooking(c.DoctorID)
	case SubmitBooking:
		p.submitBooking(ctx, c.Form)
	case ViewPrescription:
		return "", p.viewPrescription(ctx, c.ID)
	default:
		return "", p.unsupported(cmd)
	}
	return "", nil
}

func (p *Patient) load(ctx context.Context) {
	switch p.nav.Active() {
	case SectionDoctors:
		p.doctors = p.deps.Doctors.All(ctx)
		p.renderDoctors()
	case SectionAppointments:
		as := p.deps.Patients.Appointments(ctx, p.sess.Token, p.sess.UserID)
		p.body = Render(FromList(as), view.NoAppointments, func(as []models.Appointment) string {
			return view.PatientAppointments(p.theme(), as)
		})
	case SectionPrescriptions:
		p.prescriptions = p.deps.Patients.Prescriptions(ctx, p.sess.Token, p.sess.UserID)
		p.body = Render(FromList(p.prescriptions), view.NoPrescriptions, func(ps []models.Prescription) string {
			return view.Prescriptions(p.theme(), ps)
		})
	case SectionProfile:
		pt := p.deps.Patients.Get(ctx, p.sess.UserID)
		p.body = Render(FromPtr(pt), msgProfileUnavailable, func(pt models.Patient) string {
			return view.PatientProfile(p.theme(), pt)
		})
	}
}

func (p *Patient) renderDoctors() {
	p.body = Render(FromList(p.filter.Apply(p.doctors)), view.NoDoctors, func(ds []models.Doctor) string {
		return view.DoctorList(p.theme(), ds, false, true)
	})
}

func (p *Patient) applyFilter() {
	if p.nav.IsActive(SectionDoctors) {
		p.renderDoctors()
	}
}

// openBooking prefills the dialog from a listed doctor.
func (p *Patient) openBooking(doctorID string) error {
	i := slices.IndexFunc(p.doctors, func(d models.Doctor) bool { return d.ID.String() == doctorID })
	if i < 0 {
		return fmt.Errorf("doctor %s is not listed: %w", doctorID, common.ErrNotFound)
	}
	p.booking = BookingForm{DoctorID: doctorID, DoctorName: p.doctors[i].Name}
	p.dialogs.Open(DialogBooking)
	return nil
}

func (p *Patient) submitBooking(ctx context.Context, form BookingForm) {
	if form.DoctorID == "" {
		form.DoctorID, form.DoctorName = p.booking.DoctorID, p.booking.DoctorName
	}
	p.booking = form
	if _, err := p.deps.Patients.BookAppointment(ctx, p.sess.Token, form.Appointment(p.sess.UserID)); err != nil {
		p.log().Warn(ctx, "book appointment failed", "doctor_id", form.DoctorID, "error", err)
		p.deps.UI.Alert(MsgBookingFailed + errorText(err))
		return
	}
	p.dialogs.Close(DialogBooking)
	p.booking = BookingForm{}
	p.deps.UI.Alert(MsgAppointmentBooked)
	_ = p.nav.Switch(SectionAppointments)
	p.load(ctx)
}

// viewPrescription shows one prescription from the last fetched list,
// fetching it first when the list is empty.
func (p *Patient) viewPrescription(ctx context.Context, id string) error {
	if len(p.prescriptions) == 0 {
		p.prescriptions = p.deps.Patients.Prescriptions(ctx, p.sess.Token, p.sess.UserID)
	}
	i := slices.IndexFunc(p.prescriptions, func(rx models.Prescription) bool { return rx.ID.String() == id })
	if i < 0 {
		return fmt.Errorf("prescription %s: %w", id, common.ErrNotFound)
	}
	p.body = view.PrescriptionDetail(p.theme(), p.prescriptions[i])
	return nil
}
