package dashboard

import (
	"context"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/client/view"
)

const (
	placeholderDoctorPrescriptions = "Loading prescriptions..."
	msgProfileUnavailable          = "Profile not available."
)

type Doctor struct {
	base
}

func newDoctor(deps Deps, sess models.Session) *Doctor {
	return &Doctor{base: base{
		deps:    deps,
		sess:    sess,
		nav:     NewNav(SectionAppointments, SectionPrescriptions, SectionProfile),
		dialogs: view.NewDialogs(),
	}}
}

func (d *Doctor) initialize(ctx context.Context) {
	d.load(ctx)
}

func (d *Doctor) Handle(ctx context.Context, cmd Command) (string, error) {
	if route, ok, err := d.handleShared(ctx, cmd); ok {
		return route, err
	}

	switch c := cmd.(type) {
	case SwitchSection:
		if err := d.nav.Switch(c.Section); err != nil {
			return "", err
		}
		d.load(ctx)
	case Refresh:
		d.load(ctx)
	default:
		return "", d.unsupported(cmd)
	}
	return "", nil
}

func (d *Doctor) load(ctx context.Context) {
	switch d.nav.Active() {
	case SectionAppointments:
		as := d.deps.Doctors.Appointments(ctx, d.sess.Token, d.sess.UserID)
		d.body = Render(FromList(as), view.NoAppointments, func(as []models.Appointment) string {
			return view.DoctorAppointments(d.theme(), as)
		})
	case SectionPrescriptions:
		d.body = placeholderDoctorPrescriptions + "\n"
	case SectionProfile:
		doc := d.deps.Doctors.Get(ctx, d.sess.UserID)
		d.body = Render(FromPtr(doc), msgProfileUnavailable, func(doc models.Doctor) string {
			return view.DoctorProfile(d.theme(), doc)
		})
	}
}
