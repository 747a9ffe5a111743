package view

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
)

const (
	NoAppointments = "No appointments found."
	noReason       = "No reason specified"
)

// DoctorAppointments renders a doctor's schedule. Each card is tagged with
// its status class.
func DoctorAppointments(t *Theme, as []models.Appointment) string {
	if len(as) == 0 {
		return NoAppointments + "\n"
	}
	cards := make([]string, 0, len(as))
	for _, a := range as {
		reason := a.Reason
		if reason == "" {
			reason = noReason
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s\n", t.Label("("+StatusClass(a.Status)+")"), t.Title(a.PatientName))
		fmt.Fprintf(&b, "  %s\n", FormatDateTime(a.AppointmentDateTime))
		fmt.Fprintf(&b, "  %s\n", t.Status(a.Status))
		fmt.Fprintf(&b, "  %s\n", reason)
		cards = append(cards, b.String())
	}
	return strings.Join(cards, "\n")
}

// PatientAppointments renders a patient's bookings; the reason line only
// appears when a reason was given.
func PatientAppointments(t *Theme, as []models.Appointment) string {
	if len(as) == 0 {
		return NoAppointments + "\n"
	}
	cards := make([]string, 0, len(as))
	for _, a := range as {
		var b strings.Builder
		fmt.Fprintln(&b, t.Title(a.DoctorName))
		fmt.Fprintf(&b, "  %s\n", a.DoctorSpecialty)
		fmt.Fprintf(&b, "  %s\n", FormatDateTime(a.AppointmentDateTime))
		fmt.Fprintf(&b, "  %s\n", t.Status(a.Status))
		if a.Reason != "" {
			fmt.Fprintf(&b, "  Reason: %s\n", a.Reason)
		}
		cards = append(cards, b.String())
	}
	return strings.Join(cards, "\n")
}
