package cli

import (
	"fmt"

	"github.com/dmitrijs2005/clinicdesk/internal/client/dashboard"
)

type bookingPage interface {
	Booking() dashboard.BookingForm
}

// dialogForm prompts for the fields of the open dialog and returns the
// submit command. Leaving the first field empty dismisses the dialog
// the way a click outside it would.
func (a *App) dialogForm(page dashboard.Page, id string) (dashboard.Command, error) {
	switch id {
	case dashboard.DialogAddDoctor:
		return a.addDoctorForm()
	case dashboard.DialogBooking:
		if bp, ok := page.(bookingPage); ok {
			return a.bookingForm(bp.Booking())
		}
	}
	return dashboard.CloseDialog{}, nil
}

func (a *App) addDoctorForm() (dashboard.Command, error) {
	fmt.Fprintln(a.out, a.theme.Title("Add doctor")+" (empty name cancels)")

	var f dashboard.DoctorForm
	var err error
	if f.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return nil, err
	}
	if f.Name == "" {
		return dashboard.DismissDialog{}, nil
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Specialty", &f.Specialty},
		{"Email", &f.Email},
		{"Phone", &f.Phone},
		{"Username", &f.Username},
	}
	for _, fl := range fields {
		if *fl.dst, err = GetSimpleText(a.reader, fl.prompt, a.out); err != nil {
			return nil, err
		}
	}
	if f.Password, err = GetPassword(a.reader, a.inFd, a.out); err != nil {
		return nil, err
	}
	fields = []struct {
		prompt string
		dst    *string
	}{
		{"Qualifications", &f.Qualifications},
		{"Experience (years)", &f.Experience},
		{"Consultation fee", &f.Fee},
	}
	for _, fl := range fields {
		if *fl.dst, err = GetSimpleText(a.reader, fl.prompt, a.out); err != nil {
			return nil, err
		}
	}
	return dashboard.SubmitDoctor{Form: f}, nil
}

func (a *App) bookingForm(f dashboard.BookingForm) (dashboard.Command, error) {
	fmt.Fprintf(a.out, "%s with %s (empty date cancels)\n", a.theme.Title("Book appointment"), f.DoctorName)

	var err error
	if f.DateTime, err = GetSimpleText(a.reader, "Date and time (YYYY-MM-DDTHH:MM)", a.out); err != nil {
		return nil, err
	}
	if f.DateTime == "" {
		return dashboard.DismissDialog{}, nil
	}
	if f.Reason, err = GetSimpleText(a.reader, "Reason", a.out); err != nil {
		return nil, err
	}
	return dashboard.SubmitBooking{Form: f}, nil
}
