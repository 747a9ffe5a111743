package view

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
)

const AppTitle = "Smart Clinic Management System"

// Header shows the signed-in user and the logout action.
func Header(t *Theme, s models.Session) string {
	return fmt.Sprintf("%s\nWelcome, %s (%s)  %s\n",
		t.Title(AppTitle), t.Title(s.Username), s.Role, t.Action("logout"))
}

// NavBar lists sections, marking the active one.
func NavBar(t *Theme, sections []string, active string) string {
	items := make([]string, 0, len(sections))
	for _, s := range sections {
		if s == active {
			items = append(items, t.Active("*"+s))
			continue
		}
		items = append(items, s)
	}
	return strings.Join(items, " | ") + "\n"
}

// Stats are the admin report counters.
type Stats struct {
	Doctors               int
	Patients              int
	Appointments          int
	CompletedAppointments int
}

func StatsPanel(t *Theme, s Stats) string {
	var b strings.Builder
	writeDetails(&b, t, [][2]string{
		{"Total Doctors", fmt.Sprint(s.Doctors)},
		{"Total Patients", fmt.Sprint(s.Patients)},
		{"Total Appointments", fmt.Sprint(s.Appointments)},
		{"Completed Appointments", fmt.Sprint(s.CompletedAppointments)},
	})
	return b.String()
}
