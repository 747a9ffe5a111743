package view

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
)

const NoDoctors = "No doctors found."

// DoctorCard renders one doctor. The action area is exclusive: an admin
// card offers delete, a patient card offers booking, any other has none.
func DoctorCard(t *Theme, d models.Doctor, isAdmin, isPatient bool) string {
	times := noTimes
	if len(d.AvailableTimes) > 0 {
		times = strings.Join(d.AvailableTimes, ", ")
	}

	var b strings.Builder
	fmt.Fprintln(&b, t.Title(d.Name))
	fmt.Fprintf(&b, "  %s\n", d.Specialty)
	fmt.Fprintf(&b, "  %s %s\n", t.Label("Email:"), orNA(d.Email))
	fmt.Fprintf(&b, "  %s %s\n", t.Label("Phone:"), orNA(d.Phone))
	fmt.Fprintf(&b, "  %s %d years\n", t.Label("Experience:"), d.ExperienceYears)
	fmt.Fprintf(&b, "  %s %s\n", t.Label("Fee:"), FormatFee(d.ConsultationFee))
	fmt.Fprintf(&b, "  %s %s\n", t.Label("Available:"), times)

	switch {
	case isAdmin:
		fmt.Fprintf(&b, "  %s\n", t.Action("delete "+d.ID.String()))
	case isPatient:
		fmt.Fprintf(&b, "  %s\n", t.Action("book "+d.ID.String()))
	}
	return b.String()
}

// DoctorList renders cards separated by blank lines.
func DoctorList(t *Theme, ds []models.Doctor, isAdmin, isPatient bool) string {
	if len(ds) == 0 {
		return NoDoctors + "\n"
	}
	cards := make([]string, 0, len(ds))
	for _, d := range ds {
		cards = append(cards, DoctorCard(t, d, isAdmin, isPatient))
	}
	return strings.Join(cards, "\n")
}

func DoctorProfile(t *Theme, d models.Doctor) string {
	var b strings.Builder
	fmt.Fprintln(&b, t.Title(d.Name))
	fmt.Fprintf(&b, "  %s\n\n", d.Specialty)
	rows := [][2]string{
		{"Email", orNA(d.Email)},
		{"Phone", orNA(d.Phone)},
		{"Experience", fmt.Sprintf("%d years", d.ExperienceYears)},
		{"Qualifications", orNA(d.Qualifications)},
		{"Consultation Fee", FormatFee(d.ConsultationFee)},
	}
	writeDetails(&b, t, rows)
	return b.String()
}
