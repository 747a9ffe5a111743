package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
)

const NoPatients = "No patients found."

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// PatientTable lists patients with a view action per row.
func PatientTable(t *Theme, ps []models.Patient) string {
	if len(ps) == 0 {
		return NoPatients + "\n"
	}
	var b strings.Builder
	tw := newTable(&b)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tBLOOD GROUP\tACTIONS")
	for _, p := range ps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Email, orNA(p.Phone), orNA(p.BloodGroup),
			"view patient "+p.ID.String())
	}
	_ = tw.Flush()
	return b.String()
}

func PatientProfile(t *Theme, p models.Patient) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", t.Title(p.Name))
	writeDetails(&b, t, [][2]string{
		{"Email", orNA(p.Email)},
		{"Phone", orNA(p.Phone)},
		{"Date of Birth", orNA(p.DateOfBirth)},
		{"Gender", orNA(p.Gender)},
		{"Blood Group", orNA(p.BloodGroup)},
		{"Address", orNA(p.Address)},
	})
	return b.String()
}

func writeDetails(w io.Writer, t *Theme, rows [][2]string) {
	tw := newTable(w)
	for _, r := range rows {
		fmt.Fprintf(tw, "  %s\t%s\n", r[0], r[1])
	}
	_ = tw.Flush()
}
