package view

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
)

const NoPrescriptions = "No prescriptions found."

// MedicationCount is the "N medications" cell of the prescriptions table.
func MedicationCount(p models.Prescription) string {
	return fmt.Sprintf("%d medications", len(p.Medications))
}

func Prescriptions(t *Theme, ps []models.Prescription) string {
	if len(ps) == 0 {
		return NoPrescriptions + "\n"
	}
	var b strings.Builder
	tw := newTable(&b)
	fmt.Fprintln(tw, "DATE\tDOCTOR\tDIAGNOSIS\tMEDICATIONS\tACTIONS")
	for _, p := range ps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			FormatDate(p.PrescriptionDate), p.DoctorName, p.Diagnosis,
			MedicationCount(p), "view prescription "+p.ID.String())
	}
	_ = tw.Flush()
	return b.String()
}

// PrescriptionDetail lists every medication of one prescription.
func PrescriptionDetail(t *Theme, p models.Prescription) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", t.Title(p.Diagnosis), t.Label("("+FormatDate(p.PrescriptionDate)+")"))
	fmt.Fprintf(&b, "  Prescribed by %s\n\n", p.DoctorName)
	if len(p.Medications) == 0 {
		fmt.Fprintln(&b, "  No medications.")
	}
	for _, m := range p.Medications {
		fmt.Fprintf(&b, "  - %s", m.Name)
		var parts []string
		for _, s := range []string{m.Dosage, m.Frequency, m.Duration} {
			if s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
		}
		fmt.Fprintln(&b)
		if m.Instructions != "" {
			fmt.Fprintf(&b, "    %s\n", m.Instructions)
		}
	}
	if p.Instructions != "" {
		fmt.Fprintf(&b, "\n  %s %s\n", t.Label("Instructions:"), p.Instructions)
	}
	if p.Notes != "" {
		fmt.Fprintf(&b, "  %s %s\n", t.Label("Notes:"), p.Notes)
	}
	return b.String()
}
