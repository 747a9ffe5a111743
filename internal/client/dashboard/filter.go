package dashboard

import (
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
)

// DoctorFilter narrows the cached doctor list. Empty fields match
// everything; set fields are ANDed.
type DoctorFilter struct {
	Name      string
	Specialty string
	Slot      string
}

func (f DoctorFilter) Match(d models.Doctor) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Specialty != "" && d.Specialty != f.Specialty {
		return false
	}
	if f.Slot != "" && !d.HasSlot(f.Slot) {
		return false
	}
	return true
}

// Apply returns the matching doctors in a new slice; ds is not modified.
func (f DoctorFilter) Apply(ds []models.Doctor) []models.Doctor {
	out := make([]models.Doctor, 0, len(ds))
	for _, d := range ds {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}
