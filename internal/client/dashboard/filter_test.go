package dashboard

import (
	"testing"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sampleDoctors() []models.Doctor {
	return []models.Doctor{
		{ID: "1", Name: "Gregory House", Specialty: "Diagnostics", AvailableTimes: []string{"09:00", "14:00"}},
		{ID: "2", Name: "Lisa Cuddy", Specialty: "Endocrinology", AvailableTimes: []string{"10:00"}},
		{ID: "3", Name: "Greg Smith", Specialty: "Diagnostics"},
	}
}

func ids(ds []models.Doctor) []string {
	out := []string{}
	for _, d := range ds {
		out = append(out, d.ID.String())
	}
	return out
}

func TestDoctorFilter_Intersection(t *testing.T) {
	tests := []struct {
		name   string
		filter DoctorFilter
		want   []string
	}{
		{"empty matches all", DoctorFilter{}, []string{"1", "2", "3"}},
		{"name case-insensitive", DoctorFilter{Name: "GREG"}, []string{"1", "3"}},
		{"specialty exact", DoctorFilter{Specialty: "Diagnostics"}, []string{"1", "3"}},
		{"specialty is case-sensitive", DoctorFilter{Specialty: "diagnostics"}, []string{}},
		{"slot membership", DoctorFilter{Slot: "14:00"}, []string{"1"}},
		{"all three", DoctorFilter{Name: "greg", Specialty: "Diagnostics", Slot: "09:00"}, []string{"1"}},
		{"no match", DoctorFilter{Name: "cuddy", Slot: "09:00"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.filter.Apply(sampleDoctors()))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDoctorFilter_PureAndIdempotent(t *testing.T) {
	src := sampleDoctors()
	snapshot := sampleDoctors()
	f := DoctorFilter{Name: "g", Specialty: "Diagnostics"}

	first := f.Apply(src)
	second := f.Apply(src)
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, src, "source list is untouched")

	first[0].Name = "changed"
	assert.Equal(t, "Gregory House", src[0].Name, "result does not alias the source")
}
