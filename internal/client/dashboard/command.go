package dashboard

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
)

// Command is one user action on a dashboard.
type Command interface {
	command()
}

type (
	SwitchSection    struct{ Section string }
	SearchDoctors    struct{ Term string }
	SelectSpecialty  struct{ Specialty string }
	SelectTimeSlot   struct{ Slot string }
	OpenAddDoctor    struct{}
	SubmitDoctor     struct{ Form DoctorForm }
	DeleteDoctor     struct{ ID string }
	OpenBooking      struct{ DoctorID string }
	SubmitBooking    struct{ Form BookingForm }
	CloseDialog      struct{}
	DismissDialog    struct{}
	ViewPatient      struct{ ID string }
	ViewPrescription struct{ ID string }
	Refresh          struct{}
	Logout           struct{}
)

func (SwitchSection) command()    {}
func (SearchDoctors) command()    {}
func (SelectSpecialty) command()  {}
func (SelectTimeSlot) command()   {}
func (OpenAddDoctor) command()    {}
func (SubmitDoctor) command()     {}
func (DeleteDoctor) command()     {}
func (OpenBooking) command()      {}
func (SubmitBooking) command()    {}
func (CloseDialog) command()      {}
func (DismissDialog) command()    {}
func (ViewPatient) command()      {}
func (ViewPrescription) command() {}
func (Refresh) command()          {}
func (Logout) command()           {}

// DoctorForm is the add-doctor dialog as typed.
type DoctorForm struct {
	Name           string
	Specialty      string
	Email          string
	Phone          string
	Username       string
	Password       string
	Qualifications string
	Experience     string
	Fee            string
}

// Doctor builds the create payload. Unparsable numbers become 0; new
// doctors start active with no available times.
func (f DoctorForm) Doctor() models.Doctor {
	exp, err := strconv.Atoi(strings.TrimSpace(f.Experience))
	if err != nil {
		exp = 0
	}
	fee, err := strconv.ParseFloat(strings.TrimSpace(f.Fee), 64)
	if err != nil {
		fee = 0
	}
	return models.Doctor{
		Name:            f.Name,
		Specialty:       f.Specialty,
		Email:           f.Email,
		Phone:           f.Phone,
		Username:        f.Username,
		Password:        f.Password,
		Qualifications:  f.Qualifications,
		ExperienceYears: exp,
		ConsultationFee: fee,
		AvailableTimes:  []string{},
		IsActive:        true,
	}
}

// BookingForm is the booking dialog. DoctorID and DoctorName are prefilled
// from the chosen card.
type BookingForm struct {
	DoctorID   string
	DoctorName string
	DateTime   string
	Reason     string
}

// Appointment builds the booking payload. Duration and status are fixed.
func (f BookingForm) Appointment(patientID string) models.Appointment {
	return models.Appointment{
		DoctorID:            models.ID(f.DoctorID),
		PatientID:           models.ID(patientID),
		AppointmentDateTime: f.DateTime,
		DurationMinutes:     models.DefaultAppointmentMinutes,
		Status:              models.StatusScheduled,
		Reason:              f.Reason,
	}
}
