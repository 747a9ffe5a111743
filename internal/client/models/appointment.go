package models

// Appointment statuses known to the client. The server owns the enum; any
// other value is displayed as-is.
const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// DefaultAppointmentMinutes is the duration of every appointment booked
// from the client.
const DefaultAppointmentMinutes = 30

// Appointment is both the booking payload and the listing record; the
// doctor/patient names are filled in by the server for display.
type Appointment struct {
	ID                  ID     `json:"id,omitempty"`
	DoctorID            ID     `json:"doctorId"`
	PatientID           ID     `json:"patientId"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	DurationMinutes     int    `json:"durationMinutes"`
	Status              string `json:"status"`
	Reason              string `json:"reason,omitempty"`
	Notes               string `json:"notes,omitempty"`
	DoctorName          string `json:"doctorName,omitempty"`
	PatientName         string `json:"patientName,omitempty"`
	DoctorSpecialty     string `json:"doctorSpecialty,omitempty"`
}
