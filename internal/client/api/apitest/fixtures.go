package apitest

import "github.com/dmitrijs2005/clinicdesk/internal/client/models"

// Seeded accounts. Doctor and patient user ids match their record ids.
var (
	Admin   = User{ID: 1, Username: "admin", Password: "admin123", Role: "ADMIN"}
	Doctor  = User{ID: 11, Username: "dr.house", Password: "vicodin", Role: "DOCTOR"}
	Patient = User{ID: 21, Username: "jane", Password: "secret", Role: "PATIENT"}
)

// Doctors are the seeded doctor records.
func Doctors() []models.Doctor {
	return []models.Doctor{
		{
			ID: "11", Name: "Gregory House", Specialty: "Diagnostics",
			Email: "house@clinic.test", Phone: "555-0101", Username: "dr.house",
			Qualifications: "MD", ExperienceYears: 20, ConsultationFee: 250,
			AvailableTimes: []string{"09:00-10:00", "14:00-15:00"}, IsActive: true,
		},
		{
			ID: "12", Name: "Lisa Cuddy", Specialty: "Endocrinology",
			Email: "cuddy@clinic.test", ExperienceYears: 15, ConsultationFee: 180.5,
			AvailableTimes: []string{"10:00-11:00"}, IsActive: true,
		},
		{
			ID: "13", Name: "James Wilson", Specialty: "Oncology",
			IsActive: true,
		},
	}
}

// Patients are the seeded patient records.
func Patients() []models.Patient {
	return []models.Patient{
		{
			ID: "21", Name: "Jane Doe", Email: "jane@mail.test", Phone: "555-0201",
			BloodGroup: "O+", DateOfBirth: "1990-04-12", Gender: "Female", Address: "1 Main St",
		},
		{ID: "22", Name: "John Roe", Email: "john@mail.test"},
	}
}

func (s *Server) seed() {
	s.users = []User{Admin, Doctor, Patient}
	s.doctors = Doctors()
	s.patients = Patients()
	s.appointments = []models.Appointment{
		{
			ID: "31", DoctorID: "11", PatientID: "21",
			AppointmentDateTime: "2025-03-01T09:00:00", DurationMinutes: 30,
			Status: models.StatusScheduled, Reason: "Headache",
			DoctorName: "Gregory House", PatientName: "Jane Doe", DoctorSpecialty: "Diagnostics",
		},
		{
			ID: "32", DoctorID: "11", PatientID: "22",
			AppointmentDateTime: "2025-02-10T14:00:00", DurationMinutes: 30,
			Status:     models.StatusCompleted,
			DoctorName: "Gregory House", PatientName: "John Roe", DoctorSpecialty: "Diagnostics",
		},
	}
	s.prescriptions["21"] = []models.Prescription{
		{
			ID: "rx-1", PrescriptionDate: "2025-02-11", DoctorName: "Gregory House",
			Diagnosis: "Migraine",
			Medications: []models.Medication{
				{Name: "Ibuprofen", Dosage: "400mg", Frequency: "twice daily", Duration: "5 days"},
				{Name: "Sumatriptan", Dosage: "50mg", Frequency: "as needed"},
			},
			Notes: "Avoid screens",
		},
	}
}
