package models

type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type Prescription struct {
	ID               ID           `json:"id"`
	PrescriptionDate string       `json:"prescriptionDate"`
	DoctorName       string       `json:"doctorName"`
	Diagnosis        string       `json:"diagnosis"`
	Medications      []Medication `json:"medications"`
	Instructions     string       `json:"instructions,omitempty"`
	Notes            string       `json:"notes,omitempty"`
}
