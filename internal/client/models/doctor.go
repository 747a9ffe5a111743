package models

// Doctor is a clinic doctor record. Password is only sent on create and is
// never returned by the API.
type Doctor struct {
	ID              ID       `json:"id,omitempty"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Username        string   `json:"username,omitempty"`
	Password        string   `json:"password,omitempty"`
	Qualifications  string   `json:"qualifications,omitempty"`
	ExperienceYears int      `json:"experienceYears"`
	ConsultationFee float64  `json:"consultationFee"`
	AvailableTimes  []string `json:"availableTimes"`
	IsActive        bool     `json:"isActive"`
}

// HasSlot reports whether slot is one of the doctor's available times.
func (d Doctor) HasSlot(slot string) bool {
	for _, s := range d.AvailableTimes {
		if s == slot {
			return true
		}
	}
	return false
}
