package apitest

import (
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/labstack/echo/v4"
)

func (s *Server) routes(g *echo.Group) {
	g.POST("/auth/login", s.login)

	g.GET("/doctors", s.listDoctors)
	g.GET("/doctors/search", s.searchDoctors)
	g.GET("/doctors/filter", s.filterDoctors)
	g.GET("/doctors/specialty/:specialty", s.doctorsBySpecialty)
	g.GET("/doctors/:id", s.getDoctor)
	g.POST("/doctors", s.createDoctor, s.authorize("ADMIN"))
	g.DELETE("/doctors/:id", s.deleteDoctor, s.authorize("ADMIN"))

	g.GET("/patients", s.listPatients)
	g.GET("/patients/:id", s.getPatient)

	g.POST("/appointments", s.createAppointment, s.authorize("PATIENT", "ADMIN"))
	g.GET("/appointments/patient/:id", s.appointmentsByPatient, s.authorize())
	g.GET("/appointments/doctor/:id", s.appointmentsByDoctor, s.authorize())

	g.GET("/prescriptions/patient/:id", s.prescriptionsByPatient, s.authorize())
}

func (s *Server) login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}
	s.mu.Lock()
	var found *User
	for i := range s.users {
		u := s.users[i]
		if u.Username == req.Username && u.Password == req.Password && strings.EqualFold(u.Role, req.Role) {
			found = &u
			break
		}
	}
	s.mu.Unlock()
	if found == nil {
		return c.String(http.StatusUnauthorized, "Invalid credentials")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token":    s.Token(found.Role, found.ID, tokenTTL),
		"role":     found.Role,
		"userId":   found.ID,
		"username": found.Username,
		"message":  "Login successful",
	})
}

func (s *Server) listDoctors(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Doctors())
}

func (s *Server) searchDoctors(c echo.Context) error {
	name := strings.ToLower(c.QueryParam("name"))
	out := []models.Doctor{}
	for _, d := range s.Doctors() {
		if strings.Contains(strings.ToLower(d.Name), name) {
			out = append(out, d)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) doctorsBySpecialty(c echo.Context) error {
	sp := c.Param("specialty")
	out := []models.Doctor{}
	for _, d := range s.Doctors() {
		if strings.EqualFold(d.Specialty, sp) {
			out = append(out, d)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) filterDoctors(c echo.Context) error {
	sp, slot := c.QueryParam("specialty"), c.QueryParam("timeSlot")
	out := []models.Doctor{}
	for _, d := range s.Doctors() {
		if strings.EqualFold(d.Specialty, sp) && d.HasSlot(slot) {
			out = append(out, d)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getDoctor(c echo.Context) error {
	id := models.ID(c.Param("id"))
	for _, d := range s.Doctors() {
		if d.ID == id {
			return c.JSON(http.StatusOK, d)
		}
	}
	return c.String(http.StatusNotFound, "Doctor not found")
}

func (s *Server) createDoctor(c echo.Context) error {
	var d models.Doctor
	if err := c.Bind(&d); err != nil {
		return c.String(http.StatusBadRequest, "Invalid doctor payload")
	}
	if strings.TrimSpace(d.Name) == "" {
		return c.String(http.StatusBadRequest, "Name is required")
	}
	s.mu.Lock()
	for _, u := range s.users {
		if d.Username != "" && u.Username == d.Username {
			s.mu.Unlock()
			return c.String(http.StatusConflict, "Username already exists")
		}
	}
	d.ID = s.newID()
	d.Password = ""
	s.doctors = append(s.doctors, d)
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, d)
}

func (s *Server) deleteDoctor(c echo.Context) error {
	id := models.ID(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.doctors, func(d models.Doctor) bool { return d.ID == id })
	if i < 0 {
		return c.String(http.StatusNotFound, "Doctor not found")
	}
	s.doctors = slices.Delete(s.doctors, i, i+1)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listPatients(c echo.Context) error {
	s.mu.Lock()
	out := append([]models.Patient{}, s.patients...)
	s.mu.Unlock()
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getPatient(c echo.Context) error {
	id := models.ID(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.ID == id {
			return c.JSON(http.StatusOK, p)
		}
	}
	return c.String(http.StatusNotFound, "Patient not found")
}

func (s *Server) createAppointment(c echo.Context) error {
	var a models.Appointment
	if err := c.Bind(&a); err != nil {
		return c.String(http.StatusBadRequest, "Invalid appointment payload")
	}
	if a.AppointmentDateTime == "" {
		return c.String(http.StatusBadRequest, "Appointment date is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	di := slices.IndexFunc(s.doctors, func(d models.Doctor) bool { return d.ID == a.DoctorID })
	if di < 0 {
		return c.String(http.StatusBadRequest, "Doctor not found")
	}
	pi := slices.IndexFunc(s.patients, func(p models.Patient) bool { return p.ID == a.PatientID })
	if pi < 0 {
		return c.String(http.StatusBadRequest, "Patient not found")
	}
	a.ID = s.newID()
	a.DoctorName = s.doctors[di].Name
	a.DoctorSpecialty = s.doctors[di].Specialty
	a.PatientName = s.patients[pi].Name
	s.appointments = append(s.appointments, a)
	return c.JSON(http.StatusCreated, a)
}

func (s *Server) appointmentsByPatient(c echo.Context) error {
	id := models.ID(c.Param("id"))
	out := []models.Appointment{}
	for _, a := range s.Appointments() {
		if a.PatientID == id {
			out = append(out, a)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) appointmentsByDoctor(c echo.Context) error {
	id := models.ID(c.Param("id"))
	out := []models.Appointment{}
	for _, a := range s.Appointments() {
		if a.DoctorID == id {
			out = append(out, a)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) prescriptionsByPatient(c echo.Context) error {
	s.mu.Lock()
	out := append([]models.Prescription{}, s.prescriptions[c.Param("id")]...)
	s.mu.Unlock()
	return c.JSON(http.StatusOK, out)
}
