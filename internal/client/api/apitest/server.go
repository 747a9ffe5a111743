// Package apitest runs an in-process fake of the clinic REST API for tests.
// It keeps records in memory, issues HS256 tokens, records every request
// and can be told to fail specific routes.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/common"
	"github.com/labstack/echo/v4"
)

const tokenTTL = time.Hour

// User is an account the fake login endpoint accepts.
type User struct {
	ID       int
	Username string
	Password string
	Role     string
}

// Request is what the server saw of one call.
type Request struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
	Body          string
}

type failure struct {
	status int
	body   string
}

type Server struct {
	mu            sync.Mutex
	e             *echo.Echo
	ts            *httptest.Server
	secret        []byte
	nextID        int
	users         []User
	doctors       []models.Doctor
	patients      []models.Patient
	appointments  []models.Appointment
	prescriptions map[string][]models.Prescription
	requests      []Request
	failures      map[string]failure
}

// New starts a server seeded with Fixtures and stops it when t ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		secret:        []byte("apitest-secret"),
		nextID:        100,
		prescriptions: map[string][]models.Prescription{},
		failures:      map[string]failure{},
	}
	s.seed()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(s.record, s.injectFailures)
	s.routes(e.Group("/api"))
	s.e = e

	s.ts = httptest.NewServer(e)
	t.Cleanup(s.ts.Close)
	return s
}

// URL is the API base, ending in /api.
func (s *Server) URL() string {
	return s.ts.URL + "/api"
}

// Close stops the listener; later calls fail at the transport level.
func (s *Server) Close() {
	s.ts.Close()
}

// Fail makes every call to "METHOD /path" (path without the /api prefix)
// answer status with body until Reset.
func (s *Server) Fail(route string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = failure{status: status, body: body}
}

// Reset clears forced failures and recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = map[string]failure{}
	s.requests = nil
}

// Requests returns a copy of the recorded calls.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Doctors returns a copy of the stored doctors.
func (s *Server) Doctors() []models.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

// Appointments returns a copy of the stored appointments.
func (s *Server) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// AddUser registers an extra login.
func (s *Server) AddUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

// SetDoctors replaces the stored doctors.
func (s *Server) SetDoctors(ds []models.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors = append([]models.Doctor(nil), ds...)
}

// SetPatients replaces the stored patients.
func (s *Server) SetPatients(ps []models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = append([]models.Patient(nil), ps...)
}

// Token issues a token the server accepts for role and user id.
func (s *Server) Token(role string, userID int, ttl time.Duration) string {
	tok, err := generateToken(role, userID, s.secret, ttl)
	if err != nil {
		panic(err)
	}
	return tok
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		var body string
		if req.Body != nil {
			b, err := readAndRestore(req)
			if err != nil {
				return err
			}
			body = b
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        req.Method,
			Path:          strings.TrimPrefix(req.URL.Path, "/api"),
			Query:         req.URL.RawQuery,
			Authorization: req.Header.Get(common.AuthorizationHeaderName),
			RequestID:     req.Header.Get(common.RequestIDHeaderName),
			Body:          body,
		})
		s.mu.Unlock()
		return next(c)
	}
}

func (s *Server) injectFailures(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		key := req.Method + " " + strings.TrimPrefix(req.URL.Path, "/api")
		s.mu.Lock()
		f, ok := s.failures[key]
		s.mu.Unlock()
		if ok {
			return c.String(f.status, f.body)
		}
		return next(c)
	}
}

// authorize checks the bearer token and, when roles are given, its role.
func (s *Server) authorize(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(common.AuthorizationHeaderName)
			raw, ok := strings.CutPrefix(h, common.BearerPrefix)
			if !ok || raw == "" {
				return c.String(http.StatusUnauthorized, "Missing token")
			}
			parsed, err := parseToken(raw, s.secret)
			if err != nil {
				return c.String(http.StatusUnauthorized, "Invalid token")
			}
			if len(roles) > 0 {
				allowed := false
				for _, r := range roles {
					if strings.EqualFold(r, parsed.Role) {
						allowed = true
					}
				}
				if !allowed {
					return c.String(http.StatusForbidden, "Access denied")
				}
			}
			return next(c)
		}
	}
}

func (s *Server) newID() models.ID {
	s.nextID++
	return models.ID(strconv.Itoa(s.nextID))
}
