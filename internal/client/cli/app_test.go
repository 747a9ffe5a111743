package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/clinicdesk/internal/client/api/apitest"
	"github.com/dmitrijs2005/clinicdesk/internal/client/config"
	"github.com/dmitrijs2005/clinicdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, srv *apitest.Server) *config.Config {
	t.Helper()
	return &config.Config{
		APIBaseURL:    srv.URL(),
		SessionDBPath: filepath.Join(t.TempDir(), "clinicdesk.db"),
		LogLevel:      "error",
	}
}

// run feeds lines to a fresh App and returns everything it printed.
func run(t *testing.T, cfg *config.Config, lines ...string) string {
	t.Helper()
	stubTerminal(t, false, "", nil)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	app, err := NewApp(context.Background(), cfg, logging.Discard(), WithIO(in, &out))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

func TestRun_PatientBooksAndLogsOut(t *testing.T) {
	srv := apitest.New(t)
	out := run(t, testConfig(t, srv),
		"jane", "secret", "patient",
		"book 12",
		"2025-06-01T10:00", "Checkup",
		"logout",
		"exit",
	)

	assert.Contains(t, out, "Welcome, jane (PATIENT)")
	assert.Contains(t, out, "Book appointment with Lisa Cuddy")
	assert.Contains(t, out, "Appointment booked successfully!")
	assert.Contains(t, out, "Reason: Checkup")
	assert.Contains(t, out, "clinic (patient:appointments)> ")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
	assert.Len(t, srv.Appointments(), 3)
}

func TestRun_ResumesPersistedSession(t *testing.T) {
	srv := apitest.New(t)
	cfg := testConfig(t, srv)

	run(t, cfg, "admin", "admin123", "ADMIN", "exit")
	srv.Reset()

	out := run(t, cfg, "exit")
	assert.Contains(t, out, "Welcome, admin (ADMIN)")
	assert.NotContains(t, out, "Username")
	for _, r := range srv.Requests() {
		assert.NotEqual(t, "/auth/login", r.Path)
	}
}

func TestRun_LoginErrorsAreInline(t *testing.T) {
	srv := apitest.New(t)
	out := run(t, testConfig(t, srv),
		"admin", "admin123", "",
		"jane", "bad", "PATIENT",
	)

	assert.Contains(t, out, "Please select a role")
	assert.Contains(t, out, "Invalid credentials")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"), "input EOF ends the loop")
	assert.Len(t, srv.Requests(), 1, "the empty role made no call")
}

func TestRun_AdminDeleteWithConfirmation(t *testing.T) {
	srv := apitest.New(t)
	out := run(t, testConfig(t, srv),
		"admin", "admin123", "ADMIN",
		"delete 13", "n",
		"delete 13", "y",
		"help",
		"dance",
		"exit",
	)

	assert.Equal(t, 2, strings.Count(out, "Are you sure you want to delete this doctor?"))
	assert.Contains(t, out, "Doctor deleted successfully!")
	assert.Contains(t, out, "Available commands: nav doctors|patients|appointments|reports")
	assert.Contains(t, out, `unknown command "dance"`)
	assert.Len(t, srv.Doctors(), 2)
}

func TestRun_AdminAddDoctorCancelled(t *testing.T) {
	srv := apitest.New(t)
	out := run(t, testConfig(t, srv),
		"admin", "admin123", "ADMIN",
		"add", "",
		"nav reports",
		"exit",
	)

	assert.Contains(t, out, "Add doctor")
	assert.Regexp(t, `Total Doctors\s+3`, out)
	assert.Len(t, srv.Doctors(), 3)
}

func TestRun_DoctorSections(t *testing.T) {
	srv := apitest.New(t)
	out := run(t, testConfig(t, srv),
		"dr.house", "vicodin", "DOCTOR",
		"nav prescriptions",
		"nav profile",
		"nav billing",
		"exit",
	)

	assert.Contains(t, out, "(scheduled) Jane Doe")
	assert.Contains(t, out, "Loading prescriptions...")
	assert.Contains(t, out, "Consultation Fee")
	assert.Contains(t, out, "unknown section")
}
