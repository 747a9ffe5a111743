package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/clinicdesk/internal/client/api"
	"github.com/dmitrijs2005/clinicdesk/internal/client/config"
	"github.com/dmitrijs2005/clinicdesk/internal/client/dashboard"
	"github.com/dmitrijs2005/clinicdesk/internal/client/services"
	"github.com/dmitrijs2005/clinicdesk/internal/client/session"
	"github.com/dmitrijs2005/clinicdesk/internal/client/storage"
	"github.com/dmitrijs2005/clinicdesk/internal/client/view"
	"github.com/dmitrijs2005/clinicdesk/internal/logging"
	"github.com/mattn/go-isatty"
)

type App struct {
	config *config.Config
	db     *sql.DB
	log    logging.Logger

	auth  *services.AuthService
	login *dashboard.Login
	deps  dashboard.Deps
	theme *view.Theme

	reader *bufio.Reader
	out    io.Writer
	inFd   int
}

type Option func(*App)

// WithIO replaces stdin/stdout. Colours are off unless out is a terminal.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.reader = bufio.NewReader(in)
		a.out = out
		a.inFd = -1
		if f, ok := in.(*os.File); ok {
			a.inFd = int(f.Fd())
		}
	}
}

// NewApp opens the session database and wires the API client, services and
// dashboards.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, opts ...Option) (*App, error) {
	db, err := storage.Open(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "path", c.SessionDBPath, "error", err)
		return nil, err
	}

	a := &App{
		config: c,
		db:     db,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		inFd:   int(os.Stdin.Fd()),
	}
	for _, o := range opts {
		o(a)
	}
	a.theme = view.NewTheme(isColorTerminal(a.out))

	client := api.New(c.APIBaseURL, api.WithTimeout(c.RequestTimeout), api.WithLogger(log))
	a.auth = services.NewAuthService(client, session.NewStore(db), log)
	a.login = dashboard.NewLogin(a.auth, log)
	a.deps = dashboard.Deps{
		Doctors:  services.NewDoctorService(client, log),
		Patients: services.NewPatientService(client, log),
		Sessions: a.auth,
		UI:       &terminalUI{reader: a.reader, out: a.out, theme: a.theme},
		Theme:    a.theme,
		Log:      log,
	}
	return a, nil
}

func isColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Close releases the session database.
func (a *App) Close() error {
	return a.db.Close()
}
