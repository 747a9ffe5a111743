package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/dashboard"
	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/client/view"
	"github.com/dmitrijs2005/clinicdesk/internal/common"
)

// errExit ends the page loop.
var errExit = errors.New("exit")

var helpByRole = map[models.Role]string{
	models.RoleAdmin:   "Available commands: nav doctors|patients|appointments|reports, search, specialty, slot, add, delete <id>, view patient <id>, refresh, logout, exit",
	models.RoleDoctor:  "Available commands: nav appointments|prescriptions|profile, refresh, logout, exit",
	models.RolePatient: "Available commands: nav doctors|appointments|prescriptions|profile, search, specialty, book <id>, view prescription <id>, refresh, logout, exit",
}

// Run drives the page loop until the user exits, input ends or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintf(a.out, "%s (type 'help' for commands)\n", a.theme.Title(view.AppTitle))

	route := a.startRoute(ctx)
	for ctx.Err() == nil {
		var next string
		var err error
		if route == models.LoginRoute {
			next, err = a.loginPage(ctx)
		} else {
			next, err = a.dashboardPage(ctx, route)
		}
		if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		route = next
	}
	fmt.Fprintln(a.out, "Bye!")
	return nil
}

// startRoute resumes the persisted session's dashboard; the guard decides
// whether it is still usable.
func (a *App) startRoute(ctx context.Context) string {
	sess, err := a.auth.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "cannot read persisted session", "error", err)
		return models.LoginRoute
	}
	if sess.Empty() {
		return models.LoginRoute
	}
	if route := models.DashboardRoute(sess.Role, sess.Token); route != "" {
		return route
	}
	return models.LoginRoute
}

func (a *App) loginPage(ctx context.Context) (string, error) {
	for {
		username, err := GetSimpleText(a.reader, "Username", a.out)
		if err != nil {
			return "", err
		}
		if username == "exit" || username == "quit" {
			return "", errExit
		}
		password, err := GetPassword(a.reader, a.inFd, a.out)
		if err != nil {
			return "", err
		}
		role, err := GetSimpleText(a.reader, "Role (ADMIN, DOCTOR, PATIENT)", a.out)
		if err != nil {
			return "", err
		}
		if r, ok := models.ParseRole(role); ok {
			role = string(r)
		}

		res := a.login.Submit(ctx, username, password, role)
		if res.Message != "" {
			fmt.Fprintln(a.out, a.theme.Error(res.Message))
			continue
		}
		return res.Route, nil
	}
}

func (a *App) dashboardPage(ctx context.Context, route string) (string, error) {
	page, err := dashboard.Open(ctx, route, a.deps)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) || errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrNotFound) {
			a.log.Info(ctx, "redirecting to login", "route", route, "reason", err)
			return models.LoginRoute, nil
		}
		return "", err
	}
	fmt.Fprint(a.out, page.View())

	for ctx.Err() == nil {
		var cmd dashboard.Command
		if id, open := page.Dialogs().Active(); open {
			cmd, err = a.dialogForm(page, id)
			if err != nil {
				return "", err
			}
		} else {
			fmt.Fprintf(a.out, "clinic (%s:%s)> ", strings.ToLower(string(page.Role())), page.Nav().Active())
			line, err := readLine(a.reader)
			if err != nil {
				return "", err
			}
			switch line {
			case "":
				continue
			case "help":
				fmt.Fprintln(a.out, helpByRole[page.Role()])
				continue
			case "exit", "quit":
				return "", errExit
			}
			cmd, err = parseCommand(line)
			if err != nil {
				fmt.Fprintln(a.out, a.theme.Error(err.Error()))
				continue
			}
		}

		next, err := page.Handle(ctx, cmd)
		if err != nil {
			fmt.Fprintln(a.out, a.theme.Error(err.Error()))
			continue
		}
		if next != "" {
			return next, nil
		}
		fmt.Fprint(a.out, page.View())
	}
	return "", errExit
}
