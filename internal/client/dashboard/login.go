package dashboard

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/api"
	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/logging"
)

const (
	MsgSelectRole  = "Please select a role"
	MsgLoginFailed = "Login failed. Please check your credentials."
	MsgTryAgain    = "An error occurred. Please try again."
	MsgInvalidRole = "Invalid role"
)

type authenticator interface {
	Login(ctx context.Context, username, password, role string) (models.LoginResponse, error)
}

// LoginResult is either a route to navigate to or an inline message.
type LoginResult struct {
	Route   string
	Message string
}

type Login struct {
	auth authenticator
	log  logging.Logger
}

func NewLogin(auth authenticator, log logging.Logger) *Login {
	return &Login{auth: auth, log: log}
}

// Submit validates the form, performs one login call and picks the
// dashboard route for the returned role. The session is persisted by the
// authenticator before the role is checked.
func (l *Login) Submit(ctx context.Context, username, password, role string) LoginResult {
	if strings.TrimSpace(role) == "" {
		return LoginResult{Message: MsgSelectRole}
	}

	resp, err := l.auth.Login(ctx, username, password, role)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			if msg := strings.TrimSpace(apiErr.Body); msg != "" {
				return LoginResult{Message: msg}
			}
			return LoginResult{Message: MsgLoginFailed}
		}
		l.log.Error(ctx, "login error", "error", err)
		return LoginResult{Message: MsgTryAgain}
	}

	r, ok := models.ParseRole(resp.Role)
	if !ok {
		return LoginResult{Message: MsgInvalidRole}
	}
	return LoginResult{Route: models.DashboardRoute(r, resp.Token)}
}
