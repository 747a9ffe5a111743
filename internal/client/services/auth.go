package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/logging"
)

type authAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
}

type sessionStore interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, sess models.Session) error
	Clear(ctx context.Context) error
}

type AuthService struct {
	api   authAPI
	store sessionStore
	log   logging.Logger
}

func NewAuthService(api authAPI, store sessionStore, log logging.Logger) *AuthService {
	return &AuthService{api: api, store: store, log: log}
}

// Login exchanges credentials for a token and persists the session exactly
// as the server returned it. API errors are returned unwrapped so callers
// can show the server text.
func (s *AuthService) Login(ctx context.Context, username, password, role string) (models.LoginResponse, error) {
	resp, err := s.api.Login(ctx, models.LoginRequest{Username: username, Password: password, Role: role})
	if err != nil {
		return models.LoginResponse{}, err
	}
	if err := s.store.Save(ctx, resp.Session()); err != nil {
		return models.LoginResponse{}, fmt.Errorf("persist session: %w", err)
	}
	s.log.Info(ctx, "logged in", "username", resp.Username, "role", resp.Role)
	return resp, nil
}

// Logout removes every persisted key.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Load returns the persisted session.
func (s *AuthService) Load(ctx context.Context) (models.Session, error) {
	return s.store.Load(ctx)
}
