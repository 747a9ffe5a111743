package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Loader is the read side of Store.
type Loader interface {
	Load(ctx context.Context) (models.Session, error)
}

// nowFn is a test seam for the expiry check.
var nowFn = time.Now

// Require gates a protected page. It returns the persisted session when a
// token is present, not expired, and issued for role. Otherwise it returns
// an error wrapping common.ErrNoSession or common.ErrUnauthorized, and the
// caller must redirect to the login route without loading anything.
func Require(ctx context.Context, l Loader, role models.Role) (models.Session, error) {
	sess, err := l.Load(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if sess.Empty() {
		return models.Session{}, common.ErrNoSession
	}
	if TokenExpired(sess.Token, nowFn()) {
		return models.Session{}, fmt.Errorf("token expired: %w", common.ErrNoSession)
	}
	if sess.Role != role {
		return models.Session{}, fmt.Errorf("role %q cannot open the %s dashboard: %w", sess.Role, role, common.ErrUnauthorized)
	}
	return sess, nil
}

// TokenExpired reports whether token is a JWT whose exp claim is before now.
// The signature is not verified; only the server can do that. Tokens that
// are not JWTs, or carry no exp, never expire here.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(now)
}
