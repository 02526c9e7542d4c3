package ports

import (
	"context"

	"github.com/vitacare/clinic-api/internal/core/domain"
)

// AuthService authenticates users against a portal and manages session
// lifecycle. Login returns a signed session token alongside the account;
// failures are domain.ErrUserNotFound, domain.ErrInvalidCredentials or
// domain.ErrHierarchyDenied, in that order of checking.
type AuthService interface {
	Login(ctx context.Context, username, password string, portal domain.Role) (string, *domain.User, error)
	Logout(ctx context.Context, sessionID, username string) error
}
