package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a username resolves to no account.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match the
	// stored digest. Distinct from ErrUserNotFound so the caller can tell a
	// bad password from an unknown account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrHierarchyDenied is returned when credentials are valid but the
	// account role is not admitted through the chosen portal.
	ErrHierarchyDenied = errors.New("role not permitted for this portal")
	// ErrUserExists is returned on an insert with a taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrEmptyField is returned when a required registration or update field
	// is blank. Checked before any store access.
	ErrEmptyField = errors.New("required field is empty")
	// ErrForbidden is returned when the caller's role may not perform the
	// operation on the target record.
	ErrForbidden = errors.New("access forbidden")
	// ErrMasterDenied is returned when the registration gate rejects the
	// supplied master credentials.
	ErrMasterDenied = errors.New("master credentials rejected")
	// ErrRoleNotRegistrable is returned when the requested role is not
	// offered by the portal the registration came through.
	ErrRoleNotRegistrable = errors.New("role not registrable from this portal")
	// ErrNoSession is returned when an identity-scoped operation is invoked
	// without an authenticated username.
	ErrNoSession = errors.New("no active session")
	// ErrSessionExpired is returned when a token is structurally valid but
	// its session has been logged out or has lapsed.
	ErrSessionExpired = errors.New("session expired or revoked")
	// ErrPhysicianNotFound is returned when a booking names a username that
	// does not resolve to a physician account.
	ErrPhysicianNotFound = errors.New("physician not found")
)

// EmptyFieldError wraps ErrEmptyField with the offending field name.
func EmptyFieldError(field string) error {
	return fmt.Errorf("%w: %s", ErrEmptyField, field)
}
