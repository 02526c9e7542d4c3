package ports

import (
	"context"

	"github.com/vitacare/clinic-api/internal/core/domain"
)

// ProfileInput carries the full field set of an account record. Every
// operation that accepts it has replace semantics: all fields are required
// and Password is the plaintext to be re-hashed, even when unchanged.
type ProfileInput struct {
	Username   string
	Password   string
	FullName   string
	NationalID string
	Phone      string
	Address    string
}

// RegisterInput carries a gated registration request. Master credentials are
// checked before anything else; Portal restricts which roles are offered.
type RegisterInput struct {
	MasterUsername string
	MasterPassword string
	Portal         domain.Role
	Role           domain.Role
	Profile        ProfileInput
}

// RegistrationGate authorizes account creation against an out-of-band master
// credential pair and scopes the offered roles by originating portal. It
// never consults the user store.
type RegistrationGate interface {
	Authorize(masterUsername, masterPassword string) error
	RegistrableRoles(portal domain.Role) []domain.Role
}

// UserService covers registration and record management.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// UpdateProfile replaces the caller's own record.
	UpdateProfile(ctx context.Context, username string, input ProfileInput) (*domain.User, error)
	// UpdateUser replaces another account's record on behalf of an
	// administrator. Administrator targets are refused with ErrForbidden.
	UpdateUser(ctx context.Context, actor, target string, input ProfileInput) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]string, error)
}
