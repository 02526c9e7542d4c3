package ports

import (
	"context"

	"github.com/vitacare/clinic-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. The store works on
// already-hashed passwords only; hashing happens in the service layer.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListByRole returns the usernames holding the given role, in store order.
	ListByRole(ctx context.Context, role domain.Role) ([]string, error)
	// Insert creates the account. A taken username yields domain.ErrUserExists.
	Insert(ctx context.Context, user *domain.User) error
	// Update replaces the full record currently keyed by username; every
	// field of user is written, including a possibly changed username.
	// A miss yields domain.ErrUserNotFound.
	Update(ctx context.Context, username string, user *domain.User) error
}
