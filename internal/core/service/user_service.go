package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
)

// UserService implements gated registration, record updates and role
// listings. Passwords enter as plaintext and leave as bcrypt digests; the
// repository below never sees a plaintext.
type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	gate   ports.RegistrationGate
	audit  ports.AuditLog
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, gate ports.RegistrationGate, audit ports.AuditLog, logger zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, gate: gate, audit: audit, logger: logger}
}

// Register creates an account after the master-credential gate, the
// portal/role table and the non-empty-field validation all pass. Nothing is
// written on any failure.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := s.gate.Authorize(input.MasterUsername, input.MasterPassword); err != nil {
		return nil, err
	}
	if !slices.Contains(s.gate.RegistrableRoles(input.Portal), input.Role) {
		return nil, domain.ErrRoleNotRegistrable
	}
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(input.Profile.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Profile.Username,
		PasswordHash: digest,
		FullName:     input.Profile.FullName,
		NationalID:   input.Profile.NationalID,
		Phone:        input.Profile.Phone,
		Address:      input.Profile.Address,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Str("portal", string(input.Portal)).
		Msg("user registered")
	recordAudit(ctx, s.logger, s.audit, user.Username, domain.AuditRegistered, string(user.Role))

	return user, nil
}

// UpdateProfile replaces the caller's own record.
func (s *UserService) UpdateProfile(ctx context.Context, username string, input ports.ProfileInput) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrNoSession
	}
	current, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.replace(ctx, username, current, input)
}

// UpdateUser replaces another account's record on behalf of an
// administrator. Physician and patient records only; administrator accounts
// are not editable through this path.
func (s *UserService) UpdateUser(ctx context.Context, actor, target string, input ports.ProfileInput) (*domain.User, error) {
	current, err := s.users.FindByUsername(ctx, target)
	if err != nil {
		return nil, err
	}
	if current.Role == domain.RoleAdministrator {
		return nil, domain.ErrForbidden
	}
	return s.replace(ctx, actor, current, input)
}

// ListByRole returns the usernames holding role, in store order.
func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]string, error) {
	if !domain.ValidRole(role) {
		return nil, domain.EmptyFieldError("role")
	}
	return s.users.ListByRole(ctx, role)
}

// replace writes a full new record over current. The role is carried over
// unchanged (immutable post-creation) and the password is re-hashed on every
// update, matching the record's replace semantics: the plaintext is always
// part of the field set.
func (s *UserService) replace(ctx context.Context, actor string, current *domain.User, input ports.ProfileInput) (*domain.User, error) {
	if err := validateProfile(input); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: digest,
		FullName:     input.FullName,
		NationalID:   input.NationalID,
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         current.Role,
		CreatedAt:    current.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.users.Update(ctx, current.Username, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("actor", actor).
		Str("username", user.Username).
		Msg("user record updated")
	recordAudit(ctx, s.logger, s.audit, actor, domain.AuditProfileUpdate, user.Username)

	return user, nil
}

// validateProfile rejects the first blank field. Presence only; the original
// system applies no format validation to national id or phone, and that is
// preserved.
func validateProfile(p ports.ProfileInput) error {
	checks := []struct {
		name  string
		value string
	}{
		{"full_name", p.FullName},
		{"national_id", p.NationalID},
		{"phone", p.Phone},
		{"address", p.Address},
		{"username", p.Username},
		{"password", p.Password},
	}
	for _, c := range checks {
		if c.value == "" {
			return domain.EmptyFieldError(c.name)
		}
	}
	return nil
}
