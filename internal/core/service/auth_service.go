package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
)

// AuthService implements portal login and session logout.
//
// A successful login issues an HS256 token whose jti is also written to the
// session store with the token's TTL. The auth middleware requires both a
// valid signature and a live session, so logout genuinely revokes the token.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	sessions  ports.SessionStore
	audit     ports.AuditLog
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, sessions ports.SessionStore, audit ports.AuditLog, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		sessions:  sessions,
		audit:     audit,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login verifies credentials and the portal hierarchy, in that order, so the
// caller can distinguish an unknown user, a bad password and a wrong portal.
func (s *AuthService) Login(ctx context.Context, username, password string, portal domain.Role) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			recordAudit(ctx, s.logger, s.audit, username, domain.AuditLoginDenied, "user_not_found")
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		recordAudit(ctx, s.logger, s.audit, username, domain.AuditLoginDenied, "bad_password")
		return "", nil, domain.ErrInvalidCredentials
	}

	if !domain.PortalPermits(portal, user.Role) {
		recordAudit(ctx, s.logger, s.audit, username, domain.AuditLoginDenied, "hierarchy")
		return "", nil, domain.ErrHierarchyDenied
	}

	sessionID := uuid.NewString()
	token, err := s.signToken(user, sessionID)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	if err := s.sessions.Set(ctx, sessionID, user.Username, s.tokenTTL); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	s.logger.Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Str("portal", string(portal)).
		Msg("login authorized")
	recordAudit(ctx, s.logger, s.audit, user.Username, domain.AuditLoginOK, string(portal))

	return token, user, nil
}

// Logout clears the session identified by the token's jti.
func (s *AuthService) Logout(ctx context.Context, sessionID, username string) error {
	if sessionID == "" {
		return domain.ErrNoSession
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	recordAudit(ctx, s.logger, s.audit, username, domain.AuditLogout, "")
	return nil
}

func (s *AuthService) signToken(user *domain.User, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     string(user.Role),
		"jti":      sessionID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
