package service

import (
	"crypto/subtle"
	"slices"

	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
)

// registrableRoles maps the originating portal to the roles it may register.
// Only the administrator portal offers all three; everywhere else new
// accounts are patients.
var registrableRoles = map[domain.Role][]domain.Role{
	domain.RoleAdministrator: {domain.RoleAdministrator, domain.RolePhysician, domain.RolePatient},
	domain.RolePhysician:     {domain.RolePatient},
	domain.RolePatient:       {domain.RolePatient},
}

// RegistrationGate checks registration requests against a master credential
// pair supplied out-of-band through configuration. It is independent of the
// user store and of normal login.
type RegistrationGate struct {
	hasher             ports.PasswordHasher
	masterUsername     string
	masterPasswordHash string
}

func NewRegistrationGate(hasher ports.PasswordHasher, masterUsername, masterPasswordHash string) *RegistrationGate {
	return &RegistrationGate{
		hasher:             hasher,
		masterUsername:     masterUsername,
		masterPasswordHash: masterPasswordHash,
	}
}

// Authorize compares the supplied pair against the configured master
// credentials. Both comparisons run before deciding, and the username check
// is constant-time, so the failing side is not observable.
func (g *RegistrationGate) Authorize(masterUsername, masterPassword string) error {
	userOK := subtle.ConstantTimeCompare([]byte(masterUsername), []byte(g.masterUsername)) == 1
	passOK := g.hasher.Verify(masterPassword, g.masterPasswordHash)
	if !userOK || !passOK {
		return domain.ErrMasterDenied
	}
	return nil
}

// RegistrableRoles returns the roles the given portal may register.
func (g *RegistrationGate) RegistrableRoles(portal domain.Role) []domain.Role {
	return slices.Clone(registrableRoles[portal])
}
