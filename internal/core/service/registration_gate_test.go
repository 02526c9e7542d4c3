package service

import (
	"testing"

	"github.com/vitacare/clinic-api/internal/core/domain"
)

func newTestGate(t *testing.T) *RegistrationGate {
	t.Helper()
	hasher := testHasher()
	digest, err := hasher.Hash("master-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return NewRegistrationGate(hasher, "registrar", digest)
}

func TestRegistrationGate_Authorize(t *testing.T) {
	gate := newTestGate(t)

	if err := gate.Authorize("registrar", "master-pass"); err != nil {
		t.Fatalf("expected authorized, got %v", err)
	}
	if err := gate.Authorize("registrar", "wrong"); err != domain.ErrMasterDenied {
		t.Fatalf("expected ErrMasterDenied for wrong password, got %v", err)
	}
	if err := gate.Authorize("someone", "master-pass"); err != domain.ErrMasterDenied {
		t.Fatalf("expected ErrMasterDenied for wrong username, got %v", err)
	}
	if err := gate.Authorize("", ""); err != domain.ErrMasterDenied {
		t.Fatalf("expected ErrMasterDenied for empty pair, got %v", err)
	}
}

func TestRegistrationGate_RegistrableRoles(t *testing.T) {
	gate := newTestGate(t)

	admin := gate.RegistrableRoles(domain.RoleAdministrator)
	if len(admin) != 3 {
		t.Fatalf("administrator portal should offer all roles, got %v", admin)
	}

	for _, portal := range []domain.Role{domain.RolePhysician, domain.RolePatient} {
		roles := gate.RegistrableRoles(portal)
		if len(roles) != 1 || roles[0] != domain.RolePatient {
			t.Fatalf("portal %s should offer patient only, got %v", portal, roles)
		}
	}

	if roles := gate.RegistrableRoles(domain.Role("unknown")); len(roles) != 0 {
		t.Fatalf("unknown portal should offer nothing, got %v", roles)
	}
}
