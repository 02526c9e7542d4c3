package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
)

func validProfile(username string) ports.ProfileInput {
	return ports.ProfileInput{
		Username:   username,
		Password:   "pass123",
		FullName:   "Full Name",
		NationalID: "900.123.456-78",
		Phone:      "+55 11 91234-5678",
		Address:    "Rua A, 10",
	}
}

func registerInput(username string, role, portal domain.Role) ports.RegisterInput {
	return ports.RegisterInput{
		MasterUsername: "registrar",
		MasterPassword: "master-pass",
		Portal:         portal,
		Role:           role,
		Profile:        validProfile(username),
	}
}

func newUserService(t *testing.T, repo *stubUserRepo) *UserService {
	t.Helper()
	return NewUserService(repo, testHasher(), newTestGate(t), nil, zerolog.Nop())
}

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(t, repo)

	user, err := svc.Register(context.Background(), registerInput("alice", domain.RolePatient, domain.RolePatient))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RolePatient {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("password stored unhashed")
	}
	if !testHasher().Verify("pass123", user.PasswordHash) {
		t.Fatalf("stored hash does not verify against the password")
	}
	if repo.inserts != 1 {
		t.Fatalf("expected one insert, got %d", repo.inserts)
	}
}

func TestUserService_Register_MasterDenied(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(t, repo)

	input := registerInput("alice", domain.RolePatient, domain.RolePatient)
	input.MasterPassword = "wrong"

	if _, err := svc.Register(context.Background(), input); err != domain.ErrMasterDenied {
		t.Fatalf("expected ErrMasterDenied, got %v", err)
	}
	if repo.inserts != 0 {
		t.Fatalf("store mutated on denied registration")
	}
}

func TestUserService_Register_RoleNotRegistrable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(t, repo)

	// Patient portal cannot create physician accounts.
	if _, err := svc.Register(context.Background(), registerInput("doc", domain.RolePhysician, domain.RolePatient)); err != domain.ErrRoleNotRegistrable {
		t.Fatalf("expected ErrRoleNotRegistrable, got %v", err)
	}

	// Administrator portal can.
	if _, err := svc.Register(context.Background(), registerInput("doc", domain.RolePhysician, domain.RoleAdministrator)); err != nil {
		t.Fatalf("administrator portal register failed: %v", err)
	}
}

func TestUserService_Register_EmptyField(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(t, repo)

	input := registerInput("alice", domain.RolePatient, domain.RolePatient)
	input.Profile.Phone = ""

	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, domain.ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField, got %v", err)
	}
	if repo.inserts != 0 {
		t.Fatalf("store mutated on validation failure")
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(t, repo)

	if _, err := svc.Register(context.Background(), registerInput("bob", domain.RolePatient, domain.RolePatient)); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("bob", domain.RolePatient, domain.RolePatient)); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_UpdateProfile_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(t, repo)

	created, err := svc.Register(context.Background(), registerInput("alice", domain.RolePatient, domain.RolePatient))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Same plaintext round-tripped; the digest must still be new (fresh salt).
	updated, err := svc.UpdateProfile(context.Background(), "alice", validProfile("alice"))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == created.PasswordHash {
		t.Fatalf("password digest not re-hashed on update")
	}
	if !testHasher().Verify("pass123", updated.PasswordHash) {
		t.Fatalf("new digest does not verify")
	}
	if updated.Role != domain.RolePatient {
		t.Fatalf("role changed on update: %s", updated.Role)
	}
}

func TestUserService_UpdateProfile_NoSession(t *testing.T) {
	svc := newUserService(t, newStubUserRepo())

	if _, err := svc.UpdateProfile(context.Background(), "", validProfile("alice")); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestUserService_UpdateUser_AdministratorTargetForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(t, repo)

	if _, err := svc.Register(context.Background(), registerInput("root", domain.RoleAdministrator, domain.RoleAdministrator)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateUser(context.Background(), "root", "root", validProfile("root")); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for administrator target, got %v", err)
	}
}

func TestUserService_UpdateUser_TargetNotFound(t *testing.T) {
	svc := newUserService(t, newStubUserRepo())

	if _, err := svc.UpdateUser(context.Background(), "root", "ghost", validProfile("ghost")); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateUser_PhysicianTarget(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(t, repo)

	if _, err := svc.Register(context.Background(), registerInput("doc", domain.RolePhysician, domain.RoleAdministrator)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	profile := validProfile("doc")
	profile.Phone = "+55 21 99999-0000"
	updated, err := svc.UpdateUser(context.Background(), "root", "doc", profile)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Phone != profile.Phone {
		t.Fatalf("phone not replaced: %s", updated.Phone)
	}
	if repo.updates != 1 {
		t.Fatalf("expected one update, got %d", repo.updates)
	}
}

func TestUserService_ListByRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(t, repo)

	for _, name := range []string{"doc1", "doc2"} {
		if _, err := svc.Register(context.Background(), registerInput(name, domain.RolePhysician, domain.RoleAdministrator)); err != nil {
			t.Fatalf("register %s failed: %v", name, err)
		}
	}
	if _, err := svc.Register(context.Background(), registerInput("pat", domain.RolePatient, domain.RolePatient)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	physicians, err := svc.ListByRole(context.Background(), domain.RolePhysician)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(physicians) != 2 {
		t.Fatalf("expected 2 physicians, got %v", physicians)
	}

	if _, err := svc.ListByRole(context.Background(), domain.Role("janitor")); !errors.Is(err, domain.ErrEmptyField) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}
}
