package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
)

func newSchedulingService(t *testing.T, users *stubUserRepo, appts *stubAppointmentRepo) *SchedulingService {
	t.Helper()
	return NewSchedulingService(appts, users, nil, zerolog.Nop())
}

func seedPhysician(t *testing.T, users *stubUserRepo, username string) {
	t.Helper()
	seedUser(t, users, username, "pw", domain.RolePhysician)
}

func booking(patient, physician, date, clock string) ports.BookingInput {
	return ports.BookingInput{
		PatientUsername:   patient,
		PhysicianUsername: physician,
		Date:              date,
		Time:              clock,
		Notes:             "checkup",
	}
}

func TestSchedulingService_BookAndList(t *testing.T) {
	users := newStubUserRepo()
	appts := &stubAppointmentRepo{}
	seedPhysician(t, users, "dr_gray")
	svc := newSchedulingService(t, users, appts)

	created, err := svc.Book(context.Background(), booking("alice", "dr_gray", "2026-09-01", "10:30"))
	if err != nil {
		t.Fatalf("book failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected appointment id")
	}

	list, err := svc.ListForPatient(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(list))
	}
	got := list[0]
	if got.PhysicianUsername != "dr_gray" || got.Date != "2026-09-01" || got.Time != "10:30" || got.Notes != "checkup" {
		t.Fatalf("unexpected appointment: %+v", got)
	}
}

func TestSchedulingService_List_OrderedByDateThenTime(t *testing.T) {
	users := newStubUserRepo()
	appts := &stubAppointmentRepo{}
	seedPhysician(t, users, "dr_gray")
	svc := newSchedulingService(t, users, appts)

	// Booked out of chronological order on purpose.
	slots := [][2]string{
		{"2026-09-02", "09:00"},
		{"2026-09-01", "14:00"},
		{"2026-09-01", "08:15"},
	}
	for _, s := range slots {
		if _, err := svc.Book(context.Background(), booking("alice", "dr_gray", s[0], s[1])); err != nil {
			t.Fatalf("book failed: %v", err)
		}
	}

	list, err := svc.ListForPatient(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := [][2]string{
		{"2026-09-01", "08:15"},
		{"2026-09-01", "14:00"},
		{"2026-09-02", "09:00"},
	}
	for i, w := range want {
		if list[i].Date != w[0] || list[i].Time != w[1] {
			t.Fatalf("position %d: expected %v, got %s %s", i, w, list[i].Date, list[i].Time)
		}
	}
}

func TestSchedulingService_Book_PhysicianChecks(t *testing.T) {
	users := newStubUserRepo()
	appts := &stubAppointmentRepo{}
	seedUser(t, users, "not_a_doc", "pw", domain.RolePatient)
	svc := newSchedulingService(t, users, appts)

	if _, err := svc.Book(context.Background(), booking("alice", "ghost", "2026-09-01", "10:00")); err != domain.ErrPhysicianNotFound {
		t.Fatalf("expected ErrPhysicianNotFound for unknown username, got %v", err)
	}
	if _, err := svc.Book(context.Background(), booking("alice", "not_a_doc", "2026-09-01", "10:00")); err != domain.ErrPhysicianNotFound {
		t.Fatalf("expected ErrPhysicianNotFound for non-physician role, got %v", err)
	}
	if len(appts.appointments) != 0 {
		t.Fatalf("store mutated on failed booking")
	}
}

func TestSchedulingService_Book_DoubleBookingAllowed(t *testing.T) {
	users := newStubUserRepo()
	appts := &stubAppointmentRepo{}
	seedPhysician(t, users, "dr_gray")
	svc := newSchedulingService(t, users, appts)

	for i := 0; i < 2; i++ {
		if _, err := svc.Book(context.Background(), booking("alice", "dr_gray", "2026-09-01", "10:00")); err != nil {
			t.Fatalf("booking %d failed: %v", i, err)
		}
	}
	if len(appts.appointments) != 2 {
		t.Fatalf("expected both bookings stored, got %d", len(appts.appointments))
	}
}

func TestSchedulingService_EmptyIdentity(t *testing.T) {
	svc := newSchedulingService(t, newStubUserRepo(), &stubAppointmentRepo{})

	if _, err := svc.Book(context.Background(), booking("", "dr_gray", "2026-09-01", "10:00")); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession on book, got %v", err)
	}
	if _, err := svc.ListForPatient(context.Background(), ""); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession on patient list, got %v", err)
	}
	if _, err := svc.ListForPhysician(context.Background(), ""); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession on physician list, got %v", err)
	}
}

func TestSchedulingService_ListForPhysician_Scoped(t *testing.T) {
	users := newStubUserRepo()
	appts := &stubAppointmentRepo{}
	seedPhysician(t, users, "dr_gray")
	seedPhysician(t, users, "dr_wu")
	svc := newSchedulingService(t, users, appts)

	if _, err := svc.Book(context.Background(), booking("alice", "dr_gray", "2026-09-01", "10:00")); err != nil {
		t.Fatalf("book failed: %v", err)
	}
	if _, err := svc.Book(context.Background(), booking("bob", "dr_wu", "2026-09-01", "11:00")); err != nil {
		t.Fatalf("book failed: %v", err)
	}

	mine, err := svc.ListForPhysician(context.Background(), "dr_gray")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].PatientUsername != "alice" {
		t.Fatalf("unexpected physician listing: %+v", mine)
	}
}
