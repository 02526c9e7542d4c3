package service

import (
	"context"
	"sort"
	"time"

	"github.com/vitacare/clinic-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub ports shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User
	insertErr error
	updateErr error
	inserts   int
	updates   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]string, error) {
	var names []string
	for _, u := range r.users {
		if u.Role == role {
			names = append(names, u.Username)
		}
	}
	return names, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	r.users[user.Username] = cloneUser(user)
	r.inserts++
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, username string, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, exists := r.users[username]; !exists {
		return domain.ErrUserNotFound
	}
	delete(r.users, username)
	r.users[user.Username] = cloneUser(user)
	r.updates++
	return nil
}

type stubSessionStore struct {
	sessions map[string]string
	setErr   error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Set(_ context.Context, sessionID, username string, _ time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sessions[sessionID] = username
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, sessionID string) (string, error) {
	username, ok := s.sessions[sessionID]
	if !ok {
		return "", domain.ErrSessionExpired
	}
	return username, nil
}

func (s *stubSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type stubAppointmentRepo struct {
	appointments []domain.Appointment
	insertErr    error
}

func (r *stubAppointmentRepo) Insert(_ context.Context, appt *domain.Appointment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.appointments = append(r.appointments, *appt)
	return nil
}

// listOrdered mirrors the real SQL ORDER BY date, time.
func (r *stubAppointmentRepo) listOrdered(match func(domain.Appointment) bool) []domain.Appointment {
	var out []domain.Appointment
	for _, a := range r.appointments {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (r *stubAppointmentRepo) ListByPatient(_ context.Context, username string) ([]domain.Appointment, error) {
	return r.listOrdered(func(a domain.Appointment) bool { return a.PatientUsername == username }), nil
}

func (r *stubAppointmentRepo) ListByPhysician(_ context.Context, username string) ([]domain.Appointment, error) {
	return r.listOrdered(func(a domain.Appointment) bool { return a.PhysicianUsername == username }), nil
}

type stubAudit struct {
	events []domain.AuditEvent
}

func (a *stubAudit) Record(_ context.Context, event domain.AuditEvent) error {
	a.events = append(a.events, event)
	return nil
}
