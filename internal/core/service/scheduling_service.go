package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
)

// SchedulingService books and lists appointments. All operations are scoped
// to an authenticated identity supplied by the caller; an empty identity is
// refused rather than queried.
type SchedulingService struct {
	appointments ports.AppointmentRepository
	users        ports.UserRepository
	audit        ports.AuditLog
	logger       zerolog.Logger
}

func NewSchedulingService(appointments ports.AppointmentRepository, users ports.UserRepository, audit ports.AuditLog, logger zerolog.Logger) *SchedulingService {
	return &SchedulingService{appointments: appointments, users: users, audit: audit, logger: logger}
}

// Book creates an appointment for the authenticated patient. The physician
// username must resolve to a physician-role account; date and time are
// stored as given, and a physician may be double-booked for the same slot.
func (s *SchedulingService) Book(ctx context.Context, input ports.BookingInput) (*domain.Appointment, error) {
	if input.PatientUsername == "" {
		return nil, domain.ErrNoSession
	}
	if input.PhysicianUsername == "" {
		return nil, domain.EmptyFieldError("physician_username")
	}

	physician, err := s.users.FindByUsername(ctx, input.PhysicianUsername)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrPhysicianNotFound
		}
		return nil, err
	}
	if physician.Role != domain.RolePhysician {
		return nil, domain.ErrPhysicianNotFound
	}

	appt := &domain.Appointment{
		ID:                uuid.NewString(),
		PatientUsername:   input.PatientUsername,
		PhysicianUsername: input.PhysicianUsername,
		Date:              input.Date,
		Time:              input.Time,
		Notes:             input.Notes,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.appointments.Insert(ctx, appt); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", appt.ID).
		Str("patient", appt.PatientUsername).
		Str("physician", appt.PhysicianUsername).
		Msg("appointment booked")
	recordAudit(ctx, s.logger, s.audit, appt.PatientUsername, domain.AuditBooking, appt.ID)

	return appt, nil
}

// ListForPatient returns the patient's appointments ordered by date then time.
func (s *SchedulingService) ListForPatient(ctx context.Context, patientUsername string) ([]domain.Appointment, error) {
	if patientUsername == "" {
		return nil, domain.ErrNoSession
	}
	return s.appointments.ListByPatient(ctx, patientUsername)
}

// ListForPhysician returns the physician's assigned appointments ordered by
// date then time.
func (s *SchedulingService) ListForPhysician(ctx context.Context, physicianUsername string) ([]domain.Appointment, error) {
	if physicianUsername == "" {
		return nil, domain.ErrNoSession
	}
	return s.appointments.ListByPhysician(ctx, physicianUsername)
}
