package ports

import (
	"context"

	"github.com/vitacare/clinic-api/internal/core/domain"
)

// AppointmentRepository defines persistence for appointments. Both listings
// are ordered by (date ascending, time ascending).
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *domain.Appointment) error
	ListByPatient(ctx context.Context, patientUsername string) ([]domain.Appointment, error)
	ListByPhysician(ctx context.Context, physicianUsername string) ([]domain.Appointment, error)
}
