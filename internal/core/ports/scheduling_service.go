package ports

import (
	"context"

	"github.com/vitacare/clinic-api/internal/core/domain"
)

// BookingInput carries a new appointment request. PatientUsername comes from
// the authenticated session, never from the request body. Date and Time are
// stored as given; no format or conflict checking is performed.
type BookingInput struct {
	PatientUsername   string
	PhysicianUsername string
	Date              string
	Time              string
	Notes             string
}

// SchedulingService books and lists appointments scoped to an identity.
// Listing with an empty identity fails with domain.ErrNoSession rather than
// querying on an empty key.
type SchedulingService interface {
	Book(ctx context.Context, input BookingInput) (*domain.Appointment, error)
	ListForPatient(ctx context.Context, patientUsername string) ([]domain.Appointment, error)
	ListForPhysician(ctx context.Context, physicianUsername string) ([]domain.Appointment, error)
}
