package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vitacare/clinic-api/internal/core/domain"
)

// AppointmentRepository persists appointments. Listings order by
// (visit_date, visit_time) ascending; the ISO string forms make lexical
// order chronological.
type AppointmentRepository struct {
	db *sql.DB
}

func NewAppointmentRepository(db *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Insert(ctx context.Context, appt *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const query = `
		INSERT INTO appointments (id, patient_username, physician_username, visit_date, visit_time, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		appt.ID,
		appt.PatientUsername,
		appt.PhysicianUsername,
		appt.Date,
		appt.Time,
		appt.Notes,
		appt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientUsername string) ([]domain.Appointment, error) {
	return r.list(ctx, "patient_username", patientUsername)
}

func (r *AppointmentRepository) ListByPhysician(ctx context.Context, physicianUsername string) ([]domain.Appointment, error) {
	return r.list(ctx, "physician_username", physicianUsername)
}

func (r *AppointmentRepository) list(ctx context.Context, column, username string) ([]domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT id, patient_username, physician_username, visit_date, visit_time, notes, created_at
		FROM appointments
		WHERE %s = $1
		ORDER BY visit_date ASC, visit_time ASC`, column)

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(
			&a.ID,
			&a.PatientUsername,
			&a.PhysicianUsername,
			&a.Date,
			&a.Time,
			&a.Notes,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}
