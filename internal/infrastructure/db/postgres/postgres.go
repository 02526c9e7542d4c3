// Package postgres implements the user and appointment repositories on
// database/sql with the lib/pq driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

const defaultTimeout = 10 * time.Second

// Open establishes a pooled connection and verifies it with a ping.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the two tables when absent. Appointments reference
// users on both sides; role correctness of the physician side is enforced in
// the scheduling service.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	const schema = `
CREATE TABLE IF NOT EXISTS users (
	username      TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL,
	full_name     TEXT NOT NULL,
	national_id   TEXT NOT NULL,
	phone         TEXT NOT NULL,
	address       TEXT NOT NULL,
	role          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS appointments (
	id                 UUID PRIMARY KEY,
	patient_username   TEXT NOT NULL REFERENCES users (username) ON UPDATE CASCADE,
	physician_username TEXT NOT NULL REFERENCES users (username) ON UPDATE CASCADE,
	visit_date         TEXT NOT NULL,
	visit_time         TEXT NOT NULL,
	notes              TEXT NOT NULL DEFAULT '',
	created_at         TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_appointments_patient ON appointments (patient_username, visit_date, visit_time);
CREATE INDEX IF NOT EXISTS idx_appointments_physician ON appointments (physician_username, visit_date, visit_time);
CREATE INDEX IF NOT EXISTS idx_users_role ON users (role);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is the driver's unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
