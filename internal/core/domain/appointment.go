package domain

import "time"

// Appointment links a patient to a physician at a date and time. Date and
// Time are kept as submitted ("YYYY-MM-DD" / "HH:MM"); lexical order of the
// ISO forms is chronological order, which the listing queries rely on.
type Appointment struct {
	ID                string    `json:"id"`
	PatientUsername   string    `json:"patient_username"`
	PhysicianUsername string    `json:"physician_username"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
}
