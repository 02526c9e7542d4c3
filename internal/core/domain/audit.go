package domain

import "time"

// Audit actions recorded in the security trail.
const (
	AuditLoginOK       = "login_ok"
	AuditLoginDenied   = "login_denied"
	AuditLogout        = "logout"
	AuditRegistered    = "user_registered"
	AuditProfileUpdate = "profile_updated"
	AuditBooking       = "appointment_booked"
)

// AuditEvent is one append-only entry in the security audit trail.
// Detail carries a short human-readable qualifier (denial reason, target
// username, appointment id); it never contains credentials.
type AuditEvent struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
