package handler

import "github.com/vitacare/clinic-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// Portal is the entry point the login came through, not the account's
	// actual role; the two may legitimately differ.
	Portal string `json:"portal" validate:"required,oneof=administrator physician patient"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// profilePayload is the full account field set. All fields are required;
// Password is plaintext and re-hashed server-side on every write.
type profilePayload struct {
	Username   string `json:"username"    validate:"required"`
	Password   string `json:"password"    validate:"required"`
	FullName   string `json:"full_name"   validate:"required"`
	NationalID string `json:"national_id" validate:"required"`
	Phone      string `json:"phone"       validate:"required"`
	Address    string `json:"address"     validate:"required"`
}

type registerRequest struct {
	MasterUsername string         `json:"master_username" validate:"required"`
	MasterPassword string         `json:"master_password" validate:"required"`
	Portal         string         `json:"portal"          validate:"required,oneof=administrator physician patient"`
	Role           string         `json:"role"            validate:"required,oneof=administrator physician patient"`
	Profile        profilePayload `json:"profile"`
}

type updateProfileRequest struct {
	profilePayload
}

type listUsersResponse struct {
	Role      string   `json:"role"`
	Usernames []string `json:"usernames"`
}

type bookAppointmentRequest struct {
	PhysicianUsername string `json:"physician_username" validate:"required"`
	// Date and time are stored as given; the original system applies no
	// format validation and neither does this one.
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time" validate:"required"`
	Notes string `json:"notes"`
}

type listAppointmentsResponse struct {
	Appointments []domain.Appointment `json:"appointments"`
}
