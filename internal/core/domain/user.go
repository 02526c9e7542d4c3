package domain

import "time"

// Role is the permission tier of an account. It is fixed at registration;
// there is no role-change operation.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RolePhysician     Role = "physician"
	RolePatient       Role = "patient"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	return r == RoleAdministrator || r == RolePhysician || r == RolePatient
}

// portalPermits maps a login portal to the account roles admitted through it.
// An administrator may enter through the physician portal, never the reverse,
// and the patient portal admits patients only.
var portalPermits = map[Role][]Role{
	RoleAdministrator: {RoleAdministrator},
	RolePhysician:     {RoleAdministrator, RolePhysician},
	RolePatient:       {RolePatient},
}

// PortalPermits reports whether an account with the given role may log in
// through the given portal.
func PortalPermits(portal, role Role) bool {
	for _, allowed := range portalPermits[portal] {
		if allowed == role {
			return true
		}
	}
	return false
}

// User models an account in the clinic system. PasswordHash is an opaque
// bcrypt digest and is never serialized or logged.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	NationalID   string    `json:"national_id"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
