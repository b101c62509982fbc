package staff

import "encoding/json"

// Role codes used by the staff backend.
const (
	RoleTechnician    = "TEC"
	RoleAdministrator = "ADM"
	RoleResident      = "RES"
	RoleIntern        = "INT"
)

// Member is a staff profile. The person behind it lives in the auth service;
// user_id is a foreign key into that user set and never changes after
// creation.
type Member struct {
	ID             int64  `json:"id,omitempty"`
	UserID         int64  `json:"user_id"`
	Role           string `json:"role"`
	Department     string `json:"department"`
	LicenseNumber  string `json:"license_number,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	HireDate       string `json:"hire_date"`
	IsActive       bool   `json:"is_active"`
	ShiftSchedule  string `json:"shift_schedule,omitempty"`
}

// View is a member enriched with the display name resolved from the auth
// service user set.
type View struct {
	Member
	UserName string `json:"user_name"`
}

// AuthUser is the slice of the auth service's user record the views need.
type AuthUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Draft is the submit payload. Edit forms round-trip the record they loaded,
// which may carry a nested user object and a password field; both are
// normalized away before the draft goes to the backend.
type Draft struct {
	ID             int64           `json:"id,omitempty"`
	UserID         int64           `json:"user_id,omitempty"`
	User           json.RawMessage `json:"user,omitempty"`
	Password       string          `json:"password,omitempty"`
	Role           string          `json:"role"`
	Department     string          `json:"department"`
	LicenseNumber  string          `json:"license_number,omitempty"`
	Specialization string          `json:"specialization,omitempty"`
	HireDate       string          `json:"hire_date"`
	IsActive       bool            `json:"is_active"`
	ShiftSchedule  string          `json:"shift_schedule,omitempty"`
}

// Normalize flattens the draft into the wire shape the staff backend
// accepts: the password never leaves the gateway and a nested user object
// collapses to its bare id.
func (d Draft) Normalize() Member {
	m := Member{
		ID:             d.ID,
		UserID:         d.UserID,
		Role:           d.Role,
		Department:     d.Department,
		LicenseNumber:  d.LicenseNumber,
		Specialization: d.Specialization,
		HireDate:       d.HireDate,
		IsActive:       d.IsActive,
		ShiftSchedule:  d.ShiftSchedule,
	}
	if m.UserID == 0 && len(d.User) > 0 {
		var id int64
		if err := json.Unmarshal(d.User, &id); err == nil {
			m.UserID = id
			return m
		}
		var nested struct {
			ID int64 `json:"id"`
		}
		if err := json.Unmarshal(d.User, &nested); err == nil {
			m.UserID = nested.ID
		}
	}
	return m
}
