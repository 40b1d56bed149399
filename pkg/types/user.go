package types

// Role represents the different user roles in the portal
type Role string

const (
	RoleAdministrator  Role = "administrator"
	RoleDoctor         Role = "doctor"
	RoleAuxiliaryNurse Role = "auxiliary_nurse"
)

// Valid reports whether the role is one of the known portal roles.
// Unknown roles are still representable; every access decision treats
// them as deny.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleDoctor, RoleAuxiliaryNurse:
		return true
	}
	return false
}

// User represents an authenticated portal user. Role is fixed for the
// session; Department is set for doctors and carried as a label for
// auxiliary nurses.
type User struct {
	ID         string `json:"id"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// UserClaims represents the identity claims carried in a bearer token
type UserClaims struct {
	UserID     string `json:"user_id"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
}

// User materializes the claims into the session user handed to the
// authorization engine.
func (c *UserClaims) User() *User {
	if c == nil {
		return nil
	}
	return &User{
		ID:         c.UserID,
		Role:       c.Role,
		Department: c.Department,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
	}
}
