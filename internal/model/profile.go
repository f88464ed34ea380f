package model

import "time"

// RoleAdmin is the only role granted access to the back-office API.
const RoleAdmin = "admin"

// Profile is a back-office account. Credentials are stored as a bcrypt hash;
// the plaintext never touches the database.
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the profile may use the admin API.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
