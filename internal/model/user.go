package model

import "time"

// Roles assigned to directory accounts. Signup always produces RoleUser;
// admin accounts come from the seed migration.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	Role         string    `db:"role" json:"role"`
	Avatar       *string   `db:"avatar" json:"avatar,omitempty"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
