// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User carries two independent workflow flags: IsApproved (admission) and
// IsBanned. They are deliberately not a single enum — a banned, still-pending
// user is a meaningful state: once approved they remain locked out until
// unbanned.
type User struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Username       string    `db:"username"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	DefaultPincode string    `db:"default_pincode"`
	Role           string    `db:"role"`
	IsApproved     bool      `db:"is_approved"`
	IsBanned       bool      `db:"is_banned"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) CanLogin() bool {
	return u.IsApproved && !u.IsBanned
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
