// Package models contains data structures for the application's domain models.
package models

import "time"

// Role distinguishes recruiters from job seekers.
type Role string

const (
	RoleRecruiter Role = "recruiter"
	RoleUser      Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleRecruiter || r == RoleUser
}

// User represents an account in the CareerFlow application.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       Role      `gorm:"type:varchar(20);not null;default:user" json:"role"`
	Bio        string    `json:"bio"`
	Skills     string    `json:"skills"`
	Experience string    `json:"experience"`
	Resume     string    `json:"resume"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsRecruiter reports whether the user posts jobs.
func (u *User) IsRecruiter() bool {
	return u.Role == RoleRecruiter
}

// Identity is the resolved caller attached to a request by the auth middleware.
type Identity struct {
	UserID uint
	Role   Role
}

// IsRecruiter reports whether the caller holds the recruiter role.
func (i Identity) IsRecruiter() bool {
	return i.Role == RoleRecruiter
}
