package domain

import "time"

// Role distinguishes the two account tables of the original system. Both
// live in one table here, with email uniqueness scoped per role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Account struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex:idx_accounts_email_role"`
	Role      Role      `json:"role" gorm:"uniqueIndex:idx_accounts_email_role"`
	Password  string    `json:"-"` // Never return password hash in JSON
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
