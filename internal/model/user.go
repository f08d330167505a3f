package model

import "time"

// User represents an account in the system.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"size:100;not null"`
	LastName  string    `json:"lastName" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed in JSON
	Activated bool      `json:"activated" gorm:"default:true"`
	RoleID    uint      `json:"roleId" gorm:"not null;index"`
	Role      *Role     `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleName returns the name of the user's role, or "" when the relation
// is not loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.RoleName
}
