package model

// Role names forming the two-rank hierarchy. Stored as reference data;
// the seed command creates both.
const (
	RoleUser  = "utilisateur"
	RoleAdmin = "administrateur"
)

// Role represents a user role.
type Role struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	RoleName string `json:"roleName" gorm:"uniqueIndex;size:50;not null"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:RoleID"`
}
