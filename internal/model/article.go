package model

import "time"

// Article is a wellness content entry belonging to a category.
type Article struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Image      string    `json:"image" gorm:"size:512"`
	CategoryID uint      `json:"categoryId" gorm:"not null;index"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
