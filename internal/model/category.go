package model

// Category groups articles by theme.
type Category struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	CategoryName string `json:"categoryName" gorm:"size:255;not null"`

	Articles []Article `json:"articles,omitempty" gorm:"foreignKey:CategoryID"`
}
