package model

// Question is a stress-assessment item with an integer weight.
type Question struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Question string `json:"question" gorm:"type:text;not null"`
	Score    int    `json:"score" gorm:"not null"`
}
