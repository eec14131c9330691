package models

import "time"

type Question struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	UserID      int    `json:"user_id"`
	User        User   `gorm:"foreignKey:UserID" json:"user"`

	// Incremented on every detail read, never decremented.
	ViewCount int `gorm:"default:0" json:"view_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateQuestionRequest struct {
	Content     string `json:"content" binding:"required,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

type UpdateQuestionRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=2000"`
}
