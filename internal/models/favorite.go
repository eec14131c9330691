package models

import "time"

// Favorite links a user to a question they bookmarked. At most one row per
// (user, question) pair; the unique index enforces it.
type Favorite struct {
	ID         int      `gorm:"primaryKey" json:"id"`
	UserID     int      `gorm:"uniqueIndex:idx_favorites_user_question" json:"user_id"`
	QuestionID int      `gorm:"uniqueIndex:idx_favorites_user_question" json:"question_id"`
	Question   Question `gorm:"foreignKey:QuestionID" json:"question"`

	CreatedAt time.Time `json:"created_at"`
}
