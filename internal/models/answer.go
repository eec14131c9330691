package models

import "time"

type Answer struct {
	ID         int      `gorm:"primaryKey" json:"id"`
	Content    string   `gorm:"not null" json:"content"`
	QuestionID int      `json:"question_id"`
	Question   Question `gorm:"foreignKey:QuestionID" json:"question"`
	UserID     int      `json:"user_id"`
	User       User     `gorm:"foreignKey:UserID" json:"user"`

	// Denormalized like count, kept equal to the number of ReactionLike
	// rows for this answer and clamped at zero.
	Likes int `gorm:"default:0" json:"likes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

const (
	ReactionLike    = 1
	ReactionDislike = -1
)

// Reaction records a single user's like or dislike of an answer. The unique
// index on (user_id, answer_id) makes holding a like and a dislike at the
// same time unrepresentable.
type Reaction struct {
	ID       int `gorm:"primaryKey" json:"id"`
	UserID   int `gorm:"uniqueIndex:idx_reactions_user_answer" json:"user_id"`
	AnswerID int `gorm:"uniqueIndex:idx_reactions_user_answer" json:"answer_id"`
	Value    int `json:"value"` // ReactionLike or ReactionDislike

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
