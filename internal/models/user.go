package models

import "time"

type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Phone    string `gorm:"unique;not null" json:"-"`
	Password string `gorm:"not null" json:"-"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`

	Birthday *time.Time `json:"birthday,omitempty"`

	// Reputation counters. Only the reputation ledger writes these;
	// level_progress stays in [0, 100).
	Points        int `gorm:"default:0" json:"points"`
	Level         int `gorm:"default:1" json:"level"`
	LevelProgress int `gorm:"default:0" json:"level_progress"`

	ResetPasswordToken   string     `gorm:"index" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Avatar   string `json:"avatar"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message"`
}
