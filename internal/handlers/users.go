package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quickcust/quickask/backend/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetProfile returns the caller's profile including reputation counters
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, userProfile(&user))
}

// UpdateProfile updates the caller's profile fields
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Username string     `json:"username"`
		Bio      *string    `json:"bio"`
		Birthday *time.Time `json:"birthday"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if input.Username != "" && input.Username != user.Username {
		var existing models.User
		if err := h.db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
			return
		}
		user.Username = input.Username
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Birthday != nil {
		user.Birthday = input.Birthday
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, userProfile(&user))
}

// GetStatistics returns how many questions and answers the caller has posted
func (h *UserHandler) GetStatistics(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var questions, answers int64
	h.db.Model(&models.Question{}).Where("user_id = ?", userID).Count(&questions)
	h.db.Model(&models.Answer{}).Where("user_id = ?", userID).Count(&answers)

	c.JSON(http.StatusOK, gin.H{
		"questions": questions,
		"answers":   answers,
	})
}
