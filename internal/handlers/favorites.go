package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quickcust/quickask/backend/internal/models"
)

type FavoriteHandler struct {
	db *gorm.DB
}

func NewFavoriteHandler(db *gorm.DB) *FavoriteHandler {
	return &FavoriteHandler{db: db}
}

// ToggleFavorite flips the caller's favorite on a question. Responds with
// {isFavorite}.
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var question models.Question
	if err := h.db.First(&question, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	var existing models.Favorite
	err := h.db.Where("user_id = ? AND question_id = ?", userID, question.ID).First(&existing).Error
	if err == nil {
		if err := h.db.Delete(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"isFavorite": false})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite"})
		return
	}

	favorite := models.Favorite{UserID: userID, QuestionID: question.ID}
	if err := h.db.Create(&favorite).Error; err != nil {
		// A concurrent toggle won the race; the unique index on
		// (user_id, question_id) already holds the row we wanted.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusOK, gin.H{"isFavorite": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFavorite": true})
}

// GetFavorites returns the caller's favorited questions, newest first
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	offset, limit := pagination(c)

	var total int64
	h.db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&total)

	var favorites []models.Favorite
	if err := h.db.Preload("Question.User").Where("user_id = ?", userID).Order("created_at desc").Offset(offset).Limit(limit).Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	var responses []gin.H
	for _, favorite := range favorites {
		question := favorite.Question
		var answerCount int64
		h.db.Model(&models.Answer{}).Where("question_id = ?", question.ID).Count(&answerCount)

		responses = append(responses, gin.H{
			"id":          question.ID,
			"title":       question.Title,
			"description": question.Description,
			"userName":    question.User.Username,
			"avatar":      question.User.Avatar,
			"time":        question.CreatedAt,
			"viewCount":   question.ViewCount,
			"answerCount": answerCount,
		})
	}
	if responses == nil {
		responses = []gin.H{}
	}

	c.JSON(http.StatusOK, gin.H{"total": total, "favorites": responses})
}
