package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler combines all handler types
type Handler struct {
	Auth     *AuthHandler
	Question *QuestionHandler
	Answer   *AnswerHandler
	Favorite *FavoriteHandler
	User     *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(db),
		Question: NewQuestionHandler(db),
		Answer:   NewAnswerHandler(db),
		Favorite: NewFavoriteHandler(db),
		User:     NewUserHandler(db),
	}
}

func extractUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// pagination reads ?page= and ?limit= with the defaults the mobile client
// expects (page 1, 10 items).
func pagination(c *gin.Context) (offset, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return (page - 1) * limit, limit
}
