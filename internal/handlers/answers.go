package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quickcust/quickask/backend/internal/models"
	"github.com/quickcust/quickask/backend/internal/reputation"
)

type AnswerHandler struct {
	db *gorm.DB
}

func NewAnswerHandler(db *gorm.DB) *AnswerHandler {
	return &AnswerHandler{db: db}
}

// GetMyAnswers returns the caller's answers with their question titles
func (h *AnswerHandler) GetMyAnswers(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	offset, limit := pagination(c)

	var total int64
	h.db.Model(&models.Answer{}).Where("user_id = ?", userID).Count(&total)

	var answers []models.Answer
	if err := h.db.Preload("Question").Where("user_id = ?", userID).Order("created_at desc").Offset(offset).Limit(limit).Find(&answers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch answers"})
		return
	}

	var responses []gin.H
	for _, answer := range answers {
		responses = append(responses, gin.H{
			"id":             answer.ID,
			"questionId":    answer.QuestionID,
			"questionTitle": answer.Question.Title,
			"content":        answer.Content,
			"time":           answer.CreatedAt,
			"likes":          answer.Likes,
		})
	}
	if responses == nil {
		responses = []gin.H{}
	}

	c.JSON(http.StatusOK, gin.H{"total": total, "answers": responses})
}

// currentState loads the caller's reaction row for an answer, if any.
func currentState(tx *gorm.DB, userID, answerID int) (models.Reaction, reputation.State, error) {
	var reaction models.Reaction
	err := tx.Where("user_id = ? AND answer_id = ?", userID, answerID).First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reaction, reputation.Neutral, nil
		}
		return reaction, reputation.Neutral, err
	}
	return reaction, reputation.StateFromValue(reaction.Value), nil
}

// persistState writes the reaction row for the computed next state.
func persistState(tx *gorm.DB, reaction models.Reaction, prev, next reputation.State, userID, answerID, value int) error {
	switch {
	case next == reputation.Neutral:
		if prev != reputation.Neutral {
			return tx.Delete(&reaction).Error
		}
		return nil
	case prev == reputation.Neutral:
		return tx.Create(&models.Reaction{UserID: userID, AnswerID: answerID, Value: value}).Error
	default:
		return tx.Model(&reaction).Update("value", value).Error
	}
}

// ToggleLike flips the caller's like on an answer. Liking clears a prior
// dislike; the answer's author earns points unless they liked their own
// answer. Responds with {is_liked, likes}.
func (h *AnswerHandler) ToggleLike(c *gin.Context) {
	actorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var response gin.H
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var answer models.Answer
		if err := lockForUpdate(tx).First(&answer, c.Param("answerId")).Error; err != nil {
			return err
		}

		reaction, prev, err := currentState(tx, actorID, answer.ID)
		if err != nil {
			return err
		}

		result := reputation.ToggleLike(prev, answer.UserID, actorID)

		value := models.ReactionLike
		if err := persistState(tx, reaction, prev, result.Next, actorID, answer.ID, value); err != nil {
			return err
		}

		answer.Likes = reputation.NextLikes(answer.Likes, result.LikesDelta)
		if err := tx.Model(&answer).Update("likes", answer.Likes).Error; err != nil {
			return err
		}

		for _, event := range result.Rewards {
			if err := applyReward(tx, event.UserID, event.Points); err != nil {
				return err
			}
		}

		response = gin.H{"isLiked": result.IsLiked, "likes": answer.Likes}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// ToggleDislike flips the caller's dislike on an answer. Disliking clears a
// prior like and its counter contribution. No points move. Responds with
// {is_disliked}.
func (h *AnswerHandler) ToggleDislike(c *gin.Context) {
	actorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var response gin.H
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var answer models.Answer
		if err := lockForUpdate(tx).First(&answer, c.Param("answerId")).Error; err != nil {
			return err
		}

		reaction, prev, err := currentState(tx, actorID, answer.ID)
		if err != nil {
			return err
		}

		result := reputation.ToggleDislike(prev)

		if err := persistState(tx, reaction, prev, result.Next, actorID, answer.ID, models.ReactionDislike); err != nil {
			return err
		}

		if result.LikesDelta != 0 {
			answer.Likes = reputation.NextLikes(answer.Likes, result.LikesDelta)
			if err := tx.Model(&answer).Update("likes", answer.Likes).Error; err != nil {
				return err
			}
		}

		response = gin.H{"isDisliked": result.IsDisliked}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle dislike"})
		return
	}

	c.JSON(http.StatusOK, response)
}
