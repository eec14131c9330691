package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quickcust/quickask/backend/internal/models"
	"github.com/quickcust/quickask/backend/internal/reputation"
)

type QuestionHandler struct {
	db *gorm.DB
}

func NewQuestionHandler(db *gorm.DB) *QuestionHandler {
	return &QuestionHandler{db: db}
}

func (h *QuestionHandler) countAnswers(questionID int) int {
	var count int64
	h.db.Model(&models.Answer{}).Where("question_id = ?", questionID).Count(&count)
	return int(count)
}

func questionSummary(question models.Question, answerCount int) gin.H {
	return gin.H{
		"id":           question.ID,
		"title":        question.Title,
		"description":  question.Description,
		"userName":    question.User.Username,
		"avatar":       question.User.Avatar,
		"time":         question.CreatedAt,
		"viewCount":   question.ViewCount,
		"answerCount": answerCount,
	}
}

// GetQuestions returns questions newest first with pagination
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	offset, limit := pagination(c)

	var total int64
	h.db.Model(&models.Question{}).Count(&total)

	var questions []models.Question
	if err := h.db.Preload("User").Order("created_at desc").Offset(offset).Limit(limit).Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	var responses []gin.H
	for _, question := range questions {
		responses = append(responses, questionSummary(question, h.countAnswers(question.ID)))
	}
	if responses == nil {
		responses = []gin.H{}
	}

	c.JSON(http.StatusOK, gin.H{"total": total, "questions": responses})
}

// GetQuestion returns a single question and bumps its view count. When the
// caller is authenticated the response includes whether they favorited it.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID := c.Param("id")

	var question models.Question
	if err := h.db.Preload("User").First(&question, questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	// Single UPDATE expression, no read-modify-write.
	h.db.Model(&question).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	question.ViewCount++

	isFavorite := false
	if userID, ok := extractUserID(c); ok {
		var favorite models.Favorite
		err := h.db.Where("user_id = ? AND question_id = ?", userID, question.ID).First(&favorite).Error
		isFavorite = err == nil
	}

	response := questionSummary(question, h.countAnswers(question.ID))
	response["isFavorite"] = isFavorite

	c.JSON(http.StatusOK, response)
}

// CreateQuestion creates a question and awards the author points
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var input models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	question := models.Question{
		Title:       input.Content,
		Description: input.Description,
		UserID:      authorID,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return applyReward(tx, authorID, reputation.PointsQuestionPosted)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": question.ID, "message": "Question posted"})
}

// GetMyQuestions returns the caller's questions
func (h *QuestionHandler) GetMyQuestions(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	offset, limit := pagination(c)

	var total int64
	h.db.Model(&models.Question{}).Where("user_id = ?", userID).Count(&total)

	var questions []models.Question
	if err := h.db.Where("user_id = ?", userID).Order("created_at desc").Offset(offset).Limit(limit).Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	var responses []gin.H
	for _, question := range questions {
		responses = append(responses, gin.H{
			"id":           question.ID,
			"title":        question.Title,
			"description":  question.Description,
			"time":         question.CreatedAt,
			"viewCount":   question.ViewCount,
			"answerCount": h.countAnswers(question.ID),
		})
	}
	if responses == nil {
		responses = []gin.H{}
	}

	c.JSON(http.StatusOK, gin.H{"total": total, "questions": responses})
}

// GetUnansweredQuestions returns questions the caller has neither asked nor
// answered
func (h *QuestionHandler) GetUnansweredQuestions(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	offset, limit := pagination(c)

	answeredBy := func() *gorm.DB {
		return h.db.Model(&models.Answer{}).Select("question_id").Where("user_id = ?", userID)
	}

	var total int64
	h.db.Model(&models.Question{}).Where("user_id <> ?", userID).Where("id NOT IN (?)", answeredBy()).Count(&total)

	var questions []models.Question
	if err := h.db.Preload("User").Where("user_id <> ?", userID).Where("id NOT IN (?)", answeredBy()).
		Order("created_at desc").Offset(offset).Limit(limit).Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	var responses []gin.H
	for _, question := range questions {
		responses = append(responses, questionSummary(question, h.countAnswers(question.ID)))
	}
	if responses == nil {
		responses = []gin.H{}
	}

	c.JSON(http.StatusOK, gin.H{"total": total, "questions": responses})
}

// GetAnswers returns a question's answers, sorted by time or likes. For an
// authenticated caller each answer carries their like/dislike flags; anonymous
// callers get false.
func (h *QuestionHandler) GetAnswers(c *gin.Context) {
	questionID := c.Param("id")

	var question models.Question
	if err := h.db.First(&question, questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	offset, limit := pagination(c)

	order := "created_at desc"
	if c.Query("sort") == "likes" {
		order = "likes desc, created_at desc"
	}

	var total int64
	h.db.Model(&models.Answer{}).Where("question_id = ?", question.ID).Count(&total)

	var answers []models.Answer
	if err := h.db.Preload("User").Where("question_id = ?", question.ID).Order(order).Offset(offset).Limit(limit).Find(&answers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch answers"})
		return
	}

	states := map[int]reputation.State{}
	if userID, ok := extractUserID(c); ok {
		var reactions []models.Reaction
		h.db.Joins("JOIN answers ON answers.id = reactions.answer_id").
			Where("reactions.user_id = ? AND answers.question_id = ?", userID, question.ID).
			Find(&reactions)
		for _, reaction := range reactions {
			states[reaction.AnswerID] = reputation.StateFromValue(reaction.Value)
		}
	}

	var responses []gin.H
	for _, answer := range answers {
		state := states[answer.ID]
		responses = append(responses, gin.H{
			"id":          answer.ID,
			"content":     answer.Content,
			"userName":   answer.User.Username,
			"avatar":      answer.User.Avatar,
			"time":        answer.CreatedAt,
			"likes":       answer.Likes,
			"isLiked":    state == reputation.Liked,
			"isDisliked": state == reputation.Disliked,
		})
	}
	if responses == nil {
		responses = []gin.H{}
	}

	c.JSON(http.StatusOK, gin.H{"total": total, "answers": responses})
}

// CreateAnswer posts an answer to a question and awards the author points
func (h *QuestionHandler) CreateAnswer(c *gin.Context) {
	var input models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var question models.Question
	if err := h.db.First(&question, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	answer := models.Answer{
		Content:    input.Content,
		QuestionID: question.ID,
		UserID:     authorID,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}
		return applyReward(tx, authorID, reputation.PointsAnswerPosted)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create answer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": answer.ID, "message": "Answer posted"})
}

// UpdateQuestion updates a question (owner only)
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var question models.Question
	if err := h.db.First(&question, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	if question.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own questions"})
		return
	}

	question.Title = input.Title
	question.Description = input.Description
	if err := h.db.Save(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update question"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": question.ID, "message": "Question updated"})
}

// DeleteQuestion deletes a question along with its answers, reactions and
// favorites (owner only)
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
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

	if question.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own questions"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		answerIDs := tx.Model(&models.Answer{}).Select("id").Where("question_id = ?", question.ID)
		if err := tx.Where("answer_id IN (?)", answerIDs).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", question.ID).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", question.ID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete question"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}
