package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quickcust/quickask/backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Reaction{},
		&models.Favorite{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Phone:    "138" + username,
		Password: "hashed",
		Level:    1,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createQuestion(t *testing.T, db *gorm.DB, author *models.User, title string) *models.Question {
	t.Helper()
	question := &models.Question{Title: title, UserID: author.ID}
	require.NoError(t, db.Create(question).Error)
	return question
}

func createAnswer(t *testing.T, db *gorm.DB, question *models.Question, author *models.User) *models.Answer {
	t.Helper()
	answer := &models.Answer{Content: "an answer", QuestionID: question.ID, UserID: author.ID}
	require.NoError(t, db.Create(answer).Error)
	return answer
}

// testContext builds a gin context with an optional authenticated user and
// path params, bypassing the JWT middleware.
func testContext(t *testing.T, method string, body any, userID int, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, "/", reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	if userID != 0 {
		c.Set("user_id", userID)
	}

	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func idParam(key string, id int) gin.Params {
	return gin.Params{{Key: key, Value: strconv.Itoa(id)}}
}

func reloadUser(t *testing.T, db *gorm.DB, id int) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	return &user
}

func reloadAnswer(t *testing.T, db *gorm.DB, id int) *models.Answer {
	t.Helper()
	var answer models.Answer
	require.NoError(t, db.First(&answer, id).Error)
	return &answer
}
