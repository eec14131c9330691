package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/quickcust/quickask/backend/internal/models"
)

func TestToggleFavoriteRoundTrip(t *testing.T) {
	db := newTestDB(t)
	h := NewFavoriteHandler(db)

	asker := createUser(t, db, "asker")
	fan := createUser(t, db, "fan")
	question := createQuestion(t, db, asker, "q")

	c, w := testContext(t, "POST", nil, fan.ID, idParam("id", question.ID))
	h.ToggleFavorite(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decodeBody(t, w)["isFavorite"])

	var count int64
	db.Model(&models.Favorite{}).Where("user_id = ? AND question_id = ?", fan.ID, question.ID).Count(&count)
	require.Equal(t, int64(1), count)

	c, w = testContext(t, "POST", nil, fan.ID, idParam("id", question.ID))
	h.ToggleFavorite(c)
	require.Equal(t, false, decodeBody(t, w)["isFavorite"])

	db.Model(&models.Favorite{}).Where("user_id = ? AND question_id = ?", fan.ID, question.ID).Count(&count)
	require.Zero(t, count)
}

func TestToggleFavoriteQuestionNotFound(t *testing.T) {
	db := newTestDB(t)
	h := NewFavoriteHandler(db)
	fan := createUser(t, db, "fan")

	c, w := testContext(t, "POST", nil, fan.ID, idParam("id", 9999))
	h.ToggleFavorite(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteUniquePerPair(t *testing.T) {
	db := newTestDB(t)

	asker := createUser(t, db, "asker")
	fan := createUser(t, db, "fan")
	question := createQuestion(t, db, asker, "q")

	require.NoError(t, db.Create(&models.Favorite{UserID: fan.ID, QuestionID: question.ID}).Error)

	err := db.Create(&models.Favorite{UserID: fan.ID, QuestionID: question.ID}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGetFavorites(t *testing.T) {
	db := newTestDB(t)
	h := NewFavoriteHandler(db)

	asker := createUser(t, db, "asker")
	fan := createUser(t, db, "fan")
	question := createQuestion(t, db, asker, "q")
	createAnswer(t, db, question, asker)
	require.NoError(t, db.Create(&models.Favorite{UserID: fan.ID, QuestionID: question.ID}).Error)

	c, w := testContext(t, "GET", nil, fan.ID, nil)
	h.GetFavorites(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["total"])

	favorites := body["favorites"].([]any)
	require.Len(t, favorites, 1)
	entry := favorites[0].(map[string]any)
	require.Equal(t, "q", entry["title"])
	require.Equal(t, "asker", entry["userName"])
	require.Equal(t, float64(1), entry["answerCount"])
}
