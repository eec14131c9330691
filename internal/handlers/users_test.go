package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetStatistics(t *testing.T) {
	db := newTestDB(t)
	h := NewUserHandler(db)

	me := createUser(t, db, "me")
	other := createUser(t, db, "other")

	q1 := createQuestion(t, db, me, "q1")
	q2 := createQuestion(t, db, other, "q2")
	createAnswer(t, db, q1, other)
	createAnswer(t, db, q2, me)
	createAnswer(t, db, q2, me)

	c, w := testContext(t, "GET", nil, me.ID, nil)
	h.GetStatistics(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["questions"])
	require.Equal(t, float64(2), body["answers"])
}

func TestUpdateProfileUsernameTaken(t *testing.T) {
	db := newTestDB(t)
	h := NewUserHandler(db)

	createUser(t, db, "taken")
	me := createUser(t, db, "me")

	c, w := testContext(t, "PUT", map[string]string{"username": "taken"}, me.ID, nil)
	h.UpdateProfile(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfileFields(t *testing.T) {
	db := newTestDB(t)
	h := NewUserHandler(db)

	me := createUser(t, db, "me")

	c, w := testContext(t, "PUT", map[string]string{"username": "renamed", "bio": "hello"}, me.ID, nil)
	h.UpdateProfile(c)

	require.Equal(t, http.StatusOK, w.Code)
	updated := reloadUser(t, db, me.ID)
	require.Equal(t, "renamed", updated.Username)
	require.Equal(t, "hello", updated.Bio)
}
