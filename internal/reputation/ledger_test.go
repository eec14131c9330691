package reputation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickcust/quickask/backend/internal/models"
)

func TestApplyPointsNoCarry(t *testing.T) {
	user := &models.User{Level: 2, LevelProgress: 50, Points: 120}

	ApplyPoints(user, PointsAnswerPosted)

	require.Equal(t, 130, user.Points)
	require.Equal(t, 2, user.Level)
	require.Equal(t, 60, user.LevelProgress)
}

func TestApplyPointsCarryOver(t *testing.T) {
	user := &models.User{Level: 3, LevelProgress: 98, Points: 200}

	ApplyPoints(user, PointsQuestionPosted)

	require.Equal(t, 205, user.Points)
	require.Equal(t, 4, user.Level)
	require.Equal(t, 3, user.LevelProgress)
}

func TestApplyPointsCarryAtExactBoundary(t *testing.T) {
	user := &models.User{Level: 1, LevelProgress: 98, Points: 0}

	ApplyPoints(user, PointsLikeReceived)

	require.Equal(t, 2, user.Level)
	require.Equal(t, 0, user.LevelProgress)
}

func TestApplyPointsZeroIsNoop(t *testing.T) {
	user := &models.User{Level: 5, LevelProgress: 99, Points: 42}

	ApplyPoints(user, 0)

	require.Equal(t, 42, user.Points)
	require.Equal(t, 5, user.Level)
	require.Equal(t, 99, user.LevelProgress)
}

func TestApplyPointsAccumulates(t *testing.T) {
	user := &models.User{Level: 1, LevelProgress: 0}

	// 12 answers at +10 each crosses the level boundary once.
	for i := 0; i < 12; i++ {
		ApplyPoints(user, PointsAnswerPosted)
	}

	require.Equal(t, 120, user.Points)
	require.Equal(t, 2, user.Level)
	require.Equal(t, 20, user.LevelProgress)
}

func TestNextLikesFloorsAtZero(t *testing.T) {
	require.Equal(t, 0, NextLikes(0, -1))
	require.Equal(t, 0, NextLikes(0, 0))
	require.Equal(t, 1, NextLikes(0, 1))
	require.Equal(t, 4, NextLikes(5, -1))
}
