package reputation

import "github.com/quickcust/quickask/backend/internal/models"

// Point awards for community participation.
const (
	PointsLikeReceived   = 2
	PointsQuestionPosted = 5
	PointsAnswerPosted   = 10
)

// RewardEvent is a pending point award for a user, produced by a toggle or
// content-creation action and applied by the caller via ApplyPoints.
type RewardEvent struct {
	UserID int
	Points int
}

// ApplyPoints adds delta to the user's points and advances level progress.
// Progress that reaches 100 converts into exactly one level-up with the
// remainder carried over. A single subtraction is enough since awards are
// always well under 100. The caller persists the updated user.
func ApplyPoints(user *models.User, delta int) {
	if delta == 0 {
		return
	}

	user.Points += delta

	next := user.LevelProgress + delta
	if next >= 100 {
		user.Level++
		user.LevelProgress = next - 100
	} else {
		user.LevelProgress = next
	}
}

// NextLikes applies a counter delta to a like count, flooring at zero.
func NextLikes(likes, delta int) int {
	next := likes + delta
	if next < 0 {
		return 0
	}
	return next
}
