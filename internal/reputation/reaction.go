package reputation

// State is a user's reaction to an answer. Exactly one of the three holds at
// any time; like and dislike are mutually exclusive.
type State int

const (
	Neutral State = iota
	Liked
	Disliked
)

func (s State) String() string {
	switch s {
	case Liked:
		return "liked"
	case Disliked:
		return "disliked"
	default:
		return "neutral"
	}
}

// StateFromValue maps a stored reaction value (+1/-1) to a State.
func StateFromValue(value int) State {
	switch value {
	case 1:
		return Liked
	case -1:
		return Disliked
	default:
		return Neutral
	}
}

// LikeResult is the outcome of a like toggle: the next state, the change to
// the answer's like counter, and any reward to apply. The caller persists all
// of it in one transaction.
type LikeResult struct {
	Next       State
	LikesDelta int
	IsLiked    bool
	Rewards    []RewardEvent
}

// DislikeResult is the outcome of a dislike toggle. Dislikes carry no counter
// of their own, but clearing a prior like still moves the like counter.
type DislikeResult struct {
	Next       State
	LikesDelta int
	IsDisliked bool
}

// ToggleLike computes the transition for a like action. A repeated like from
// Liked returns to Neutral; from Neutral or Disliked it lands on Liked,
// awarding the answer's author unless they liked their own answer.
func ToggleLike(prev State, authorID, actorID int) LikeResult {
	if prev == Liked {
		return LikeResult{Next: Neutral, LikesDelta: -1, IsLiked: false}
	}

	// Neutral or Disliked; a prior dislike is cleared without touching
	// the like counter.
	result := LikeResult{Next: Liked, LikesDelta: 1, IsLiked: true}
	if authorID != actorID {
		result.Rewards = []RewardEvent{{UserID: authorID, Points: PointsLikeReceived}}
	}
	return result
}

// ToggleDislike computes the transition for a dislike action. A repeated
// dislike returns to Neutral; disliking while Liked clears the like first.
// Dislikes never award points.
func ToggleDislike(prev State) DislikeResult {
	switch prev {
	case Disliked:
		return DislikeResult{Next: Neutral, IsDisliked: false}
	case Liked:
		return DislikeResult{Next: Disliked, LikesDelta: -1, IsDisliked: true}
	default:
		return DislikeResult{Next: Disliked, IsDisliked: true}
	}
}
