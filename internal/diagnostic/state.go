package diagnostic

import "github.com/jkasmommy/brainpod-sub000/internal/itembank"

// Ability bounds for the diagnostic estimate.
const (
	AbilityMin = -3.0
	AbilityMax = 3.0
)

// Mood is the learner's self-reported mood on a 1-5 scale.
// Values at or below MoodLow trigger a mindful break.
const (
	MoodMin = 1
	MoodMax = 5
	MoodLow = 2
)

// SessionState holds the running state of one diagnostic attempt.
// It is owned by the caller and passed explicitly into every operation;
// only UpdateAbility and the break trigger mutate it.
type SessionState struct {
	Subject      itembank.Subject `json:"subject"`
	Ability      float64          `json:"ability"`
	ItemsAsked   []string         `json:"items_asked"` // Ordered; doubles as the asked-set
	SkillsSeen   map[string]bool  `json:"skills_seen"`
	CorrectCount int              `json:"correct_count"`
	Attempts     int              `json:"attempts"`
	// Streak is positive across a run of correct answers and negative
	// across a run of incorrect ones; it resets to +/-1 on a sign change.
	Streak         int  `json:"streak"`
	Mood           int  `json:"mood"`
	NeedsBreak     bool `json:"needs_break"`
	BreakTriggered bool `json:"break_triggered"` // A break fires at most once per session
}

// NewSessionState creates the state for a fresh diagnostic attempt.
func NewSessionState(bp Blueprint) *SessionState {
	return &SessionState{
		Subject:    bp.Subject,
		Ability:    bp.StartDifficulty,
		SkillsSeen: make(map[string]bool),
		Mood:       MoodMax,
	}
}

// Asked reports whether an item has already been presented.
func (s *SessionState) Asked(itemID string) bool {
	for _, id := range s.ItemsAsked {
		if id == itemID {
			return true
		}
	}
	return false
}

// DistinctSkills returns the number of distinct skills covered so far.
func (s *SessionState) DistinctSkills() int {
	return len(s.SkillsSeen)
}

// SetMood records a self-reported mood, clamped to the 1-5 scale.
func (s *SessionState) SetMood(mood int) {
	if mood < MoodMin {
		mood = MoodMin
	}
	if mood > MoodMax {
		mood = MoodMax
	}
	s.Mood = mood
}

func clampAbility(a float64) float64 {
	if a < AbilityMin {
		return AbilityMin
	}
	if a > AbilityMax {
		return AbilityMax
	}
	return a
}
