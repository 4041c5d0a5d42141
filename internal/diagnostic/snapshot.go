package diagnostic

import (
	"sort"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

// Data exports the session state for persistence between turns.
func (s *SessionState) Data() *store.SessionStateData {
	skills := make([]string, 0, len(s.SkillsSeen))
	for skill := range s.SkillsSeen {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return &store.SessionStateData{
		Subject:        string(s.Subject),
		Ability:        s.Ability,
		ItemsAsked:     append([]string(nil), s.ItemsAsked...),
		SkillsSeen:     skills,
		CorrectCount:   s.CorrectCount,
		Attempts:       s.Attempts,
		Streak:         s.Streak,
		Mood:           s.Mood,
		NeedsBreak:     s.NeedsBreak,
		BreakTriggered: s.BreakTriggered,
	}
}

// StateFromData rebuilds session state from its persisted form.
// Returns nil for nil input so a missing session is simply "not started".
func StateFromData(d *store.SessionStateData) *SessionState {
	if d == nil {
		return nil
	}
	skills := make(map[string]bool, len(d.SkillsSeen))
	for _, skill := range d.SkillsSeen {
		skills[skill] = true
	}
	mood := d.Mood
	if mood < MoodMin || mood > MoodMax {
		mood = MoodMax
	}
	return &SessionState{
		Subject:        itembank.Subject(d.Subject),
		Ability:        clampAbility(d.Ability),
		ItemsAsked:     append([]string(nil), d.ItemsAsked...),
		SkillsSeen:     skills,
		CorrectCount:   d.CorrectCount,
		Attempts:       d.Attempts,
		Streak:         d.Streak,
		Mood:           mood,
		NeedsBreak:     d.NeedsBreak,
		BreakTriggered: d.BreakTriggered,
	}
}

// AttemptsData converts an attempt log to its persisted form.
func AttemptsData(log []AttemptRecord) []store.AttemptData {
	out := make([]store.AttemptData, len(log))
	for i, a := range log {
		out[i] = store.AttemptData{
			ItemID:        a.ItemID,
			Skill:         a.Skill,
			Difficulty:    a.Difficulty,
			Response:      a.Response,
			Correct:       a.Correct,
			AbilityBefore: a.AbilityBefore,
			AbilityAfter:  a.AbilityAfter,
		}
	}
	return out
}
