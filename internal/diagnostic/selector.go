package diagnostic

import "github.com/jkasmommy/brainpod-sub000/internal/itembank"

// breadthBonus is subtracted from a candidate's distance score when its
// skill hasn't been seen yet, favoring skill coverage early in a session.
const breadthBonus = 0.1

// SelectNext picks the unasked item whose difficulty is closest to the
// current ability estimate, with a small bonus for items covering a new
// skill. Returns nil when the bank is exhausted; callers must treat that
// as forced session completion, not a fault.
//
// Pure function: neither state nor bank is mutated.
func SelectNext(state *SessionState, bank []itembank.Item) *itembank.Item {
	var best *itembank.Item
	bestScore := 0.0

	for i := range bank {
		item := &bank[i]
		if state.Asked(item.ID) {
			continue
		}

		score := item.Difficulty - state.Ability
		if score < 0 {
			score = -score
		}
		if !state.SkillsSeen[item.Skill] {
			score -= breadthBonus
		}

		if best == nil || score < bestScore {
			best = item
			bestScore = score
		}
	}
	return best
}
