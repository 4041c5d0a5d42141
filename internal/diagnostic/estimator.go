package diagnostic

import "math"

// Estimator tuning. The step schedule is deliberately more aggressive
// than a textbook 1-PL update: informative items and surprising answers
// move the estimate further, and consistent runs compound, so the
// estimate converges toward a learner's true ceiling or floor in few
// items.
const (
	baseDelta        = 0.5
	streakMultFactor = 0.15
	streakMultMinRun = 2
)

// ExpectedCorrect returns the 1-parameter-logistic probability of a
// correct response at the given ability and item difficulty.
func ExpectedCorrect(ability, difficulty float64) float64 {
	return 1.0 / (1.0 + math.Exp(-(ability - difficulty)))
}

// UpdateAbility folds one scored response into the session state: the
// ability estimate, streak, skill coverage, and attempt counters.
// Attempts increases by exactly one per call.
func UpdateAbility(state *SessionState, correct bool, itemDifficulty float64, skill string) {
	p := ExpectedCorrect(state.Ability, itemDifficulty)
	information := p * (1 - p)
	surprise := p
	if correct {
		surprise = 1 - p
	}

	adaptiveDelta := baseDelta * (0.3 + 1.4*information) * (0.5 + surprise)

	// The multiplier reads the streak as it stood before this answer.
	streakMult := 1.0
	if run := abs(state.Streak); run >= streakMultMinRun {
		streakMult = 1.0 + streakMultFactor*float64(run)
	}

	direction := -1.0
	if correct {
		direction = 1.0
	}
	state.Ability = clampAbility(state.Ability + adaptiveDelta*direction*streakMult)

	// Extend a same-sign run, or reset to +/-1 on a sign flip.
	switch {
	case correct && state.Streak > 0:
		state.Streak++
	case correct:
		state.Streak = 1
	case !correct && state.Streak < 0:
		state.Streak--
	default:
		state.Streak = -1
	}

	if skill != "" {
		state.SkillsSeen[skill] = true
	}
	if correct {
		state.CorrectCount++
	}
	state.Attempts++
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
