package diagnostic

// highAbilityHeadroom is the ability above which a long correct streak
// is attributed to the bank running out of headroom rather than the
// learner plateauing, so it does not stop the session on its own.
const highAbilityHeadroom = 2.0

// longStreakMargin extends the stop threshold for the either-direction
// long-streak rule.
const longStreakMargin = 2

// ShouldStop decides whether a diagnostic session terminates.
//
// The rule set is asymmetric on purpose: a run of misses pins down the
// learner's struggle point and stops the session early, while a run of
// hits at high ability keeps probing because the bank may simply lack
// harder items.
func ShouldStop(state *SessionState, bp Blueprint) bool {
	if state.Attempts >= bp.MaxItems {
		return true
	}

	// Floor: never stop before minimum coverage is reached.
	if state.Attempts < bp.MinItems || state.DistinctSkills() < bp.MinDistinctSkills {
		return false
	}

	// An incorrect run at the threshold means the ceiling has been found.
	if state.Streak <= -bp.StopStreakThreshold {
		return true
	}

	// An even longer run in either direction, with coverage already
	// satisfied above, also ends the session — except a correct run at
	// high ability, where the bank is the limiting factor.
	if abs(state.Streak) >= bp.StopStreakThreshold+longStreakMargin {
		if state.Streak > 0 && state.Ability > highAbilityHeadroom {
			return false
		}
		return true
	}

	return false
}

// CheckBreak raises the mindful-break flag when the attempt count hits
// the blueprint's break point or the learner reports a low mood. A break
// fires at most once per session; dismissals must not re-trigger it.
// Break handling is independent of stopping.
func CheckBreak(state *SessionState, bp Blueprint) bool {
	if state.BreakTriggered {
		return false
	}
	if (bp.BreakAfterAttempts > 0 && state.Attempts == bp.BreakAfterAttempts) || state.Mood <= MoodLow {
		state.NeedsBreak = true
		state.BreakTriggered = true
		return true
	}
	return false
}

// DismissBreak clears the break flag after the caller has shown it.
func DismissBreak(state *SessionState) {
	state.NeedsBreak = false
}
