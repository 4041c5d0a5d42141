package diagnostic

import "testing"

func testBlueprint() Blueprint {
	return Blueprint{
		Subject:             "math",
		MinItems:            2,
		MaxItems:            5,
		BreakAfterAttempts:  3,
		StopStreakThreshold: 3,
		MinDistinctSkills:   1,
	}
}

func TestShouldStop_NeverBeforeMinItems(t *testing.T) {
	bp := testBlueprint()
	state := newTestState()
	state.Attempts = 1
	state.Streak = -10
	state.SkillsSeen["a"] = true

	if ShouldStop(state, bp) {
		t.Error("stopped before minItems")
	}
}

func TestShouldStop_NeverBeforeSkillCoverage(t *testing.T) {
	bp := testBlueprint()
	bp.MinDistinctSkills = 3
	state := newTestState()
	state.Attempts = 4
	state.Streak = -4
	state.SkillsSeen["a"] = true

	if ShouldStop(state, bp) {
		t.Error("stopped before minimum distinct skills")
	}
}

func TestShouldStop_HardStopAtMaxItems(t *testing.T) {
	bp := testBlueprint()
	state := newTestState()
	state.Attempts = bp.MaxItems

	if !ShouldStop(state, bp) {
		t.Error("expected hard stop at maxItems")
	}
}

func TestShouldStop_IncorrectStreakAtThreshold(t *testing.T) {
	bp := testBlueprint()
	state := newTestState()
	state.Attempts = 3
	state.Streak = -3
	state.SkillsSeen["a"] = true

	if !ShouldStop(state, bp) {
		t.Error("expected stop on incorrect streak at threshold")
	}
}

// Two correct then three incorrect on on-level items: the incorrect
// streak reaches the threshold at attempt 5, before the hard stop would
// fire on its own merits.
func TestShouldStop_CeilingFoundScenario(t *testing.T) {
	bp := testBlueprint()
	state := newTestState()

	answers := []bool{true, true, false, false, false}
	for i, correct := range answers {
		if ShouldStop(state, bp) {
			t.Fatalf("stopped early at attempt %d", i)
		}
		UpdateAbility(state, correct, 0, "a")
	}

	if state.Streak != -3 {
		t.Fatalf("Streak = %d, want -3", state.Streak)
	}
	if !ShouldStop(state, bp) {
		t.Error("expected stop at attempt 5 on streak threshold")
	}
}

func TestShouldStop_CorrectStreakBelowLongThreshold(t *testing.T) {
	bp := testBlueprint()
	bp.MaxItems = 10
	state := newTestState()
	state.Attempts = 5
	state.Streak = 3 // threshold is 3, but positive runs need margin
	state.SkillsSeen["a"] = true

	if ShouldStop(state, bp) {
		t.Error("stopped on a positive streak at the incorrect-run threshold")
	}
}

func TestShouldStop_LongCorrectStreakStops(t *testing.T) {
	bp := testBlueprint()
	bp.MaxItems = 10
	state := newTestState()
	state.Attempts = 6
	state.Streak = 5
	state.Ability = 1.0
	state.SkillsSeen["a"] = true

	if !ShouldStop(state, bp) {
		t.Error("expected stop on long correct streak with coverage")
	}
}

// A long correct run at high ability signals the bank is out of
// headroom, not a plateau, so the session keeps probing.
func TestShouldStop_HighAbilityCorrectStreakKeepsGoing(t *testing.T) {
	bp := testBlueprint()
	bp.MaxItems = 10
	state := newTestState()
	state.Attempts = 6
	state.Streak = 5
	state.Ability = 2.4
	state.SkillsSeen["a"] = true

	if ShouldStop(state, bp) {
		t.Error("stopped on correct streak above the headroom bound")
	}
}

func TestCheckBreak_AtBreakpointOncePerSession(t *testing.T) {
	bp := testBlueprint()
	state := newTestState()
	state.Attempts = bp.BreakAfterAttempts

	if !CheckBreak(state, bp) {
		t.Fatal("expected break at breakAfterAttempts")
	}
	if !state.NeedsBreak {
		t.Error("NeedsBreak not raised")
	}

	DismissBreak(state)
	if state.NeedsBreak {
		t.Error("NeedsBreak not cleared")
	}

	// Same condition again must not re-trigger.
	if CheckBreak(state, bp) {
		t.Error("break re-triggered after dismissal")
	}
}

func TestCheckBreak_LowMood(t *testing.T) {
	bp := testBlueprint()
	state := newTestState()
	state.SetMood(2)

	if !CheckBreak(state, bp) {
		t.Error("expected break on low mood")
	}
}

func TestBlueprint_Validate(t *testing.T) {
	good := DefaultBlueprint("math")
	if err := good.Validate(); err != nil {
		t.Fatalf("default blueprint invalid: %v", err)
	}

	bad := good
	bad.MinItems = 10
	bad.MaxItems = 5
	if err := bad.Validate(); err == nil {
		t.Error("expected error for minItems > maxItems")
	}

	bad = good
	bad.StopStreakThreshold = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero streak threshold")
	}

	bad = good
	bad.Subject = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty subject")
	}
}
