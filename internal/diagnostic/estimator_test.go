package diagnostic

import (
	"math"
	"testing"
)

func newTestState() *SessionState {
	return NewSessionState(DefaultBlueprint("math"))
}

func TestUpdateAbility_FirstCorrectStep(t *testing.T) {
	state := newTestState()

	UpdateAbility(state, true, 0, "addition")

	// p = 0.5, information = 0.25, surprise = 0.5:
	// delta = 0.5 * (0.3 + 1.4*0.25) * (0.5 + 0.5) = 0.325
	if math.Abs(state.Ability-0.325) > 1e-9 {
		t.Errorf("Ability = %v, want 0.325", state.Ability)
	}
	if state.Streak != 1 {
		t.Errorf("Streak = %d, want 1", state.Streak)
	}
	if state.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", state.CorrectCount)
	}
	if !state.SkillsSeen["addition"] {
		t.Error("expected addition in SkillsSeen")
	}
}

func TestUpdateAbility_IncorrectMovesDown(t *testing.T) {
	state := newTestState()

	UpdateAbility(state, false, 0, "addition")

	if state.Ability >= 0 {
		t.Errorf("Ability = %v, want < 0", state.Ability)
	}
	if state.Streak != -1 {
		t.Errorf("Streak = %d, want -1", state.Streak)
	}
	if state.CorrectCount != 0 {
		t.Errorf("CorrectCount = %d, want 0", state.CorrectCount)
	}
}

func TestUpdateAbility_StreakExtendsAndFlips(t *testing.T) {
	state := newTestState()

	UpdateAbility(state, true, 0, "a")
	UpdateAbility(state, true, 0, "b")
	if state.Streak != 2 {
		t.Errorf("Streak = %d, want 2", state.Streak)
	}

	UpdateAbility(state, false, 0, "c")
	if state.Streak != -1 {
		t.Errorf("Streak after flip = %d, want -1", state.Streak)
	}

	UpdateAbility(state, false, 0, "d")
	if state.Streak != -2 {
		t.Errorf("Streak = %d, want -2", state.Streak)
	}
}

func TestUpdateAbility_StreakMultiplierAccelerates(t *testing.T) {
	// Third correct in a row (streak 2 going in) moves further than a
	// lone correct at the same ability and difficulty.
	streaky := newTestState()
	streaky.Streak = 2

	lone := newTestState()

	UpdateAbility(streaky, true, 0, "a")
	UpdateAbility(lone, true, 0, "a")

	if streaky.Ability <= lone.Ability {
		t.Errorf("streak step %v should exceed lone step %v", streaky.Ability, lone.Ability)
	}
}

func TestUpdateAbility_BoundedAbility(t *testing.T) {
	state := newTestState()
	for i := 0; i < 50; i++ {
		UpdateAbility(state, true, 2, "a")
		if state.Ability > AbilityMax || state.Ability < AbilityMin {
			t.Fatalf("Ability %v escaped [-3, 3] at attempt %d", state.Ability, i+1)
		}
	}
	if state.Ability != AbilityMax {
		t.Errorf("Ability = %v, want clamped to %v", state.Ability, AbilityMax)
	}

	state = newTestState()
	for i := 0; i < 50; i++ {
		UpdateAbility(state, false, -2, "a")
	}
	if state.Ability != AbilityMin {
		t.Errorf("Ability = %v, want clamped to %v", state.Ability, AbilityMin)
	}
}

func TestUpdateAbility_AttemptsIncrementByOne(t *testing.T) {
	state := newTestState()
	for i := 1; i <= 10; i++ {
		UpdateAbility(state, i%2 == 0, 0, "a")
		if state.Attempts != i {
			t.Fatalf("Attempts = %d after %d updates", state.Attempts, i)
		}
	}
}

func TestExpectedCorrect_Midpoint(t *testing.T) {
	p := ExpectedCorrect(1.0, 1.0)
	if math.Abs(p-0.5) > 1e-9 {
		t.Errorf("ExpectedCorrect(1,1) = %v, want 0.5", p)
	}
	if ExpectedCorrect(2, 0) <= ExpectedCorrect(0, 0) {
		t.Error("higher ability should raise the expected probability")
	}
}
