package diagnostic

import (
	"testing"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
)

func testBank() []itembank.Item {
	return []itembank.Item{
		{ID: "easy", Subject: "math", Skill: "counting", Difficulty: -1.5},
		{ID: "mid", Subject: "math", Skill: "addition", Difficulty: 0},
		{ID: "hard", Subject: "math", Skill: "fractions", Difficulty: 1.5},
	}
}

func TestSelectNext_ClosestDifficulty(t *testing.T) {
	state := newTestState()
	state.Ability = 1.4

	item := SelectNext(state, testBank())
	if item == nil || item.ID != "hard" {
		t.Fatalf("got %+v, want hard", item)
	}
}

func TestSelectNext_ExcludesAskedItems(t *testing.T) {
	state := newTestState()
	bank := testBank()

	for range bank {
		item := SelectNext(state, bank)
		if item == nil {
			t.Fatal("bank exhausted early")
		}
		if state.Asked(item.ID) {
			t.Fatalf("item %s returned twice", item.ID)
		}
		state.ItemsAsked = append(state.ItemsAsked, item.ID)
	}

	if item := SelectNext(state, bank); item != nil {
		t.Errorf("got %s after exhaustion, want nil", item.ID)
	}
}

func TestSelectNext_NewSkillBonusBreaksTies(t *testing.T) {
	state := newTestState()
	state.SkillsSeen["addition"] = true

	bank := []itembank.Item{
		{ID: "seen-skill", Skill: "addition", Difficulty: 0},
		{ID: "new-skill", Skill: "fractions", Difficulty: 0.05},
	}

	// Slightly farther, but the unseen skill's bonus wins.
	item := SelectNext(state, bank)
	if item == nil || item.ID != "new-skill" {
		t.Fatalf("got %+v, want new-skill", item)
	}
}

func TestSelectNext_EmptyBank(t *testing.T) {
	if item := SelectNext(newTestState(), nil); item != nil {
		t.Errorf("got %+v, want nil for empty bank", item)
	}
}

func TestSelectNext_DoesNotMutateState(t *testing.T) {
	state := newTestState()
	SelectNext(state, testBank())

	if state.Attempts != 0 || len(state.ItemsAsked) != 0 || len(state.SkillsSeen) != 0 {
		t.Error("SelectNext mutated session state")
	}
}
