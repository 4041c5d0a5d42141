package diagnostic

import (
	"context"
	"testing"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

// mockEventRepo implements store.EventRepo for tests.
type mockEventRepo struct {
	answers    []store.AnswerEventData
	placements []store.PlacementEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockEventRepo) AppendPlacementEvent(_ context.Context, data store.PlacementEventData) error {
	m.placements = append(m.placements, data)
	return nil
}
func (m *mockEventRepo) AppendMasteryEvent(_ context.Context, _ store.MasteryEventData) error {
	return nil
}
func (m *mockEventRepo) RecentAnswerAccuracy(_ context.Context, _, _ string, _ int) (float64, int, error) {
	return 0, 0, nil
}

func sessionBank() []itembank.Item {
	return []itembank.Item{
		{ID: "q1", Subject: "math", Skill: "counting", Difficulty: -1, Type: itembank.TypeCount, Prompt: "?", CorrectAnswer: "3"},
		{ID: "q2", Subject: "math", Skill: "addition", Difficulty: 0, Type: itembank.TypeMCQ, Prompt: "?", Choices: []string{"6", "7"}, CorrectAnswer: "7"},
		{ID: "q3", Subject: "math", Skill: "fractions", Difficulty: 1, Type: itembank.TypeMCQ, Prompt: "?", Choices: []string{"a", "b"}, CorrectAnswer: "a"},
	}
}

func TestSession_FullLoop(t *testing.T) {
	events := &mockEventRepo{}
	bp := DefaultBlueprint("math")
	sess, err := NewSession(bp, sessionBank(), events)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	ctx := context.Background()
	seen := make(map[string]bool)
	for {
		item := sess.Next()
		if item == nil {
			break
		}
		if seen[item.ID] {
			t.Fatalf("item %s served twice", item.ID)
		}
		seen[item.ID] = true

		if _, err := sess.Submit(ctx, item.CorrectAnswer); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	// Three items, all correct: the bank runs out before any stop rule.
	if !sess.Exhausted() {
		t.Error("expected forced completion via exhaustion")
	}
	if !sess.Done() {
		t.Error("Done should report true after exhaustion")
	}
	if sess.State().Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", sess.State().Attempts)
	}
	if len(events.answers) != 3 {
		t.Errorf("answer events = %d, want 3", len(events.answers))
	}
	if len(sess.AttemptLog()) != 3 {
		t.Errorf("attempt log = %d entries, want 3", len(sess.AttemptLog()))
	}
}

func TestSession_SubmitWithoutNext(t *testing.T) {
	sess, err := NewSession(DefaultBlueprint("math"), sessionBank(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sess.Submit(context.Background(), "7"); err == nil {
		t.Error("expected error submitting with no item in flight")
	}
}

func TestSession_InvalidBlueprint(t *testing.T) {
	bp := DefaultBlueprint("math")
	bp.MaxItems = 0
	if _, err := NewSession(bp, sessionBank(), nil); err == nil {
		t.Error("expected blueprint validation failure")
	}
}

func TestSession_ResumeFromState(t *testing.T) {
	bp := DefaultBlueprint("math")
	prior := NewSessionState(bp)
	prior.Ability = 0.8
	prior.Attempts = 2
	prior.ItemsAsked = []string{"q1", "q2"}
	prior.SkillsSeen = map[string]bool{"counting": true, "addition": true}

	sess, err := ResumeSession(bp, prior, sessionBank(), nil)
	if err != nil {
		t.Fatal(err)
	}

	item := sess.Next()
	if item == nil || item.ID != "q3" {
		t.Fatalf("got %+v, want q3 (only unasked item)", item)
	}
}

func TestSessionState_DataRoundTrip(t *testing.T) {
	state := NewSessionState(DefaultBlueprint("math"))
	UpdateAbility(state, true, 0, "addition")
	UpdateAbility(state, false, 0.5, "fractions")
	state.ItemsAsked = []string{"q1", "q2"}

	restored := StateFromData(state.Data())
	if restored.Ability != state.Ability {
		t.Errorf("Ability = %v, want %v", restored.Ability, state.Ability)
	}
	if restored.Streak != state.Streak {
		t.Errorf("Streak = %d, want %d", restored.Streak, state.Streak)
	}
	if !restored.SkillsSeen["fractions"] {
		t.Error("SkillsSeen lost in round trip")
	}
	if len(restored.ItemsAsked) != 2 {
		t.Errorf("ItemsAsked = %v", restored.ItemsAsked)
	}
}
