package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

// mockEventRepo implements store.EventRepo for tests.
type mockEventRepo struct {
	masteryEvents []store.MasteryEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendPlacementEvent(_ context.Context, _ store.PlacementEventData) error {
	return nil
}
func (m *mockEventRepo) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	m.masteryEvents = append(m.masteryEvents, data)
	return nil
}
func (m *mockEventRepo) RecentAnswerAccuracy(_ context.Context, _, _ string, _ int) (float64, int, error) {
	return 0, 0, nil
}

func TestGet_DefaultsForUnknownSkill(t *testing.T) {
	svc := NewService(nil, nil)
	r := svc.Get(itembank.SubjectMath, "fractions")

	if r.Theta != 0 {
		t.Errorf("Theta = %v, want 0", r.Theta)
	}
	if r.Level != LevelDeveloping {
		t.Errorf("Level = %s, want developing", r.Level)
	}
	if r.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0", r.Attempts)
	}
}

func TestRecordPractice_CorrectAndIncorrectSteps(t *testing.T) {
	svc := NewService(nil, nil)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	r := svc.RecordPractice(context.Background(), itembank.SubjectMath, "fractions", true, now)
	if r.Theta != 0.2 {
		t.Errorf("Theta = %v, want 0.2", r.Theta)
	}
	if r.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", r.Attempts)
	}
	if !r.LastPracticedAt.Equal(now) {
		t.Errorf("LastPracticedAt = %v", r.LastPracticedAt)
	}
	// Theta 0.2 is the 4-day band.
	if want := now.AddDate(0, 0, 4); !r.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", r.NextReviewAt, want)
	}

	r = svc.RecordPractice(context.Background(), itembank.SubjectMath, "fractions", false, now)
	if r.Theta != 0.0 {
		t.Errorf("Theta = %v, want 0.0 after miss", r.Theta)
	}
	// Miss halves the 4-day band to 2.
	if want := now.AddDate(0, 0, 2); !r.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", r.NextReviewAt, want)
	}
}

func TestRecordPractice_ThetaClamped(t *testing.T) {
	svc := NewService(nil, nil)
	now := time.Now()
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		r := svc.RecordPractice(ctx, itembank.SubjectMath, "counting", true, now)
		if r.Theta > ThetaMax || r.Theta < ThetaMin {
			t.Fatalf("Theta %v escaped [-2, 2]", r.Theta)
		}
	}
	if got := svc.Get(itembank.SubjectMath, "counting").Theta; got != ThetaMax {
		t.Errorf("Theta = %v, want clamped to %v", got, ThetaMax)
	}
	for i := 0; i < 60; i++ {
		svc.RecordPractice(ctx, itembank.SubjectMath, "counting", false, now)
	}
	if got := svc.Get(itembank.SubjectMath, "counting").Theta; got != ThetaMin {
		t.Errorf("Theta = %v, want clamped to %v", got, ThetaMin)
	}
}

func TestRecordPractice_AttemptsMonotone(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	now := time.Now()

	for i := 1; i <= 10; i++ {
		r := svc.RecordPractice(ctx, itembank.SubjectReading, "phonics", i%3 == 0, now)
		if r.Attempts != i {
			t.Fatalf("Attempts = %d after %d practices", r.Attempts, i)
		}
	}
}

func TestRecordPractice_AppendsEvent(t *testing.T) {
	events := &mockEventRepo{}
	svc := NewService(nil, events)

	svc.RecordPractice(context.Background(), itembank.SubjectMath, "fractions", true, time.Now())

	if len(events.masteryEvents) != 1 {
		t.Fatalf("mastery events = %d, want 1", len(events.masteryEvents))
	}
	ev := events.masteryEvents[0]
	if ev.SkillID != "fractions" || ev.ThetaAfter != 0.2 || !ev.Correct {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestLevelForTheta_Thresholds(t *testing.T) {
	tests := []struct {
		theta float64
		want  Level
	}{
		{1.5, LevelAdvanced},
		{1.49, LevelProficient},
		{0.5, LevelProficient},
		{0.49, LevelDeveloping},
		{-0.5, LevelDeveloping},
		{-0.51, LevelBeginning},
	}
	for _, tt := range tests {
		if got := LevelForTheta(tt.theta); got != tt.want {
			t.Errorf("LevelForTheta(%v) = %s, want %s", tt.theta, got, tt.want)
		}
	}
}

func TestService_SnapshotRoundTrip(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	svc.RecordPractice(ctx, itembank.SubjectMath, "fractions", true, now)
	svc.RecordPractice(ctx, itembank.SubjectReading, "phonics", false, now)

	snap := &store.SnapshotData{Mastery: svc.SnapshotData()}
	restored := NewService(snap, nil)

	r := restored.Get(itembank.SubjectMath, "fractions")
	if r.Theta != 0.2 || r.Attempts != 1 {
		t.Errorf("restored fractions = %+v", r)
	}
	if !r.NextReviewAt.Equal(now.AddDate(0, 0, 4)) {
		t.Errorf("restored NextReviewAt = %v", r.NextReviewAt)
	}
	p := restored.Get(itembank.SubjectReading, "phonics")
	if p.Theta != -0.2 {
		t.Errorf("restored phonics theta = %v", p.Theta)
	}
}

func TestDueSkills_MostOverdueFirst(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// Both land in the 4-day band; staggered practice dates stagger the
	// due dates.
	svc.RecordPractice(ctx, itembank.SubjectMath, "older", true, base.AddDate(0, 0, -10))
	svc.RecordPractice(ctx, itembank.SubjectMath, "newer", true, base.AddDate(0, 0, -6))
	svc.RecordPractice(ctx, itembank.SubjectMath, "fresh", true, base)

	due := svc.DueSkills(itembank.SubjectMath, base)
	if len(due) != 2 {
		t.Fatalf("due = %v, want 2 skills", due)
	}
	if due[0] != "older" || due[1] != "newer" {
		t.Errorf("due order = %v, want [older newer]", due)
	}
}
