package planner

import (
	"testing"
	"time"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
	"github.com/jkasmommy/brainpod-sub000/internal/placement"
)

func TestSeedPlan_FromCatalogUnit(t *testing.T) {
	level := placement.DeriveLevel(placement.Place(0, itembank.SubjectMath), 8, 4)
	start := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)

	items := SeedPlan(level, start)
	if len(items) == 0 {
		t.Fatal("seeded plan is empty")
	}

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i, item := range items {
		if item.Status != StatusTodo {
			t.Errorf("item %d status = %s, want todo", i, item.Status)
		}
		if item.Priority != (i+1)*10 {
			t.Errorf("item %d priority = %d, want %d", i, item.Priority, (i+1)*10)
		}
		if want := day.AddDate(0, 0, i); !item.ScheduledFor.Equal(want) {
			t.Errorf("item %d scheduled %v, want %v", i, item.ScheduledFor, want)
		}
		if item.IsReview() {
			t.Errorf("item %d seeded as review", i)
		}
		if item.Skills == nil {
			t.Errorf("item %d has nil skills", i)
		}
	}
}

func TestSeedPlan_SynthesizesWithoutCatalog(t *testing.T) {
	// Foundation social studies has no authored lessons, so the plan gets
	// synthesized ids.
	level := placement.DeriveLevel(placement.Place(-3, itembank.SubjectSocialStudies), 8, 4)

	items := SeedPlan(level, time.Now())
	if len(items) != seedLessonCount {
		t.Fatalf("plan = %d items, want %d synthesized", len(items), seedLessonCount)
	}
	ids := make(map[string]bool)
	for _, item := range items {
		if item.LessonID == "" {
			t.Fatal("synthesized lesson id is empty")
		}
		if ids[item.LessonID] {
			t.Fatalf("duplicate lesson id %s", item.LessonID)
		}
		ids[item.LessonID] = true
	}
}

func TestPlanItem_MarkDone(t *testing.T) {
	item := PlanItem{LessonID: "math-1", Status: StatusTodo}
	now := time.Now()

	item.MarkDone(now)
	if item.Status != StatusDone {
		t.Errorf("Status = %s, want done", item.Status)
	}
	if item.CompletedAt == nil || !item.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", item.CompletedAt, now)
	}
}

func TestItemsData_RoundTrip(t *testing.T) {
	completed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	items := []PlanItem{
		{LessonID: "math-1", Skills: []string{"fractions"}, ScheduledFor: completed, Status: StatusDone, Priority: 10, CompletedAt: &completed},
		{LessonID: "math-2", Skills: []string{}, ScheduledFor: completed.AddDate(0, 0, 1), Status: StatusTodo, Priority: 20},
	}

	restored := ItemsFromData(ItemsData(items))
	if len(restored) != 2 {
		t.Fatalf("restored %d items, want 2", len(restored))
	}
	if restored[0].CompletedAt == nil || !restored[0].CompletedAt.Equal(completed) {
		t.Errorf("CompletedAt = %v", restored[0].CompletedAt)
	}
	if restored[1].CompletedAt != nil {
		t.Error("math-2 gained a completion timestamp")
	}
	if restored[1].Priority != 20 || restored[1].Status != StatusTodo {
		t.Errorf("math-2 restored as %+v", restored[1])
	}
}
