package planner

import (
	"testing"
	"time"

	"github.com/jkasmommy/brainpod-sub000/internal/mastery"
)

var today = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func doneItem(lessonID string, priority int, completedDaysAgo int, skills ...string) PlanItem {
	completed := today.AddDate(0, 0, -completedDaysAgo)
	return PlanItem{
		LessonID:     lessonID,
		Skills:       skills,
		ScheduledFor: completed,
		Status:       StatusDone,
		Priority:     priority,
		CompletedAt:  &completed,
	}
}

func TestBuildDailyPlaylist_DueSelection(t *testing.T) {
	items := []PlanItem{
		{LessonID: "a", ScheduledFor: today.AddDate(0, 0, -1), Status: StatusTodo, Priority: 10},
		{LessonID: "b", ScheduledFor: today, Status: StatusInProgress, Priority: 20},
		{LessonID: "c", ScheduledFor: today.AddDate(0, 0, 1), Status: StatusTodo, Priority: 30},
		{LessonID: "d", ScheduledFor: today.AddDate(0, 0, -2), Status: StatusDone, Priority: 40},
	}

	got := BuildDailyPlaylist(items, nil, today)
	if len(got) != 2 {
		t.Fatalf("playlist = %d items, want 2 (a, b)", len(got))
	}
	if got[0].LessonID != "a" || got[1].LessonID != "b" {
		t.Errorf("playlist = %v", lessonIDs(got))
	}
}

// A lesson completed 2 days ago with default (never-practiced) mastery:
// the scaled interval set is {0.8, 1.6, 3.2, 5.6, 11.2}, and 2 days is
// within a day of 1.6, so a review appears.
func TestBuildDailyPlaylist_SynthesizesReview(t *testing.T) {
	items := []PlanItem{doneItem("math-1", 10, 2, "fractions")}

	got := BuildDailyPlaylist(items, nil, today)
	if len(got) != 1 {
		t.Fatalf("playlist = %d items, want 1 review", len(got))
	}
	review := got[0]
	if review.Priority != 1010 {
		t.Errorf("Priority = %d, want original + 1000", review.Priority)
	}
	if !review.IsReview() {
		t.Error("synthesized item should satisfy the review convention")
	}
	if review.Status != StatusTodo {
		t.Errorf("Status = %s, want todo", review.Status)
	}
	if !review.ScheduledFor.Equal(truncateToDay(today)) {
		t.Errorf("ScheduledFor = %v, want today", review.ScheduledFor)
	}
}

// Mastery scale ~0.8 and 7 days since completion: 7 misses every scaled
// interval {0.8, 1.6, 3.2, 5.6, 11.2} by more than a day, so no review.
func TestBuildDailyPlaylist_NoReviewOffInterval(t *testing.T) {
	items := []PlanItem{doneItem("math-1", 10, 7, "fractions")}

	got := BuildDailyPlaylist(items, nil, today)
	if len(got) != 0 {
		t.Errorf("playlist = %v, want empty", lessonIDs(got))
	}
}

// Strong mastery stretches the intervals: with theta 2 the scale is 1.6
// and 22 days (near 14*1.6) is review-due, while the unpracticed default
// set {0.8, 1.6, 3.2, 5.6, 11.2} has nothing near 22.
func TestBuildDailyPlaylist_MasteryScalesIntervals(t *testing.T) {
	strong := map[string]*mastery.Record{
		"fractions": {SkillID: "fractions", Theta: 2.0},
	}

	items := []PlanItem{doneItem("math-1", 10, 22, "fractions")}

	if got := BuildDailyPlaylist(items, strong, today); len(got) != 1 {
		t.Errorf("strong mastery: playlist = %v, want 1 review", lessonIDs(got))
	}
	if got := BuildDailyPlaylist(items, nil, today); len(got) != 0 {
		t.Errorf("default mastery: playlist = %v, want empty", lessonIDs(got))
	}
}

// Two entries for the same lesson — one due today, one synthesized
// review — collapse to a single playlist entry, first occurrence wins.
func TestBuildDailyPlaylist_DeDupByLesson(t *testing.T) {
	items := []PlanItem{
		{LessonID: "math-1", ScheduledFor: today, Status: StatusTodo, Priority: 10},
		doneItem("math-1", 20, 2, "fractions"),
	}

	got := BuildDailyPlaylist(items, nil, today)
	if len(got) != 1 {
		t.Fatalf("playlist = %v, want one math-1 entry", lessonIDs(got))
	}
	if got[0].Priority != 10 {
		t.Errorf("Priority = %d, want the due item's 10", got[0].Priority)
	}
}

func TestBuildDailyPlaylist_SortedByPriority(t *testing.T) {
	items := []PlanItem{
		{LessonID: "c", ScheduledFor: today, Status: StatusTodo, Priority: 30},
		{LessonID: "a", ScheduledFor: today, Status: StatusTodo, Priority: 10},
		doneItem("r", 5, 2, "fractions"), // review lands at 1005
		{LessonID: "b", ScheduledFor: today, Status: StatusTodo, Priority: 20},
	}

	got := BuildDailyPlaylist(items, nil, today)
	for i := 1; i < len(got); i++ {
		if got[i-1].Priority > got[i].Priority {
			t.Fatalf("playlist not sorted: %v", lessonIDs(got))
		}
	}
	if got[len(got)-1].LessonID != "r" {
		t.Errorf("review should sort last: %v", lessonIDs(got))
	}
}

func TestBuildDailyPlaylist_EmptyInputs(t *testing.T) {
	if got := BuildDailyPlaylist(nil, nil, today); len(got) != 0 {
		t.Errorf("playlist = %v, want empty", lessonIDs(got))
	}
}

func TestOptimizeSessionOrder_Interleaves(t *testing.T) {
	playlist := []PlanItem{
		{LessonID: "n1", Priority: 10},
		{LessonID: "n2", Priority: 20},
		{LessonID: "n3", Priority: 30},
		{LessonID: "r1", Priority: 1010},
		{LessonID: "r2", Priority: 1020},
	}

	got := OptimizeSessionOrder(playlist)
	want := []string{"n1", "r1", "n2", "r2", "n3"}
	for i, id := range want {
		if got[i].LessonID != id {
			t.Fatalf("order = %v, want %v", lessonIDs(got), want)
		}
	}
}

func TestOptimizeSessionOrder_AllOneKind(t *testing.T) {
	playlist := []PlanItem{
		{LessonID: "r1", Priority: 1010},
		{LessonID: "r2", Priority: 1020},
	}
	got := OptimizeSessionOrder(playlist)
	if len(got) != 2 || got[0].LessonID != "r1" {
		t.Errorf("order = %v", lessonIDs(got))
	}
}

func lessonIDs(items []PlanItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.LessonID
	}
	return ids
}
