package planner

import (
	"math"
	"sort"
	"time"

	"github.com/jkasmommy/brainpod-sub000/internal/mastery"
)

// reviewIntervals is the canonical spaced-review interval set in days,
// scaled per lesson by the learner's mastery of its skills.
var reviewIntervals = []float64{1, 2, 4, 7, 14}

// reviewWindowDays is the tolerance around each scaled interval.
const reviewWindowDays = 1.0

// BuildDailyPlaylist merges items due today with synthesized spaced
// reviews of completed lessons into one list, de-duplicated by lesson id
// (first occurrence wins) and sorted ascending by priority. Callers
// truncate to a session-sized subset if desired.
//
// Deterministic over its inputs; missing mastery records degrade to the
// never-practiced default rather than failing.
func BuildDailyPlaylist(items []PlanItem, masteryBySkill map[string]*mastery.Record, today time.Time) []PlanItem {
	day := truncateToDay(today)

	var out []PlanItem
	seen := make(map[string]bool)

	// Items scheduled for today or earlier and not finished.
	for _, item := range items {
		if item.Status == StatusDone {
			continue
		}
		if truncateToDay(item.ScheduledFor).After(day) {
			continue
		}
		if seen[item.LessonID] {
			continue
		}
		seen[item.LessonID] = true
		out = append(out, item)
	}

	// Completed lessons whose age lands on a scaled review interval.
	for _, item := range items {
		if item.Status != StatusDone || item.CompletedAt == nil {
			continue
		}
		if seen[item.LessonID] {
			continue
		}
		daysSince := day.Sub(truncateToDay(*item.CompletedAt)).Hours() / 24.0
		if daysSince < 0 {
			continue
		}
		if !dueForReview(daysSince, lessonMasteryScale(item.Skills, masteryBySkill)) {
			continue
		}
		review := item
		review.ScheduledFor = day
		review.Status = StatusTodo
		review.Priority = item.Priority + ReviewPriorityFloor
		review.CompletedAt = nil
		seen[item.LessonID] = true
		out = append(out, review)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// dueForReview reports whether an age in days falls within the window of
// any scaled interval.
func dueForReview(daysSince, scale float64) bool {
	for _, base := range reviewIntervals {
		if math.Abs(daysSince-base*scale) <= reviewWindowDays {
			return true
		}
	}
	return false
}

// lessonMasteryScale averages the review scale across a lesson's skills.
// Skills with no record count as never practiced.
func lessonMasteryScale(skills []string, masteryBySkill map[string]*mastery.Record) float64 {
	if len(skills) == 0 {
		return mastery.ReviewScale(0)
	}
	sum := 0.0
	for _, skill := range skills {
		theta := 0.0
		if r, ok := masteryBySkill[skill]; ok && r != nil {
			theta = r.Theta
		}
		sum += mastery.ReviewScale(theta)
	}
	scale := sum / float64(len(skills))
	if scale < 0.5 {
		return 0.5
	}
	return scale
}

// OptimizeSessionOrder interleaves new lessons with reviews so the two
// alternate instead of clustering by priority. Used for in-session
// pacing only; playlist selection keeps the priority sort.
func OptimizeSessionOrder(playlist []PlanItem) []PlanItem {
	var fresh, reviews []PlanItem
	for _, item := range playlist {
		if item.IsReview() {
			reviews = append(reviews, item)
		} else {
			fresh = append(fresh, item)
		}
	}

	out := make([]PlanItem, 0, len(playlist))
	for len(fresh) > 0 || len(reviews) > 0 {
		if len(fresh) > 0 {
			out = append(out, fresh[0])
			fresh = fresh[1:]
		}
		if len(reviews) > 0 {
			out = append(out, reviews[0])
			reviews = reviews[1:]
		}
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
