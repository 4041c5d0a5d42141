package planner

import (
	"fmt"
	"time"

	"github.com/jkasmommy/brainpod-sub000/internal/catalog"
	"github.com/jkasmommy/brainpod-sub000/internal/placement"
)

// seedLessonCount is how many lessons a seeded plan gets when the
// catalog has no authored lessons for the placed unit.
const seedLessonCount = 5

// SeedPlan generates the initial learning plan for a subject from its
// level record, one lesson per day starting at startDate. Lessons come
// from the catalog's unit listing; units without authored content get
// synthesized lesson ids that later resolve through catalog defaults.
func SeedPlan(level placement.LevelRecord, startDate time.Time) []PlanItem {
	lessonIDs := catalog.UnitLessons(string(level.Subject), level.Unit)
	if len(lessonIDs) == 0 {
		lessonIDs = make([]string, seedLessonCount)
		for i := range lessonIDs {
			lessonIDs[i] = fmt.Sprintf("%s-%s-lesson-%d", level.Subject, level.Unit, i+1)
		}
	}

	day := truncateToDay(startDate)
	items := make([]PlanItem, 0, len(lessonIDs))
	for i, id := range lessonIDs {
		meta := catalog.FindOrDefault(id)
		skills := meta.Skills
		if skills == nil {
			skills = []string{}
		}
		items = append(items, PlanItem{
			LessonID:     id,
			Skills:       skills,
			ScheduledFor: day.AddDate(0, 0, i),
			Status:       StatusTodo,
			Priority:     (i + 1) * 10,
		})
	}
	return items
}
